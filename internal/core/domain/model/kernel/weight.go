package kernel

import (
	"fmt"

	"freshly/internal/pkg/errs"
	"freshly/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a Weight was not created via
// NewWeight or ZeroWeight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight or ZeroWeight constructors")

// Weight is a value object for shipment weights and vehicle capacities,
// measured in kilograms. Shipment weights are strictly positive; the zero
// weight exists only to represent an empty load.
//
// Weights on both sides of a comparison are always in kilograms, so no unit
// conversion ever happens here.
//
// Example:
//
//	w, err := kernel.NewWeight(120.5)
//	if err != nil {
//	    // weight was not positive
//	}
//	load := kernel.ZeroWeight().Add(w)
type Weight struct { //nolint:recvcheck //using for validation
	kg    float64
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight of the given number of kilograms.
// The value must be strictly positive.
func NewWeight(kg float64) (Weight, error) {
	if kg <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%v is not greater than 0", kg),
		)
	}

	return Weight{
		kg:    kg,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ZeroWeight creates the empty load. It is a valid Weight and is the
// identity element for Add.
func ZeroWeight() Weight {
	return Weight{
		guard: guard.NewConstructorGuard(),
	}
}

// Kilograms returns the weight in kilograms.
func (w Weight) Kilograms() float64 {
	return w.kg
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{
		kg:    w.kg + other.kg,
		guard: guard.NewConstructorGuard(),
	}
}

// Exceeds reports whether w is strictly heavier than other. A load that
// lands exactly on a capacity does not exceed it.
func (w Weight) Exceeds(other Weight) bool {
	return w.kg > other.kg
}

// IsEqual reports whether two weights are the same number of kilograms.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg == other.kg
}

// String formats the weight for logs and error messages.
func (w Weight) String() string {
	return fmt.Sprintf("%g kg", w.kg)
}

// Validate reports whether the Weight was built through a constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
