package kernel

import (
	"fmt"

	"freshly/internal/pkg/errs"
)

// Role identifies which kind of marketplace party is making a call.
// Query handlers dispatch on the role to decide which subset of requests
// the caller may see.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleDriver is a delivery driver. Drivers see every pending request.
	RoleDriver

	// RoleBuyer is a produce buyer. Buyers see only their own requests.
	RoleBuyer

	// RoleFarmer is a produce farmer. Farmers see only their own requests.
	RoleFarmer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleDriver:  "driver",
		RoleBuyer:   "buyer",
		RoleFarmer:  "farmer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleDriver: "driver",
		RoleBuyer:  "buyer",
		RoleFarmer: "farmer",
	}
}

// RoleFromString parses the wire representation of a role. Anything other
// than "driver", "buyer", or "farmer" is rejected.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}

	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a recognized role", s),
	)
}

// Validate rejects any role outside the recognized set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
