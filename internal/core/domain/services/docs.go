// Package services contains domain services that span multiple aggregates.
// CapacityAdmission is the admission-control rule of the delivery core: it
// weighs a driver's committed load plus a candidate request against the
// vehicle capacity.
package services
