// Package driver contains the Driver aggregate. The core consumes drivers
// mostly read-only: the vehicle capacity is the bound the admission service
// checks a driver's committed load against.
package driver
