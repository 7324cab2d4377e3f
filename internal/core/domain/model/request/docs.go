// Package request contains the DeliveryRequest aggregate and its status
// state machine. A request moves Pending -> Accepted -> Delivered, with
// Pending -> Cancelled as the withdrawal path. Acceptance stamps the driver
// onto the request; from then until delivery the request's weight counts
// against that driver's vehicle capacity.
package request
