// Package order implements the commercial Order aggregate: a dealer's request
// for a configured vehicle.
//
// Business rules enforced here:
//   - BR-03: the estimated delivery date is at least 45 days after the order date
//   - BR-15: the configuration of an order changes at most 3 times
//   - status moves forward only; cancellation is allowed before production
package order
