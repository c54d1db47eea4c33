// Package event defines the domain events raised by the manufacturing
// aggregates and the Buffer aggregates keep them in until they are written
// to the outbox.
package event
