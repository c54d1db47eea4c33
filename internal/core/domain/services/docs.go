// Package services holds stateless domain services of the manufacturing
// context: logic that needs more than one aggregate or a gateway lookup and
// therefore does not belong to a single aggregate root.
//
// The package includes:
//   - BomExpander: turns a model and its option packages into a BomSnapshot
//     with availability captured at snapshot time
//   - InspectionOutcome: applies a reviewed inspection to its production
//     order and opens rework for failed vehicles
package services
