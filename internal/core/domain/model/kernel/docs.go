// Package kernel holds the value identifiers shared by the manufacturing
// aggregates. Each identifier validates its own format on construction and
// its zero value fails Validate:
//   - UUID: identifier of aggregates, entities and domain events
//   - VIN: 17 characters, I, O and Q excluded
//   - OrderNumber: ORD-YYYYMM-NNNNN
//   - ProductionOrderNumber: PO-XX-YYYYMM-NNNNN
//   - WorkStationID: station code plus its position on the line
//   - MaterialBatchID: batch of parts consumed by an assembly step
package kernel
