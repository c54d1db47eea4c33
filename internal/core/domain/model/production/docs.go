// Package production implements the ProductionOrder aggregate together with
// the entities and value objects it owns: the frozen bill of materials
// (BomSnapshot) and the assembly process with its steps.
//
// Business rules enforced here:
//   - BR-07: a station's steps complete only after all steps of earlier stations
//   - BR-08: every completed step names the material batch it consumed
//   - BR-09: a step taking more than 1.5x its standard time raises an overtime alert
package production
