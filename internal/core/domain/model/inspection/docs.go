// Package inspection implements the QualityInspection aggregate and its
// checklist items.
//
// Business rules enforced here:
//   - BR-10: a failed safety related item fails the inspection
//   - BR-11: more than 3 conditional non-safety items fail the inspection
//   - BR-12: reviewer and inspector are different people
package inspection
