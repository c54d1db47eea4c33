package kernel

import (
	"strings"

	"automfg/internal/pkg/errs"
)

var ErrMaterialBatchIDIsNotConstructed = errs.NewValueIsRequiredError("MaterialBatchID must be created via NewMaterialBatchID")

// MaterialBatchID traces the batch of parts consumed by an assembly step.
// Every completed step records one, so a defective batch can be followed to
// the vehicles built with it. Surrounding whitespace is dropped.
//
// Example:
//
//	batch, err := kernel.NewMaterialBatchID("BATCH-2024-0117")
//	if err != nil {
//	    return err // blank input
//	}
type MaterialBatchID struct {
	value string
}

func NewMaterialBatchID(value string) (MaterialBatchID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return MaterialBatchID{}, errs.NewValueIsRequiredError("material batch id")
	}
	return MaterialBatchID{value: value}, nil
}

func (m MaterialBatchID) String() string {
	return m.value
}

func (m MaterialBatchID) Validate() error {
	if m.value == "" {
		return ErrMaterialBatchIDIsNotConstructed
	}
	return nil
}
