package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"automfg/internal/core/domain/model/production"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"
)

// ErrEmptyBom is returned when the catalog has no parts for a configuration.
var ErrEmptyBom = errors.New("bill of materials has no parts")

// BomExpander builds the bill of materials of a production order. Every part
// requirement of the catalog is checked against material availability once,
// and the answer is frozen into the snapshot.
//
// Example usage:
//
//	expander := services.NewBomExpander(catalog, availability)
//	bom, err := expander.Expand(ctx, "MODEL-S", []string{"AUTOPILOT"})
//	if err != nil {
//	    return err
//	}
//	if !bom.IsFullyAvailable() {
//	    // the production order will wait in MATERIAL_PENDING
//	}
type BomExpander struct {
	catalog      ports.BomCatalog
	availability ports.MaterialAvailabilityGateway
	clock        func() time.Time
}

func NewBomExpander(catalog ports.BomCatalog, availability ports.MaterialAvailabilityGateway) BomExpander {
	return BomExpander{
		catalog:      catalog,
		availability: availability,
		clock:        func() time.Time { return time.Now().UTC() },
	}
}

// Expand returns the snapshot for a model and its option packages.
//
// Errors:
//   - gateway errors unchanged
//   - StateConflictError wrapping ErrEmptyBom when the catalog returns no parts
//   - ValidationError when a requirement cannot form a line item
func (b BomExpander) Expand(ctx context.Context, modelCode string, optionCodes []string) (production.BomSnapshot, error) {
	requirements, err := b.catalog.RequirementsFor(ctx, modelCode, optionCodes)
	if err != nil {
		return production.BomSnapshot{}, err
	}
	if len(requirements) == 0 {
		return production.BomSnapshot{}, errs.NewStateConflictErrorWithCause(
			"bill of materials", fmt.Errorf("model %s: %w", modelCode, ErrEmptyBom),
		)
	}

	items := make([]production.BomLineItem, 0, len(requirements))
	for _, req := range requirements {
		available, err := b.availability.CheckAvailability(ctx, req.PartNumber, req.Quantity)
		if err != nil {
			return production.BomSnapshot{}, err
		}

		item, err := production.NewBomLineItem(req.PartNumber, req.Description, req.Quantity, req.UnitOfMeasure, available)
		if err != nil {
			return production.BomSnapshot{}, err
		}
		items = append(items, item)
	}

	return production.NewBomSnapshot(items, b.clock())
}
