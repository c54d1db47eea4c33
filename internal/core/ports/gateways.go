package ports

import (
	"context"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/production"

	"github.com/shopspring/decimal"
)

// MaterialAvailabilityGateway answers whether a quantity of a part can be
// supplied right now.
type MaterialAvailabilityGateway interface {
	CheckAvailability(ctx context.Context, partNumber string, quantity int) (bool, error)
}

// ConfigValidation is the verdict on a vehicle configuration. Violations is
// empty when Valid is true.
type ConfigValidation struct {
	Valid      bool
	Violations []string
}

// VehicleConfigGateway knows which models, colors and option packages exist,
// which combinations are allowed, and what they cost.
type VehicleConfigGateway interface {
	ValidateConfiguration(ctx context.Context, modelCode, colorCode string, optionCodes []string) (ConfigValidation, error)
	CalculatePrice(ctx context.Context, modelCode string, optionCodes []string) (decimal.Decimal, error)
}

// InspectionChecklistGateway supplies the final inspection checklist of a model.
type InspectionChecklistGateway interface {
	ChecklistForModel(ctx context.Context, modelCode string) ([]inspection.ChecklistItemTemplate, error)
}

// PartRequirement is one line of an engineering bill of materials.
type PartRequirement struct {
	PartNumber    string
	Description   string
	Quantity      int
	UnitOfMeasure string
}

// BomCatalog expands a model and its option packages into part requirements.
type BomCatalog interface {
	RequirementsFor(ctx context.Context, modelCode string, optionCodes []string) ([]PartRequirement, error)
}

// AssemblyRoutingGateway supplies the assembly step templates of a model.
type AssemblyRoutingGateway interface {
	TemplatesForModel(ctx context.Context, modelCode string) ([]production.AssemblyStepTemplate, error)
}
