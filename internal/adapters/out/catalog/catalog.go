package catalog

import (
	"context"
	"fmt"
	"slices"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Catalog serves the static model range.
type Catalog struct{}

var (
	_ ports.VehicleConfigGateway       = (*Catalog)(nil)
	_ ports.BomCatalog                 = (*Catalog)(nil)
	_ ports.AssemblyRoutingGateway     = (*Catalog)(nil)
	_ ports.InspectionChecklistGateway = (*Catalog)(nil)
)

func NewCatalog() *Catalog {
	return &Catalog{}
}

// ValidateConfiguration checks the model, color and option packages against
// the catalog and the compatibility rules. Every violation is reported.
func (c *Catalog) ValidateConfiguration(
	_ context.Context,
	modelCode, colorCode string,
	optionCodes []string,
) (ports.ConfigValidation, error) {
	m, ok := models[modelCode]
	if !ok {
		return invalid(fmt.Sprintf("unknown model %s", modelCode)), nil
	}

	var violations []string
	if !slices.Contains(m.colors, colorCode) {
		violations = append(violations, fmt.Sprintf("color %s is not offered for %s", colorCode, modelCode))
	}

	seen := make(map[string]bool, len(optionCodes))
	for _, code := range optionCodes {
		if seen[code] {
			violations = append(violations, fmt.Sprintf("option %s selected twice", code))
			continue
		}
		seen[code] = true
		if _, ok := optionPackages[code]; !ok {
			violations = append(violations, fmt.Sprintf("unknown option %s", code))
		}
	}

	selected := func(code string) bool { return code == modelCode || seen[code] }
	for _, r := range rules {
		switch r.kind {
		case incompatible:
			if selected(r.a) && selected(r.b) {
				violations = append(violations, r.description)
			}
		case requires:
			if selected(r.a) && !selected(r.b) {
				violations = append(violations, r.description)
			}
		}
	}

	if len(violations) > 0 {
		return invalid(violations...), nil
	}
	return ports.ConfigValidation{Valid: true}, nil
}

// CalculatePrice adds the option package prices to the model base price.
func (c *Catalog) CalculatePrice(_ context.Context, modelCode string, optionCodes []string) (decimal.Decimal, error) {
	m, err := lookupModel(modelCode)
	if err != nil {
		return decimal.Decimal{}, err
	}

	price := m.basePrice
	for _, code := range optionCodes {
		op, ok := optionPackages[code]
		if !ok {
			return decimal.Decimal{}, errs.NewObjectNotFoundError("option package", code)
		}
		price = price.Add(op.price)
	}
	return price, nil
}

// RequirementsFor returns the model parts followed by the parts of each
// option package. A part used by several sources is listed once with the
// summed quantity.
func (c *Catalog) RequirementsFor(_ context.Context, modelCode string, optionCodes []string) ([]ports.PartRequirement, error) {
	m, err := lookupModel(modelCode)
	if err != nil {
		return nil, err
	}

	var result []ports.PartRequirement
	index := make(map[string]int)
	add := func(p part) {
		if i, ok := index[p.number]; ok {
			result[i].Quantity += p.quantity
			return
		}
		index[p.number] = len(result)
		result = append(result, ports.PartRequirement{
			PartNumber:    p.number,
			Description:   p.description,
			Quantity:      p.quantity,
			UnitOfMeasure: p.unit,
		})
	}

	for _, p := range m.parts {
		add(p)
	}
	for _, code := range optionCodes {
		op, ok := optionPackages[code]
		if !ok {
			return nil, errs.NewObjectNotFoundError("option package", code)
		}
		for _, p := range op.parts {
			add(p)
		}
	}
	return result, nil
}

// TemplatesForModel returns the line routing. Every model runs through the
// same stations.
func (c *Catalog) TemplatesForModel(_ context.Context, modelCode string) ([]production.AssemblyStepTemplate, error) {
	if _, err := lookupModel(modelCode); err != nil {
		return nil, err
	}

	templates := make([]production.AssemblyStepTemplate, 0, len(routing))
	for i, s := range routing {
		ws, err := kernel.NewWorkStationID(s.code, i+1)
		if err != nil {
			return nil, err
		}
		tpl, err := production.NewAssemblyStepTemplate(ws, s.task, s.minutes)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

func (c *Catalog) ChecklistForModel(_ context.Context, modelCode string) ([]inspection.ChecklistItemTemplate, error) {
	m, err := lookupModel(modelCode)
	if err != nil {
		return nil, err
	}

	items := make([]inspection.ChecklistItemTemplate, 0, len(m.checklist))
	for _, cp := range m.checklist {
		items = append(items, inspection.ChecklistItemTemplate{
			Description:   cp.description,
			SafetyRelated: cp.safetyRelated,
		})
	}
	return items, nil
}

func lookupModel(code string) (model, error) {
	m, ok := models[code]
	if !ok {
		return model{}, errs.NewObjectNotFoundError("vehicle model", code)
	}
	return m, nil
}

func invalid(violations ...string) ports.ConfigValidation {
	return ports.ConfigValidation{Valid: false, Violations: violations}
}
