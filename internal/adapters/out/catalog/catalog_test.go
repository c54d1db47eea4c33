package catalog_test

import (
	"testing"

	"automfg/internal/adapters/out/catalog"
	"automfg/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ValidateConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		model      string
		color      string
		options    []string
		valid      bool
		violations []string
	}{
		{"valid", "MODEL-S", "PEARL-WHITE", []string{"PREMIUM-AUDIO", "AUTOPILOT"}, true, nil},
		{"no options", "MODEL-X", "ULTRA-RED", nil, true, nil},
		{"unknown model", "MODEL-Z", "PEARL-WHITE", nil, false, []string{"unknown model MODEL-Z"}},
		{"wrong color", "MODEL-S", "ULTRA-RED", nil, false, []string{"color ULTRA-RED is not offered for MODEL-S"}},
		{"unknown option", "MODEL-X", "SOLID-BLACK", []string{"HOVER"}, false, []string{"unknown option HOVER"}},
		{"duplicate option", "MODEL-X", "SOLID-BLACK", []string{"TOW-PACKAGE", "TOW-PACKAGE"}, false, []string{"option TOW-PACKAGE selected twice"}},
		{
			"incompatible options",
			"MODEL-X", "SOLID-BLACK", []string{"SPORT-PACKAGE", "TOW-PACKAGE"},
			false, []string{"sport package cannot be combined with tow package"},
		},
		{
			"option not offered for model",
			"MODEL-S", "DEEP-BLUE", []string{"TOW-PACKAGE"},
			false, []string{"tow package is not offered for MODEL-S"},
		},
		{
			"missing required option",
			"MODEL-S", "DEEP-BLUE", []string{"AUTOPILOT"},
			false, []string{"autopilot requires premium audio"},
		},
	}

	c := catalog.NewCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.ValidateConfiguration(t.Context(), tt.model, tt.color, tt.options)

			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.violations, res.Violations)
		})
	}
}

func TestCatalog_CalculatePrice(t *testing.T) {
	c := catalog.NewCatalog()

	price, err := c.CalculatePrice(t.Context(), "MODEL-X", []string{"SPORT-PACKAGE", "PREMIUM-AUDIO"})
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("101989.50")), price.String())

	price, err = c.CalculatePrice(t.Context(), "MODEL-S", nil)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(79990)))

	_, err = c.CalculatePrice(t.Context(), "MODEL-Z", nil)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = c.CalculatePrice(t.Context(), "MODEL-S", []string{"HOVER"})
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCatalog_RequirementsFor(t *testing.T) {
	c := catalog.NewCatalog()

	reqs, err := c.RequirementsFor(t.Context(), "MODEL-S", []string{"PREMIUM-AUDIO", "AUTOPILOT"})
	require.NoError(t, err)

	parts := make(map[string]int, len(reqs))
	for _, r := range reqs {
		parts[r.PartNumber] = r.Quantity
	}
	assert.Len(t, reqs, 10)
	assert.Equal(t, "CHS-S-001", reqs[0].PartNumber)
	assert.Equal(t, 120, parts["BLT-M10"])
	assert.Equal(t, 14, parts["AUD-SPK-01"])
	assert.Equal(t, 8, parts["CAM-AP"])

	_, err = c.RequirementsFor(t.Context(), "MODEL-Z", nil)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCatalog_TemplatesForModel(t *testing.T) {
	templates, err := catalog.NewCatalog().TemplatesForModel(t.Context(), "MODEL-X")
	require.NoError(t, err)
	require.Len(t, templates, 5)

	wantCodes := []string{"WS-BODY", "WS-PAINT", "WS-TRIM", "WS-MECH", "WS-FINAL"}
	wantMinutes := []int{60, 45, 30, 90, 20}
	for i, tpl := range templates {
		assert.Equal(t, wantCodes[i], tpl.Station().Code())
		assert.Equal(t, i+1, tpl.Station().Sequence())
		assert.Equal(t, wantMinutes[i], tpl.StandardMinutes())
	}
}

func TestCatalog_ChecklistForModel(t *testing.T) {
	c := catalog.NewCatalog()

	sedan, err := c.ChecklistForModel(t.Context(), "MODEL-S")
	require.NoError(t, err)
	suv, err := c.ChecklistForModel(t.Context(), "MODEL-X")
	require.NoError(t, err)

	assert.Len(t, sedan, 6)
	assert.Len(t, suv, 7)
	assert.Equal(t, "Brake function", sedan[0].Description)
	assert.True(t, sedan[0].SafetyRelated)
	assert.Equal(t, "Falcon wing door sensors", suv[6].Description)

	_, err = c.ChecklistForModel(t.Context(), "MODEL-Z")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMaterialAvailability(t *testing.T) {
	ctx := t.Context()
	m := catalog.NewMaterialAvailability("BAT-100")

	ok, err := m.CheckAvailability(ctx, "BAT-100", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, _ = m.CheckAvailability(ctx, "BAT-075", 1)
	assert.True(t, ok)

	ok, _ = m.CheckAvailability(ctx, "BAT-075", 0)
	assert.False(t, ok)

	m.SetShortage("BAT-100", false)
	m.SetShortage("BAT-075", true)
	ok, _ = m.CheckAvailability(ctx, "BAT-100", 1)
	assert.True(t, ok)
	ok, _ = m.CheckAvailability(ctx, "BAT-075", 1)
	assert.False(t, ok)
}
