package catalog

import (
	"github.com/shopspring/decimal"
)

type model struct {
	basePrice decimal.Decimal
	colors    []string
	parts     []part
	checklist []checkpoint
}

type optionPackage struct {
	price decimal.Decimal
	parts []part
}

type part struct {
	number      string
	description string
	quantity    int
	unit        string
}

type checkpoint struct {
	description   string
	safetyRelated bool
}

type station struct {
	code    string
	task    string
	minutes int
}

type ruleKind int

const (
	incompatible ruleKind = iota
	requires
)

// rule relates two codes. A code is either a model or an option package.
type rule struct {
	kind        ruleKind
	a, b        string
	description string
}

var commonChecklist = []checkpoint{
	{"Brake function", true},
	{"Airbag system", true},
	{"Seat belt retraction", true},
	{"Paint finish", false},
	{"Panel gaps", false},
	{"Infotainment boot", false},
}

var models = map[string]model{
	"MODEL-S": {
		basePrice: decimal.NewFromInt(79990),
		colors:    []string{"PEARL-WHITE", "MIDNIGHT-SILVER", "DEEP-BLUE"},
		parts: []part{
			{"CHS-S-001", "Sedan chassis", 1, "EA"},
			{"BAT-075", "Battery pack 75 kWh", 1, "EA"},
			{"MTR-DUAL", "Dual motor drive unit", 1, "EA"},
			{"WHL-19", "19 inch wheel", 4, "EA"},
			{"SEAT-STD", "Seat assembly", 5, "EA"},
			{"BLT-M10", "M10 body bolt", 120, "EA"},
		},
		checklist: commonChecklist,
	},
	"MODEL-X": {
		basePrice: decimal.NewFromInt(94990),
		colors:    []string{"PEARL-WHITE", "SOLID-BLACK", "ULTRA-RED"},
		parts: []part{
			{"CHS-X-001", "SUV chassis", 1, "EA"},
			{"BAT-100", "Battery pack 100 kWh", 1, "EA"},
			{"MTR-DUAL", "Dual motor drive unit", 1, "EA"},
			{"WHL-20", "20 inch wheel", 4, "EA"},
			{"SEAT-STD", "Seat assembly", 7, "EA"},
			{"DOOR-FLC", "Falcon wing door", 2, "EA"},
			{"BLT-M10", "M10 body bolt", 140, "EA"},
		},
		checklist: append(append([]checkpoint{}, commonChecklist...), checkpoint{"Falcon wing door sensors", true}),
	},
}

var optionPackages = map[string]optionPackage{
	"PREMIUM-AUDIO": {
		price: decimal.NewFromInt(2500),
		parts: []part{
			{"AUD-AMP-01", "Premium amplifier", 1, "EA"},
			{"AUD-SPK-01", "Premium speaker", 14, "EA"},
		},
	},
	"AUTOPILOT": {
		price: decimal.NewFromInt(6000),
		parts: []part{
			{"ECU-AP-3", "Autopilot computer", 1, "EA"},
			{"CAM-AP", "Driver assistance camera", 8, "EA"},
		},
	},
	"SPORT-PACKAGE": {
		price: decimal.RequireFromString("4499.50"),
		parts: []part{
			{"SUS-SPORT", "Sport suspension kit", 1, "EA"},
			{"BRK-SPORT", "Sport brake caliper", 4, "EA"},
		},
	},
	"TOW-PACKAGE": {
		price: decimal.NewFromInt(1200),
		parts: []part{
			{"TOW-HITCH", "Tow hitch", 1, "EA"},
			{"TOW-HRN", "Trailer wiring harness", 1, "EA"},
		},
	},
}

var rules = []rule{
	{incompatible, "SPORT-PACKAGE", "TOW-PACKAGE", "sport package cannot be combined with tow package"},
	{incompatible, "MODEL-S", "TOW-PACKAGE", "tow package is not offered for MODEL-S"},
	{requires, "AUTOPILOT", "PREMIUM-AUDIO", "autopilot requires premium audio"},
}

var routing = []station{
	{"WS-BODY", "Body in white", 60},
	{"WS-PAINT", "Paint shop", 45},
	{"WS-TRIM", "Interior trim", 30},
	{"WS-MECH", "Drivetrain marriage", 90},
	{"WS-FINAL", "Final assembly", 20},
}
