package kernel

import (
	"fmt"
	"regexp"

	"automfg/internal/pkg/errs"
)

// VINLength is the fixed length of a vehicle identification number.
const VINLength = 17

// VINAlphabet lists the characters a VIN may contain. I, O and Q are excluded.
const VINAlphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

var (
	vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

	ErrVINIsNotConstructed = errs.NewValueIsRequiredError("VIN must be created via NewVIN")
)

// VIN is a vehicle identification number: 17 characters from VINAlphabet.
type VIN struct {
	value string
}

func NewVIN(value string) (VIN, error) {
	if value == "" {
		return VIN{}, errs.NewValueIsRequiredError("vin")
	}
	if !vinPattern.MatchString(value) {
		return VIN{}, errs.NewValueIsInvalidErrorWithCause(
			"vin",
			fmt.Errorf("%q must be %d characters from [A-HJ-NPR-Z0-9]", value, VINLength),
		)
	}
	return VIN{value: value}, nil
}

func (v VIN) String() string {
	return v.value
}

func (v VIN) IsEqual(other VIN) bool {
	return v.value == other.value
}

func (v VIN) Validate() error {
	if v.value == "" {
		return ErrVINIsNotConstructed
	}
	return nil
}
