package valueobject

import (
	"fmt"
	"regexp"
	"strings"
)

// ---------------------------------------------------------------------------
// CropType immutable value object
// ---------------------------------------------------------------------------

// CropType identifies the crop financed by a credit simulation. The OTRO
// variant carries a free-form crop name supplied by the farmer.
type CropType struct {
	value      string
	customName string
}

const (
	cropCafe    = "CAFE"
	cropPlatano = "PLATANO"
	cropYuca    = "YUCA"
	cropMaiz    = "MAIZ"
	cropCacao   = "CACAO"
	cropOtro    = "OTRO"
)

var (
	CropTypeCafe    = CropType{value: cropCafe}
	CropTypePlatano = CropType{value: cropPlatano}
	CropTypeYuca    = CropType{value: cropYuca}
	CropTypeMaiz    = CropType{value: cropMaiz}
	CropTypeCacao   = CropType{value: cropCacao}
)

var validCropTypes = map[string]CropType{
	cropCafe:    CropTypeCafe,
	cropPlatano: CropTypePlatano,
	cropYuca:    CropTypeYuca,
	cropMaiz:    CropTypeMaiz,
	cropCacao:   CropTypeCacao,
}

// customCropNameRe accepts only letters and spaces.
var customCropNameRe = regexp.MustCompile(`^[A-Za-z\s]+$`)

// NewCropType creates a CropType from a raw string. customName is only
// consulted for the OTRO variant, where it is mandatory and must contain only
// letters and spaces.
func NewCropType(s, customName string) (CropType, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == cropOtro {
		return NewCustomCropType(customName)
	}
	v, ok := validCropTypes[upper]
	if !ok {
		return CropType{}, fmt.Errorf("invalid crop type: %q", s)
	}
	return v, nil
}

// NewCustomCropType creates the OTRO variant carrying the given crop name.
func NewCustomCropType(customName string) (CropType, error) {
	name := strings.TrimSpace(customName)
	if name == "" {
		return CropType{}, fmt.Errorf("custom crop name is required for crop type %s", cropOtro)
	}
	if !customCropNameRe.MatchString(name) {
		return CropType{}, fmt.Errorf("custom crop name %q may contain only letters and spaces", customName)
	}
	return CropType{value: cropOtro, customName: name}, nil
}

// String returns the string representation of the crop type.
func (c CropType) String() string { return c.value }

// CustomName returns the farmer-supplied crop name. Empty unless IsOtro.
func (c CropType) CustomName() string { return c.customName }

// IsOtro reports whether this is the free-form crop variant.
func (c CropType) IsOtro() bool { return c.value == cropOtro }

// IsZero returns true if the crop type has not been initialised.
func (c CropType) IsZero() bool { return c.value == "" }

// Equal returns true when both crop types carry the same value and name.
func (c CropType) Equal(other CropType) bool {
	return c.value == other.value && c.customName == other.customName
}

// DisplayName returns the human-readable crop name: the custom name for OTRO,
// otherwise the canonical crop identifier.
func (c CropType) DisplayName() string {
	if c.IsOtro() {
		return c.customName
	}
	return c.value
}
