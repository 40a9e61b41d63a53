package domain

import (
	"fmt"
	"strings"
)

// Season drives temperature baseline, sunshine range, production
// seasonality and price seasonality. The zero value is not a season and is
// used by option structs to mean "pick one at random".
type Season uint8

const (
	Spring Season = iota + 1
	Summer
	Autumn
	Winter
)

// Seasons lists every season in declaration order. Random selection indexes
// into this slice.
var Seasons = []Season{Spring, Summer, Autumn, Winter}

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return fmt.Sprintf("Season(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the declared seasons.
func (s Season) Valid() bool {
	return s >= Spring && s <= Winter
}

// ParseSeason converts a case-insensitive season name.
func ParseSeason(v string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "spring":
		return Spring, nil
	case "summer":
		return Summer, nil
	case "autumn":
		return Autumn, nil
	case "winter":
		return Winter, nil
	default:
		return 0, fmt.Errorf("%w: unknown season %q", ErrInvalidArgument, v)
	}
}

func (s Season) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, invalidSeason(s)
	}
	return []byte(s.String()), nil
}

func (s *Season) UnmarshalText(text []byte) error {
	v, err := ParseSeason(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CropType drives base yield, cost per hectare and market price. The zero
// value means "pick one at random" in option structs.
type CropType uint8

const (
	Cereals CropType = iota + 1
	Vegetables
	Fruits
)

// CropTypes lists every crop type in declaration order.
var CropTypes = []CropType{Cereals, Vegetables, Fruits}

func (c CropType) String() string {
	switch c {
	case Cereals:
		return "cereals"
	case Vegetables:
		return "vegetables"
	case Fruits:
		return "fruits"
	default:
		return fmt.Sprintf("CropType(%d)", uint8(c))
	}
}

// Valid reports whether c is one of the declared crop types.
func (c CropType) Valid() bool {
	return c >= Cereals && c <= Fruits
}

// ParseCropType converts a case-insensitive crop type name.
func ParseCropType(v string) (CropType, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "cereals":
		return Cereals, nil
	case "vegetables":
		return Vegetables, nil
	case "fruits":
		return Fruits, nil
	default:
		return 0, fmt.Errorf("%w: unknown crop type %q", ErrInvalidArgument, v)
	}
}

func (c CropType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, invalidCropType(c)
	}
	return []byte(c.String()), nil
}

func (c *CropType) UnmarshalText(text []byte) error {
	v, err := ParseCropType(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
