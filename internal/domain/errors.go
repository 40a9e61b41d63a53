package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a value outside a closed set or a declared range.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidSeason(s Season) error {
	return fmt.Errorf("%w: season %d", ErrInvalidArgument, uint8(s))
}

func invalidCropType(c CropType) error {
	return fmt.Errorf("%w: crop type %d", ErrInvalidArgument, uint8(c))
}
