package minefield

import (
	"errors"
	"fmt"
	"math"
)

// ErrConfiguration is matched by every construction parameter error
var ErrConfiguration = errors.New("invalid board configuration")

// ConfigError reports construction parameters that cannot produce a board
type ConfigError struct {
	Width, Height, Bombs int
	Reason               string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("board %dx%d with %d bombs: %s", e.Width, e.Height, e.Bombs, e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) hold for any *ConfigError
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// Validate checks construction parameters without building a board
func Validate(width, height, bombs int) error {
	switch {
	case width < 1 || height < 1:
		return &ConfigError{width, height, bombs, "dimensions must be positive"}
	case width > math.MaxInt/height:
		return &ConfigError{width, height, bombs, "board too large"}
	case bombs < 0:
		return &ConfigError{width, height, bombs, "bomb count must not be negative"}
	case bombs > width*height:
		return &ConfigError{width, height, bombs, fmt.Sprintf("too many bombs for %d cells", width*height)}
	}
	return nil
}
