package battle

import (
	"errors"

	"ogame_battle/internal/domain/catalog"
)

var (
	// ErrInvalidInput is returned for structurally invalid battle input: an
	// empty attacking fleet, negative technology levels or negative resources.
	ErrInvalidInput = errors.New("invalid battle input")

	// ErrUnknownUnitType is returned when a fleet references a unit that is not
	// in the catalog. It is the catalog's sentinel so errors.Is matches both.
	ErrUnknownUnitType = catalog.ErrUnknownUnitType

	// ErrInvariantViolation signals a defect in the engine itself, such as a
	// negative hull value or a loss larger than the available units.
	ErrInvariantViolation = errors.New("battle invariant violated")
)
