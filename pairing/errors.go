package pairing

import (
	"errors"
)

var (
	// ErrUnsupportedLevel is returned when no catalogued curve offers the
	// requested security level.
	ErrUnsupportedLevel = errors.New("pairing: unsupported security level")

	// ErrUnknownCurve is returned when a curve name is not in the catalogue
	// of the requested configuration.
	ErrUnknownCurve = errors.New("pairing: unknown curve")

	// ErrUnsupportedEngine is returned when an engine does not use the zr
	// scalar field.
	ErrUnsupportedEngine = errors.New("pairing: engine scalars are not zr scalars")

	// ErrIndexOutOfRange is returned by List.Get for an index outside
	// [0, Len()).
	ErrIndexOutOfRange = errors.New("pairing: index out of range")

	// ErrForeignElement is the panic value, wrapped, when an operation
	// receives an element produced by a different group context.
	ErrForeignElement = errors.New("pairing: element belongs to another group context")
)
