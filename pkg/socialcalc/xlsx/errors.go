package xlsx

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound is returned when the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("worksheet not found")

// CellError reports a failure writing or reading one cell.
type CellError struct {
	Coord string
	Op    string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %s: %s: %v", e.Coord, e.Op, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// NameError reports a named range Excel would not accept.
type NameError struct {
	Name string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("defined name %q: %v", e.Name, e.Err)
}

func (e *NameError) Unwrap() error {
	return e.Err
}
