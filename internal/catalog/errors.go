package catalog

import "fmt"

// ErrInvalidCatalog indicates catalogue YAML that cannot be parsed or does
// not satisfy the catalogue schema.
type ErrInvalidCatalog struct {
	Err error
}

func (e *ErrInvalidCatalog) Error() string {
	return fmt.Sprintf("invalid catalog: %v", e.Err)
}

func (e *ErrInvalidCatalog) Unwrap() error { return e.Err }
