package openaddr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the category for every construction failure;
	// no table is produced when it is returned.
	ErrConfiguration = errors.New("openaddr: invalid configuration")

	// ErrValueRejected is the category for values a table refuses to
	// store. The table is left unchanged.
	ErrValueRejected = errors.New("openaddr: value rejected")

	ErrIllegalCapacity   = fmt.Errorf("%w: illegal capacity", ErrConfiguration)
	ErrIllegalLoadFactor = fmt.Errorf("%w: illegal load factor", ErrConfiguration)
	ErrNilValue          = fmt.Errorf("%w: nil value is not allowed", ErrValueRejected)
)
