package selstore

import "github.com/pkg/errors"

var (
	// ErrInvalidItems is returned when the items given to New or Reset
	// are not all non-nil structured objects (pointers to structs or
	// maps, or maps).
	ErrInvalidItems = errors.New("expecting array of initial item objects")

	// ErrInvalidSelected is returned by New when an initially selected
	// index does not point to an existing item.
	ErrInvalidSelected = errors.New("expecting array of initial selected indexes")
)
