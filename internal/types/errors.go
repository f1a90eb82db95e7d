package types

import "errors"

// ErrAddressOutOfRange is returned when a read or write targets an
// address that is not mapped by the component handling it.
var ErrAddressOutOfRange = errors.New("address out of range")

// ErrShortState is returned when a State runs out of data before a
// component finished loading from it.
var ErrShortState = errors.New("state data exhausted")
