package commission

import "errors"

// Processing errors
var (
	ErrUnsupportedCurrency    = errors.New("unsupported currency")
	ErrUnsupportedCombination = errors.New("unsupported operation type and user type combination")
	ErrInvalidInput           = errors.New("invalid input")
)
