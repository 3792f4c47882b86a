package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField is the category all required-field failures wrap.
	// Match a specific field with the ErrMissing* sentinels below, or the
	// whole category with errors.Is(err, ErrMissingField).
	ErrMissingField = errors.New("required field is empty")

	ErrMissingName            = fmt.Errorf("%w: name", ErrMissingField)
	ErrMissingEmail           = fmt.Errorf("%w: email", ErrMissingField)
	ErrMissingPhone           = fmt.Errorf("%w: phone", ErrMissingField)
	ErrMissingPassword        = fmt.Errorf("%w: password", ErrMissingField)
	ErrMissingConfirmPassword = fmt.Errorf("%w: password confirmation", ErrMissingField)
	ErrMissingFarmName        = fmt.Errorf("%w: farm name", ErrMissingField)
	ErrMissingFarmSize        = fmt.Errorf("%w: farm size", ErrMissingField)
	ErrMissingLocation        = fmt.Errorf("%w: location", ErrMissingField)
	ErrMissingSoilType        = fmt.Errorf("%w: soil type", ErrMissingField)

	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidPhone        = errors.New("phone must be exactly 10 digits")
	ErrWeakPassword        = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
