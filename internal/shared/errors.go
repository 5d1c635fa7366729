package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Source and API errors
	ErrAPIRequest  = fmt.Errorf("API request failed")
	ErrBadStatus   = fmt.Errorf("unexpected HTTP status")
	ErrSourceParse = fmt.Errorf("failed to parse source payload")
	ErrSourceEmpty = fmt.Errorf("source returned no entries")

	// Store errors
	ErrNotFound     = fmt.Errorf("record not found")
	ErrMissingSlug  = fmt.Errorf("missing slug")
	ErrInvalidModel = fmt.Errorf("invalid model")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
