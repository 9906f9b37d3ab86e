package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig     = fmt.Errorf("configuration not found")
	ErrInvalidConfig     = fmt.Errorf("invalid configuration")
	ErrPlaceholderConfig = fmt.Errorf("configuration still has placeholder values")

	// Developer token errors
	ErrMissingKeyFile = fmt.Errorf("private key file not found")
	ErrInvalidKey     = fmt.Errorf("invalid private key")
	ErrSigningFailed  = fmt.Errorf("token signing failed")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
