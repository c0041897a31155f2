package bounce

import (
	"errors"
	"fmt"
)

// Error classes. Both are fatal: the caller tears down and exits non-zero.
var (
	// ErrSetup marks a failure to create the window, renderer, audio or
	// terminal, or an invalid configuration.
	ErrSetup = errors.New("setup failed")
	// ErrAsset marks a logo image that is missing, undecodable, or could not
	// be turned into a texture.
	ErrAsset = errors.New("asset failed")
)

// SetupError wraps err as an ErrSetup for the named operation.
func SetupError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSetup, op, err)
}

// AssetError wraps err as an ErrAsset for the named operation.
func AssetError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrAsset, op, err)
}
