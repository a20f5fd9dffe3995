package strata

import (
	"errors"
	"fmt"
	"os"
)

func unimplemented(i interface{}, method string) error {
	return fmt.Errorf("%T.%s unimplemented; %w", i, method, NotSupported)
}

// wraps errors from various underlying sources into the taxonomy
func wrapNotFound(r Ref, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w (%v)", NotFound, r)
	}
	return fmt.Errorf("%w: %v: %v", IOFailure, r, err)
}

// Blob coerces a stored payload to raw bytes.
func Blob(i interface{}) ([]byte, error) {
	switch t := i.(type) {
	case []byte:
		return t, nil
	case string:
		return []byte(t), nil
	case nil:
		return nil, fmt.Errorf("%w: nil payload", EncodingError)
	default:
		return []byte(fmt.Sprintf("%v", t)), nil
	}
}

// Text coerces a stored payload to a string.
func Text(i interface{}) (string, error) {
	b, err := Blob(i)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
