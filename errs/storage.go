package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Object-store errors. The blob gateway is an external dependency, so its
// failures surface as 502 rather than 500.
var ErrStorage = errors.New("object store request failed")

func NewStorageError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrStorage,
		Details:    fmt.Sprintf("Failed to %s object", operation),
		Cause:      cause,
	}
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
