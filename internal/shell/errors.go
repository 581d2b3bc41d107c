package shell

import (
	"errors"
	"net/http"

	"mindcare-client/pkg/backend"
)

// HTTPStatus classifies a facade error for the shell's own response code.
// A 4xx rejection from the service passes through; everything else the
// service did wrong is a bad gateway, and transport failures are too.
func HTTPStatus(err error) int {
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	case errors.Is(err, backend.ErrRequestFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage extracts the text worth showing the user: the service's
// response text when present, otherwise the error itself.
func ErrorMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
