package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-page/internal/content"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var loadErr *content.LoadError
	if errors.As(err, &loadErr) {
		switch loadErr.Kind {
		case content.KindFetch:
			return http.StatusBadGateway
		case content.KindParse, content.KindMissingInfo:
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}
