package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/aussiebroadwan/salary/pkg/httpx"
)

// writeFailure answers with a null body. Credential and lookup failures are
// indistinguishable to the caller and keep 200; anything else is a 500.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAuthentication), errors.Is(err, domain.ErrLookup):
		httpx.WriteNull(w, http.StatusOK)
	default:
		httpx.WriteNull(w, http.StatusInternalServerError)
	}
}
