package http

import (
	"net/http"

	"github.com/aussiebroadwan/salary/pkg/httpx"
)

// RootHandler godoc
//
//	@Summary	Root
//	@Tags		Salary
//	@Produce	json
//	@Success	200	{string}	string	"null"
//	@Router		/ [get].
func RootHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteNull(w, http.StatusOK)
}
