package http

import (
	"net/http"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/aussiebroadwan/salary/pkg/httpx"
	"github.com/aussiebroadwan/salary/pkg/slogx"
)

// SalaryHandler serves GET /salary.
type SalaryHandler struct {
	Coordinator Coordinator
}

// ServeHTTP godoc
//
//	@Summary		Salary lookup
//	@Description	Returns the salary record of login when token equals its stored token, otherwise null.
//	@Tags			Salary
//	@Produce		json
//	@Param			login	query		string						true	"Login"
//	@Param			token	query		string						true	"Token issued by /login"
//	@Success		200		{object}	domain.SalaryInfo			"salary record, or null on failure"
//	@Failure		422		{string}	string						"null, missing query parameter"
//	@Failure		429		{string}	string						"null, rate limited"
//	@Failure		500		{string}	string						"null, token store failure"
//	@Router			/salary [get].
func (h *SalaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("login") || !q.Has("token") {
		httpx.WriteNull(w, http.StatusUnprocessableEntity)
		return
	}

	login := q.Get("login")
	ctx := slogx.With(r.Context(), "login", login)

	var (
		info domain.SalaryInfo
		err  error
	)
	if info, err = h.Coordinator.Salary(ctx, login, q.Get("token")); err != nil {
		writeFailure(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, info)
}
