package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/salary/pkg/httpx"
	"github.com/aussiebroadwan/salary/pkg/salarysdk"
	"github.com/aussiebroadwan/salary/pkg/slogx"
)

const maxLoginBody = 1 << 20

// LoginHandler serves POST /login.
type LoginHandler struct {
	Coordinator Coordinator
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Verifies the credentials and returns the caller's token, regenerating it when stale.
//	@Description	Missing fields are treated as empty strings. Any credential failure returns null.
//	@Tags			Salary
//	@Accept			json
//	@Produce		json
//	@Param			body	body		salarysdk.LoginRequest	true	"login and password"
//	@Success		200		{string}	string					"token, or null on failure"
//	@Failure		422		{string}	string					"null, malformed body"
//	@Failure		429		{string}	string					"null, rate limited"
//	@Failure		500		{string}	string					"null, token store failure"
//	@Header			200		{string}	Cache-Control			"no-store"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req salarysdk.LoginRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBody))
	if err := dec.Decode(&req); err != nil {
		slogx.FromContext(r.Context()).Debug("malformed login body", "err", err)
		httpx.WriteNull(w, http.StatusUnprocessableEntity)
		return
	}

	ctx := slogx.With(r.Context(), "login", req.Login)
	token, err := h.Coordinator.Login(ctx, req.Login, req.Password)
	if err != nil {
		writeFailure(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, token)
}
