package service

import (
	"net/http"

	"github.com/docbridge-io/docbridge/auth"
	"github.com/docbridge-io/docbridge/rest/model"
	"github.com/evergreen-ci/gimlet"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
)

// requireAuth gates a handler behind the configured static credential
// pair. A missing or malformed Authorization header is a deny; no
// database access happens on the deny path.
func (as *APIServer) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	creds := auth.Credentials{
		Username: as.Settings.Auth.Username,
		Password: as.Settings.Auth.Password,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if !creds.Check(r.Header.Get("Authorization")) {
			grip.Debug(message.Fields{
				"message": "rejecting unauthenticated request",
				"method":  r.Method,
				"url":     r.URL.String(),
			})
			gimlet.WriteJSONResponse(w, http.StatusUnauthorized, model.APIError{Error: "Unauthorized"})
			return
		}

		next(w, r)
	}
}
