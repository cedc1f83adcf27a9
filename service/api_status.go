package service

import (
	"net/http"

	"github.com/docbridge-io/docbridge/rest/model"
	"github.com/evergreen-ci/gimlet"
)

const healthyMessage = "docbridge API server is running"

// health reports whether the backing database answers a liveness
// probe. It requires no authentication.
func (as *APIServer) health(w http.ResponseWriter, r *http.Request) {
	if err := as.sc.Ping(r.Context()); err != nil {
		gimlet.WriteJSONResponse(w, http.StatusInternalServerError, model.APIHealthStatus{
			Status: "unhealthy",
			Error:  err.Error(),
		})
		return
	}

	gimlet.WriteJSON(w, model.APIHealthStatus{
		Status:  "healthy",
		Message: healthyMessage,
	})
}
