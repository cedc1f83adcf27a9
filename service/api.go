package service

import (
	"fmt"
	"net/http"

	"github.com/docbridge-io/docbridge"
	"github.com/docbridge-io/docbridge/rest/data"
	"github.com/docbridge-io/docbridge/rest/model"
	"github.com/evergreen-ci/gimlet"
	"github.com/gorilla/mux"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
)

// APIServer holds the handlers for the bridge's HTTP surface. Handlers
// are stateless: each request is an independent function of the
// request body and the injected connector, which wraps the single
// shared database client.
type APIServer struct {
	Settings docbridge.Settings
	sc       data.Connector
}

// NewAPIServer returns an APIServer serving the given settings through
// the given connector.
func NewAPIServer(settings *docbridge.Settings, sc data.Connector) *APIServer {
	return &APIServer{Settings: *settings, sc: sc}
}

// AttachRoutes registers the bridge's routes on the given router: the
// unauthenticated health probe at the root, and the action endpoints
// under the versioned prefix, each gated by basic auth.
func (as *APIServer) AttachRoutes(root *mux.Router) {
	root.HandleFunc("/health", as.health).Methods(http.MethodGet)

	prefix := fmt.Sprintf("%s/v%d/action", docbridge.RoutePrefix, docbridge.APIVersion)
	actions := root.PathPrefix(prefix).Subrouter()
	actions.HandleFunc("/insertOne", as.requireAuth(as.insertOne)).Methods(http.MethodPost)
	actions.HandleFunc("/insertMany", as.requireAuth(as.insertMany)).Methods(http.MethodPost)
	actions.HandleFunc("/find", as.requireAuth(as.find)).Methods(http.MethodPost)
	actions.HandleFunc("/aggregate", as.requireAuth(as.aggregate)).Methods(http.MethodPost)
	actions.HandleFunc("/updateOne", as.requireAuth(as.updateOne)).Methods(http.MethodPost)
	actions.HandleFunc("/updateMany", as.requireAuth(as.updateMany)).Methods(http.MethodPost)
	actions.HandleFunc("/deleteOne", as.requireAuth(as.deleteOne)).Methods(http.MethodPost)
	actions.HandleFunc("/deleteMany", as.requireAuth(as.deleteMany)).Methods(http.MethodPost)
}

// LoggedError logs the given error and writes an HTTP response with
// its message in the uniform error envelope.
func (as *APIServer) LoggedError(w http.ResponseWriter, r *http.Request, code int, err error) {
	grip.Error(message.Fields{
		"method": r.Method,
		"url":    r.URL.String(),
		"code":   code,
		"err":    err.Error(),
	})

	gimlet.WriteJSONResponse(w, code, model.APIError{Error: err.Error()})
}
