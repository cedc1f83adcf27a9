package service

import (
	"net/http"
	"time"

	"github.com/docbridge-io/docbridge"
	"github.com/evergreen-ci/gimlet"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
)

// GetServer produces an HTTP server instance for a handler.
func GetServer(addr string, n http.Handler) *http.Server {
	grip.Notice(message.Fields{
		"action":  "starting service",
		"service": addr,
		"build":   docbridge.BuildRevision,
		"process": grip.Name(),
	})

	return &http.Server{
		Addr:              addr,
		Handler:           n,
		ReadTimeout:       time.Minute,
		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      time.Minute,
	}
}

// GetRouter assembles the bridge's complete HTTP handler: request
// logging and panic recovery middleware wrapped around the API routes.
func GetRouter(as *APIServer) (http.Handler, error) {
	app := gimlet.NewApp()
	app.ResetMiddleware()
	app.AddMiddleware(gimlet.MakeRecoveryLogger())

	// the app must be resolved before its router is available
	if err := app.Resolve(); err != nil {
		return nil, errors.WithStack(err)
	}

	router, err := app.Router()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	as.AttachRoutes(router)

	return app.Handler()
}
