package docbridge

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultConnectTimeout = 10 * time.Second

// Environment provides the shared process state for the bridge: the
// validated settings and the single long-lived database client. An
// Environment is constructed once at startup and passed by reference
// to every consumer; nothing replaces the client after construction.
type Environment interface {
	Settings() *Settings
	Client() *mongo.Client
	Close(context.Context) error
}

// NewEnvironment validates the given settings and establishes the
// database connection that the returned Environment owns for the
// lifetime of the process.
func NewEnvironment(ctx context.Context, settings *Settings) (Environment, error) {
	if settings == nil {
		return nil, errors.New("cannot construct environment with nil settings")
	}
	if err := settings.ValidateAndDefault(); err != nil {
		return nil, errors.Wrap(err, "problem validating settings")
	}

	e := &envState{settings: settings}
	if err := e.initDB(ctx); err != nil {
		return nil, errors.Wrap(err, "problem initializing database connection")
	}

	return e, nil
}

type envState struct {
	mu       sync.RWMutex
	settings *Settings
	client   *mongo.Client
}

func (e *envState) initDB(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(e.settings.Database.Url).
		SetConnectTimeout(defaultConnectTimeout))
	if err != nil {
		return errors.Wrap(err, "problem constructing database client")
	}

	e.client = client
	return nil
}

func (e *envState) Settings() *Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.settings
}

func (e *envState) Client() *mongo.Client {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.client
}

func (e *envState) Close(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return errors.Wrap(e.client.Disconnect(ctx), "problem disconnecting database client")
}
