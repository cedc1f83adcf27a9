package docbridge

import (
	"os"

	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Settings contains the complete configuration for the bridge: where
// the backing database lives, where the HTTP server listens, and the
// single credential pair that gates the action endpoints.
type Settings struct {
	Database DBConfig   `json:"database" yaml:"database"`
	Api      APIConfig  `json:"api" yaml:"api"`
	Auth     AuthConfig `json:"auth" yaml:"auth"`
}

// DBConfig holds the connection information for the backing database.
type DBConfig struct {
	Url string `json:"url" yaml:"url"`
}

// APIConfig holds relevant settings for the HTTP server.
type APIConfig struct {
	HttpListenAddr string `json:"http_listen_addr" yaml:"httplistenaddr"`
}

// AuthConfig is the static credential pair compared against inbound
// basic auth headers.
type AuthConfig struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// NewSettings builds the bridge configuration, optionally reading a
// YAML settings file first and then applying environment overrides.
func NewSettings(filename string) (*Settings, error) {
	settings := &Settings{}

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "problem reading settings file '%s'", filename)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, errors.Wrapf(err, "problem parsing settings file '%s'", filename)
		}
	}

	settings.applyEnvOverrides()

	return settings, nil
}

func (s *Settings) applyEnvOverrides() {
	if url := os.Getenv(DatabaseURLEnv); url != "" {
		s.Database.Url = url
	}
	if user := os.Getenv(UsernameEnv); user != "" {
		s.Auth.Username = user
	}
	if pass := os.Getenv(PasswordEnv); pass != "" {
		s.Auth.Password = pass
	}
}

// ValidateAndDefault checks that the settings are usable, filling in
// documented defaults for any field left unset.
func (s *Settings) ValidateAndDefault() error {
	catcher := grip.NewSimpleCatcher()

	if s.Database.Url == "" {
		s.Database.Url = DefaultDatabaseURL
	}
	if s.Api.HttpListenAddr == "" {
		s.Api.HttpListenAddr = DefaultListenAddr
	}
	if s.Auth.Username == "" && s.Auth.Password == "" {
		s.Auth.Username = DefaultUsername
		s.Auth.Password = DefaultPassword
	}

	if s.Auth.Username == "" {
		catcher.Add(errors.New("auth username must not be empty"))
	}
	if s.Auth.Password == "" {
		catcher.Add(errors.New("auth password must not be empty"))
	}

	return catcher.Resolve()
}
