package operations

import (
	"strings"

	"github.com/docbridge-io/docbridge"
	"github.com/urfave/cli"
)

const (
	confFlagName     = "conf"
	dbURLFlagName    = "db-url"
	addrFlagName     = "addr"
	usernameFlagName = "username"
	passwordFlagName = "password"
)

func joinFlagNames(ids ...string) string { return strings.Join(ids, ", ") }

func serviceConfigFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		cli.StringFlag{
			Name:  joinFlagNames(confFlagName, "c", "config"),
			Usage: "path to the service configuration file",
		},
		cli.StringFlag{
			Name:   dbURLFlagName,
			Usage:  "connection string for the backing database",
			EnvVar: docbridge.DatabaseURLEnv,
		},
		cli.StringFlag{
			Name:  addrFlagName,
			Usage: "address for the API server to listen on",
		},
		cli.StringFlag{
			Name:   usernameFlagName,
			Usage:  "username for the static API credential pair",
			EnvVar: docbridge.UsernameEnv,
		},
		cli.StringFlag{
			Name:   passwordFlagName,
			Usage:  "password for the static API credential pair",
			EnvVar: docbridge.PasswordEnv,
		},
	)
}

// applyFlagOverrides lets command line flags take precedence over the
// settings file and environment.
func applyFlagOverrides(c *cli.Context, settings *docbridge.Settings) {
	if url := c.String(dbURLFlagName); url != "" {
		settings.Database.Url = url
	}
	if addr := c.String(addrFlagName); addr != "" {
		settings.Api.HttpListenAddr = addr
	}
	if user := c.String(usernameFlagName); user != "" {
		settings.Auth.Username = user
	}
	if pass := c.String(passwordFlagName); pass != "" {
		settings.Auth.Password = pass
	}
}
