package main

import (
	"os"

	"github.com/docbridge-io/docbridge"
	"github.com/docbridge-io/docbridge/operations"
	"github.com/mongodb/grip"
	"github.com/urfave/cli"
)

func main() {
	app := buildApp()
	grip.EmergencyFatal(app.Run(os.Args))
}

func buildApp() *cli.App {
	app := cli.NewApp()
	app.Name = "docbridge"
	app.Usage = "HTTP bridge for document database operations"
	app.Version = docbridge.ClientVersion

	app.Commands = []cli.Command{
		operations.Service(),
	}

	return app
}
