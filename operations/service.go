package operations

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docbridge-io/docbridge"
	"github.com/docbridge-io/docbridge/rest/data"
	"github.com/docbridge-io/docbridge/service"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/recovery"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const shutdownGracePeriod = 10 * time.Second

func Service() cli.Command {
	return cli.Command{
		Name:  "service",
		Usage: "run docbridge services",
		Subcommands: []cli.Command{
			startWebService(),
		},
	}
}

func startWebService() cli.Command {
	return cli.Command{
		Name:  "web",
		Usage: "run the HTTP bridge in the foreground",
		Flags: serviceConfigFlags(),
		Before: func(c *cli.Context) error {
			grip.SetName("docbridge.service")
			return nil
		},
		Action: func(c *cli.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer recovery.LogStackTraceAndExit("docbridge service")
			defer cancel()

			settings, err := docbridge.NewSettings(c.String(confFlagName))
			if err != nil {
				return errors.Wrap(err, "problem loading settings")
			}
			applyFlagOverrides(c, settings)

			env, err := docbridge.NewEnvironment(ctx, settings)
			if err != nil {
				return errors.Wrap(err, "problem configuring application environment")
			}
			defer func() {
				grip.Error(errors.Wrap(env.Close(context.Background()), "problem closing environment"))
			}()

			as := service.NewAPIServer(env.Settings(), data.NewDBConnector(env))
			handler, err := service.GetRouter(as)
			if err != nil {
				return errors.WithStack(err)
			}

			srv := service.GetServer(env.Settings().Api.HttpListenAddr, handler)

			go listenForSIGTERM(cancel)
			go func() {
				<-ctx.Done()
				sctx, scancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
				defer scancel()
				grip.Error(errors.Wrap(srv.Shutdown(sctx), "problem shutting down server"))
			}()

			err = srv.ListenAndServe()
			if err == http.ErrServerClosed {
				err = nil
			}
			return errors.Wrap(err, "problem running API server")
		},
	}
}

// listenForSIGTERM cancels the service context as soon as a
// termination signal arrives.
func listenForSIGTERM(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 5)
	signal.Notify(sigChan, syscall.SIGTERM, os.Interrupt)
	<-sigChan
	grip.Notice("terminating on signal")
	cancel()
}
