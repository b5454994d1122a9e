package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-ledger/api"
	"github.com/carson-networks/budget-ledger/internal/config"
	"github.com/carson-networks/budget-ledger/internal/ledger"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/operator"
	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/terminal"
	"github.com/carson-networks/budget-ledger/internal/view"
)

// application is everything a command needs once config has been loaded.
type application struct {
	config    *config.Config
	logger    *logrus.Logger
	operator  *operator.OperatorDelegator
	service   *service.Service
	formatter view.Formatter
}

func setup(c *cli.Context) (*application, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	envConfig, err := config.ProcessEnvironmentVariables(c.String("config"))
	if err != nil {
		return nil, err
	}

	logger := logging.SetupLogging(envConfig.Level())

	var l *ledger.Ledger
	if envConfig.Seed {
		l = ledger.NewSeeded(ledger.WithIDPolicy(envConfig.Policy()))
	} else {
		l = ledger.New(ledger.WithIDPolicy(envConfig.Policy()))
	}

	store := storage.NewStorage(l)
	op := operator.NewOperatorDelegator(store, envConfig.OperatorWorkers)

	return &application{
		config:    envConfig,
		logger:    logger,
		operator:  op,
		service:   service.NewService(store, op),
		formatter: view.NewFormatter(envConfig.CurrencyPrefix),
	}, nil
}

func serve(c *cli.Context) error {
	app, err := setup(c)
	if err != nil {
		return err
	}
	app.logger.WithFields(logrus.Fields{
		"idPolicy": app.config.IDPolicy,
		"seed":     app.config.Seed,
	}).Info("budget-ledger starting")

	app.operator.Start()

	httpRest := api.Rest{
		Logger:    app.logger,
		Port:      app.config.Port,
		Service:   app.service,
		Formatter: app.formatter,
	}
	err = runServer(c.Context, app.operator, httpRest.Serve)
	app.logger.Info("budget-ledger stopped")
	return err
}

// runServer runs serve and stops the operator once ctx is done or serve fails.
func runServer(ctx context.Context, op stopper, serve func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		op.Stop()
		return nil
	})
	g.Go(func() error {
		return serve(ctx)
	})
	return g.Wait()
}

type stopper interface {
	Stop()
}

func shell(c *cli.Context) error {
	app, err := setup(c)
	if err != nil {
		return err
	}
	app.logger.Out = os.Stderr

	app.operator.Start()
	defer app.operator.Stop()

	return terminal.NewShell(os.Stdin, os.Stdout, app.service.Ledger, app.formatter, app.logger).Run(c.Context)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "budget-ledger",
		Usage: "track income and expenses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional YAML config file",
				EnvVars: []string{"LEDGER_CONFIG_FILE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "shell",
				Usage:  "run the interactive terminal",
				Action: shell,
			},
		},
		Action: serve,
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logrus.WithError(err).Fatal("budget-ledger")
	}
}
