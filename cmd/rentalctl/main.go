package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gear-rental/cmd/bootstrap"
	"gear-rental/internal/cli"
	"gear-rental/internal/pkg/config"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"
	"gear-rental/internal/usecase/status"

	"go.uber.org/fx"
)

// loadServices starts the non-HTTP part of the server graph.
func loadServices(ctx context.Context) (*cli.Services, func(), error) {
	var (
		engine    status.Engine
		equipment queries.EquipmentQueries
		users     commands.UserCommands
		rentalCfg config.RentalConfig
	)
	app := fx.New(
		bootstrap.CoreModule,
		// stdout carries command output
		fx.Decorate(func(cfg config.Config) config.Config {
			cfg.Log.Output = "stderr"
			return cfg
		}),
		fx.NopLogger,
		fx.Populate(&engine, &equipment, &users, &rentalCfg),
	)
	if err := app.Start(ctx); err != nil {
		return nil, nil, err
	}

	release := func() {
		_ = app.Stop(context.Background())
	}
	return &cli.Services{
		Engine:    engine,
		Equipment: equipment,
		Users:     users,
		Location:  rentalCfg.Location(),
	}, release, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(loadServices)
	if err := root.ExecuteContext(ctx); err != nil {
		// ExitErrors are already reported by the command
		var exitErr *cli.ExitError
		if !errs.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		code := cli.GetExitCode(err)
		stop()
		os.Exit(code)
	}
}
