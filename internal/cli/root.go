// Package cli implements rentalctl, the operator command line for the rental store.
package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"
	"gear-rental/internal/usecase/status"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

var ValidFormats = []string{"text", "json"}

// Services are the use cases the commands drive.
type Services struct {
	Engine    status.Engine
	Equipment queries.EquipmentQueries
	Users     commands.UserCommands
	Location  *time.Location
}

// ServiceLoader opens the services for one command run. The returned func
// releases them.
type ServiceLoader func(ctx context.Context) (*Services, func(), error)

func NewRootCommand(load ServiceLoader) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rentalctl",
		Short: "Operate the gear rental store",
		Long:  "Reconcile rental statuses, check equipment availability and provision staff accounts.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				err := NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewReconcileCommand(opts, load))
	cmd.AddCommand(NewCheckCommand(opts, load))
	cmd.AddCommand(NewUserCommand(opts, load))

	return cmd
}

func withServices(ctx context.Context, load ServiceLoader, fn func(*Services) error) error {
	svc, release, err := load(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to start services", err)
	}
	defer release()
	return fn(svc)
}
