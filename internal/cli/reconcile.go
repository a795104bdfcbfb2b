package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"gear-rental/internal/usecase/status"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

type reconcileOptions struct {
	schedule string
}

func NewReconcileCommand(rootOpts *RootOptions, load ServiceLoader) *cobra.Command {
	opts := &reconcileOptions{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Write derived rental statuses back to the store",
		Long: `Derive the status of every open rental from the clock and persist the transitions.

With --schedule the command keeps running and reconciles on the given cron
spec (standard five fields, evaluated in the business time zone) until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}
			return withServices(cmd.Context(), load, func(svc *Services) error {
				if opts.schedule != "" {
					return runScheduled(cmd.Context(), svc, opts.schedule, formatter)
				}
				return runReconcile(cmd.Context(), svc.Engine, formatter)
			})
		},
	}

	cmd.Flags().StringVar(&opts.schedule, "schedule", "", `cron spec for periodic runs, e.g. "*/15 * * * *"`)

	return cmd
}

func runReconcile(ctx context.Context, engine status.Engine, f *OutputFormatter) error {
	report, err := engine.Reconcile(ctx)
	if err != nil {
		return f.Failure(WrapExitError(ExitCommandError, "reconcile failed", err))
	}
	if err := f.Success(report, func(w io.Writer) error { return renderReport(w, report) }); err != nil {
		return err
	}
	if report.HasFailures() {
		return NewExitError(ExitFailure, "some rentals could not be reconciled")
	}
	return nil
}

func runScheduled(ctx context.Context, svc *Services, spec string, f *OutputFormatter) error {
	loc := svc.Location
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc(spec, func() {
		if err := runReconcile(ctx, svc.Engine, f); err != nil {
			slog.Error("scheduled reconcile failed", "error", err)
		}
	})
	if err != nil {
		return f.Failure(WrapExitError(ExitCommandError, "invalid --schedule", err))
	}

	f.VerboseLog("reconciling on %q (%s)", spec, loc)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
