package cli

import (
	"io"
	"time"

	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	start string
	end   string
}

func NewCheckCommand(rootOpts *RootOptions, load ServiceLoader) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <equipment-id>",
		Short: "Check whether an item is free for a window",
		Long: `Run the availability check for one equipment item over [start, end).

Exits 1 when the item is booked by an overlapping rental.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			id, err := uuid.Parse(args[0])
			if err != nil {
				return formatter.Failure(WrapExitError(ExitCommandError, "invalid equipment id", err))
			}
			start, err := time.Parse(time.RFC3339, opts.start)
			if err != nil {
				return formatter.Failure(WrapExitError(ExitCommandError, "invalid --start", err))
			}
			end, err := time.Parse(time.RFC3339, opts.end)
			if err != nil {
				return formatter.Failure(WrapExitError(ExitCommandError, "invalid --end", err))
			}

			return withServices(cmd.Context(), load, func(svc *Services) error {
				view, err := svc.Equipment.CheckAvailability(cmd.Context(), id, start, end)
				if err != nil {
					if errs.Is(err, queries.ErrEquipmentNotFound) {
						return formatter.Failure(NewExitError(ExitCommandError, "equipment not found"))
					}
					return formatter.Failure(WrapExitError(ExitCommandError, "availability check failed", err))
				}
				if err := formatter.Success(view, func(w io.Writer) error { return renderAvailability(w, view) }); err != nil {
					return err
				}
				if !view.Available {
					return NewExitError(ExitFailure, "equipment is not available")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "window start (RFC3339)")
	cmd.Flags().StringVar(&opts.end, "end", "", "window end (RFC3339)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
