// Package saga runs a fixed sequence of steps and undoes the completed ones
// when a later step fails.
package saga

import (
	"context"
	"log/slog"
	"time"

	"gear-rental/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const defaultCompensationTimeout = 10 * time.Second

var tracer = otel.Tracer("gear-rental/saga")

type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

type Saga struct {
	name                string
	steps               []Step
	logAttrs            []any
	compensationTimeout time.Duration
}

func New(name string, steps ...Step) *Saga {
	return &Saga{
		name:                name,
		steps:               steps,
		compensationTimeout: defaultCompensationTimeout,
	}
}

// With adds key/value pairs to every log line the saga writes.
func (s *Saga) With(attrs ...any) *Saga {
	s.logAttrs = append(s.logAttrs, attrs...)
	return s
}

func (s *Saga) WithCompensationTimeout(d time.Duration) *Saga {
	s.compensationTimeout = d
	return s
}

// Run executes the steps in order. When the first step fails nothing has
// changed yet and its error is returned as is. A later failure compensates the
// completed steps in reverse order and returns a *errs.PartialFailureError;
// compensation failures are listed there too and logged at ERROR.
func (s *Saga) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "saga."+s.name)
	defer span.End()

	completed := make([]Step, 0, len(s.steps))
	for _, step := range s.steps {
		if err := step.Action(ctx); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("saga.failed_step", step.Name))
			span.SetStatus(codes.Error, "step failed")

			if len(completed) == 0 {
				return err
			}
			return s.compensate(ctx, completed, step.Name, err)
		}
		completed = append(completed, step)
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, completed []Step, failedStep string, cause error) error {
	// Compensation must run even if the request was cancelled.
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.compensationTimeout)
	defer cancel()

	result := &errs.PartialFailureError{
		Op:     s.name,
		Failed: []errs.SubFailure{{Name: failedStep, Err: cause}},
	}

	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			result.Succeeded = append(result.Succeeded, step.Name)
			continue
		}
		if err := step.Compensate(cctx); err != nil {
			args := append([]any{
				"saga", s.name,
				"step", step.Name,
				"failed_step", failedStep,
				"cause", cause.Error(),
				"error", err.Error(),
			}, s.logAttrs...)
			slog.Error("saga compensation failed", args...)
			result.Failed = append(result.Failed, errs.SubFailure{Name: "compensate " + step.Name, Err: err})
			result.Succeeded = append(result.Succeeded, step.Name)
			continue
		}
		result.RolledBack = append(result.RolledBack, step.Name)
	}

	args := append([]any{
		"saga", s.name,
		"failed_step", failedStep,
		"rolled_back", result.RolledBack,
		"error", cause.Error(),
	}, s.logAttrs...)
	slog.Warn("saga rolled back", args...)

	return result
}

// CompensationFailed reports whether a saga error includes a failed compensation,
// meaning the store may be left in an intermediate state.
func CompensationFailed(err error) bool {
	var pf *errs.PartialFailureError
	if !errs.As(err, &pf) {
		return false
	}
	return len(pf.Failed) > 1
}
