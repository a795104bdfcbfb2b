package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func NewUserCommand(rootOpts *RootOptions, load ServiceLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage staff accounts",
	}
	cmd.AddCommand(newUserCreateCommand(rootOpts, load))
	return cmd
}

type userCreateOptions struct {
	email         string
	role          string
	passwordStdin bool
}

type createdUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func newUserCreateCommand(rootOpts *RootOptions, load ServiceLoader) *cobra.Command {
	opts := &userCreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a staff account",
		Long: `Create a staff account. The password is read from RENTALCTL_PASSWORD,
or from the first line of stdin with --password-stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			password, err := readPassword(cmd.InOrStdin(), opts.passwordStdin)
			if err != nil {
				return formatter.Failure(WrapExitError(ExitCommandError, "failed to read password", err))
			}

			return withServices(cmd.Context(), load, func(svc *Services) error {
				id, err := svc.Users.Create(cmd.Context(), commands.CreateUserInput{
					Email:    opts.email,
					Password: password,
					Role:     opts.role,
				})
				switch {
				case errs.Is(err, commands.ErrDuplicateUser):
					return formatter.Failure(NewExitError(ExitFailure, "a user with this email already exists"))
				case errs.Is(err, commands.ErrDomainValidation):
					return formatter.Failure(WrapExitError(ExitCommandError, "invalid user", err))
				case err != nil:
					return formatter.Failure(WrapExitError(ExitCommandError, "failed to create user", err))
				}

				created := createdUser{ID: id, Email: opts.email, Role: opts.role}
				return formatter.Success(created, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "✓ created %s user %s (%s)\n", created.Role, created.Email, created.ID)
					return err
				})
			})
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "login email")
	cmd.Flags().StringVar(&opts.role, "role", "operator", "viewer, operator or admin")
	cmd.Flags().BoolVar(&opts.passwordStdin, "password-stdin", false, "read the password from stdin")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func readPassword(in io.Reader, fromStdin bool) (string, error) {
	if !fromStdin {
		pw := os.Getenv("RENTALCTL_PASSWORD")
		if pw == "" {
			return "", errs.New("set RENTALCTL_PASSWORD or pass --password-stdin")
		}
		return pw, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errs.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
