package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/moneyboy/internal/buildinfo"
	"github.com/dmitrijs2005/moneyboy/internal/client/config"
	"github.com/dmitrijs2005/moneyboy/internal/client/models"
	"github.com/dmitrijs2005/moneyboy/internal/common"
	"github.com/dmitrijs2005/moneyboy/internal/logging"
	"github.com/spf13/cobra"
)

// newApp is a test seam; tests swap it to inject an App backed by fakes.
var newApp = NewApp

// ErrNotLoggedIn is returned by commands that need a session.
var ErrNotLoggedIn = errors.New("not logged in")

type runner struct {
	opts   config.Options
	app    *App
	stderr io.Writer
}

// NewRootCommand builds the moneyboy command tree. Running it without a
// subcommand starts the interactive shell.
func NewRootCommand() *cobra.Command {
	r := &runner{stderr: os.Stderr}

	root := &cobra.Command{
		Use:   "moneyboy",
		Short: "Command-line client for the Pesca budgeting API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return r.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r.app.Root(cmd.Context())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	r.opts.AddFlags(root.PersistentFlags())

	root.AddCommand(
		r.loginCmd(),
		r.simpleCmd("logout", "Log out and remove the local session", func(ctx context.Context, a *App) error {
			return a.Logout(ctx)
		}),
		r.simpleCmd("register", "Create a new account", func(ctx context.Context, a *App) error {
			return a.Register(ctx)
		}),
		r.simpleCmd("whoami", "Show the current user", func(ctx context.Context, a *App) error {
			return a.whoAmI(ctx)
		}),
		r.simpleCmd("status", "Show the locally stored session", func(ctx context.Context, a *App) error {
			return a.Status(ctx)
		}),
		r.simpleCmd("users", "List users", func(ctx context.Context, a *App) error {
			return a.Users(ctx)
		}),
		r.paymentsCmd(),
		r.simpleCmd("shell", "Start the interactive shell", func(ctx context.Context, a *App) error {
			a.Root(ctx)
			return nil
		}),
		versionCmd(),
	)

	return root
}

func (r *runner) setup(cmd *cobra.Command) error {
	if cmd.Annotations["skipApp"] == "true" {
		return nil
	}

	cfg, err := config.LoadConfig(r.opts, os.Getenv)
	if err != nil {
		return err
	}

	logger := logging.NewTextLogger(r.stderr, logging.ParseLevel(cfg.LogLevel))

	app, err := newApp(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	app.out = cmd.OutOrStdout()
	r.app = app
	return nil
}

func (r *runner) teardown() error {
	if r.app == nil {
		return nil
	}
	return r.app.Close()
}

func (r *runner) simpleCmd(use, short string, fn func(ctx context.Context, a *App) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fn(cmd.Context(), r.app)
		},
	}
}

func (r *runner) loginCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return r.app.Login(cmd.Context())
			}

			password, err := getPassword(r.app.out, "Enter password: ")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(password)

			return r.app.login(cmd.Context(), username, string(password))
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted when omitted)")
	return cmd
}

func (r *runner) paymentsCmd() *cobra.Command {
	cmd := r.simpleCmd("payments", "List payments", func(ctx context.Context, a *App) error {
		return a.ListPayments(ctx)
	})

	var (
		amount      float64
		description string
		to          []string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("amount") {
				return r.app.Pay(cmd.Context())
			}
			return r.app.createPayment(cmd.Context(), models.PaymentCreate{
				Amount:       amount,
				Description:  description,
				Participants: append([]string{}, to...),
			})
		},
	}
	create.Flags().Float64Var(&amount, "amount", 0, "amount paid (prompted when omitted)")
	create.Flags().StringVar(&description, "description", "", "what the payment was for")
	create.Flags().StringSliceVar(&to, "to", nil, "participant user ids")

	cmd.AddCommand(create, r.simpleCmd("list", "List payments", func(ctx context.Context, a *App) error {
		return a.ListPayments(ctx)
	}))
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipApp": "true"},
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
