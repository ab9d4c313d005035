package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/spf13/cobra"
)

const (
	flagMode = "mode"
	flagUser = "user"
)

// Options holds the process streams and terminal integrations. Zero fields
// fall back to the process defaults.
type Options struct {
	Out       io.Writer
	Err       io.Writer
	Passwords PasswordReader
	Clipboard Clipboard
}

// App is the vault command line. An App runs a single command line.
type App struct {
	root *cobra.Command
	opts Options

	errMu sync.Mutex
}

func NewApp(opts Options) *App {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Passwords == nil {
		opts.Passwords = &terminalPasswordReader{in: os.Stdin, out: opts.Err}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = systemClipboard{}
	}

	a := &App{opts: opts}
	a.root = a.newRootCommand()
	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "vault",
		Short:        "Personal credential vault",
		Long:         "Keeps site credentials encrypted with a key derived from your login.\nManual logins keep the vault on this device, google logins keep it in the remote vault service.",
		SilenceUsage: true,
	}
	root.SetOut(a.opts.Out)
	root.SetErr(a.opts.Err)

	pf := root.PersistentFlags()
	pf.String(flagMode, string(models.LoginMethodManual), "Login mode: google or manual")
	pf.StringP(flagUser, "u", "", "Username for manual login")
	config.RegisterClientFlags(pf)

	root.AddCommand(
		a.newListCommand(),
		a.newSearchCommand(),
		a.newAddCommand(),
		a.newUpdateCommand(),
		a.newDeleteCommand(),
		a.newExportCommand(),
		a.newCopyCommand(),
	)
	return root
}

// sessionRunner is a command body that runs against a Ready session.
type sessionRunner func(cmd *cobra.Command, args []string, session service.VaultSession) error

// withSession opens a session for the selected mode, runs fn and logs out.
// Logout waits until the pending save has been handled.
func (a *App) withSession(fn sessionRunner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		rt, err := a.openRuntime(ctx, cmd)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := rt.close(ctx); closeErr != nil && err == nil {
				err = closeErr
			}
		}()

		if err = a.login(ctx, cmd, rt.services.Session); err != nil {
			return err
		}
		rt.loggedIn = true

		return fn(cmd, args, rt.services.Session)
	}
}

type sessionRuntime struct {
	log      *logger.Logger
	storages *store.ClientStorages
	services *service.ClientServices
	loggedIn bool
}

func (a *App) openRuntime(ctx context.Context, cmd *cobra.Command) (*sessionRuntime, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("go-pass-vault", cfg.Log.File).WithLevel(cfg.Log.Level)

	storages, err := store.NewClientStorages(ctx, cfg.Storage.Local, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	var identity service.IdentityProvider
	if cfg.App.IdentityToken != "" {
		identity = adapter.NewTokenIdentityProvider(cfg.App.IdentityToken, serverAdapter, log)
	}

	return &sessionRuntime{
		log:      log,
		storages: storages,
		services: service.NewClientServices(storages.Vault, serverAdapter, identity, cfg.Workers, a.printSync, log),
	}, nil
}

func (rt *sessionRuntime) close(ctx context.Context) error {
	var logoutErr error
	if rt.loggedIn {
		logoutErr = rt.services.Session.Logout(ctx)
	}
	return errors.Join(logoutErr, rt.storages.Close())
}

func (a *App) login(ctx context.Context, cmd *cobra.Command, session service.VaultSession) error {
	mode, _ := cmd.Flags().GetString(flagMode)

	switch models.LoginMethod(mode) {
	case models.LoginMethodGoogle:
		return session.LoginGoogle(ctx)

	case models.LoginMethodManual:
		user, _ := cmd.Flags().GetString(flagUser)
		if user == "" {
			return ErrUsernameRequired
		}
		password, err := a.opts.Passwords.ReadPassword("Password: ")
		if err != nil {
			return err
		}
		return session.LoginManual(ctx, models.ManualCredentials{Username: user, Password: password})

	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// printSync reports background save results. It runs on the persister
// goroutine.
func (a *App) printSync(event models.SyncEvent) {
	a.errMu.Lock()
	defer a.errMu.Unlock()

	if event.Err != nil {
		fmt.Fprintf(a.opts.Err, "%s: %v\n", event.Message(), event.Err)
		return
	}
	fmt.Fprintln(a.opts.Err, event.Message())
}
