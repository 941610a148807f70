package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/photom/photom/internal/cliconfig"
	"github.com/photom/photom/pkg/apiclient"
)

const longHelp = `
Manage accounts stored by the photom authentication backend.

The base URL comes from, in increasing precedence: PUBLIC_API_URL,
$HOME/.photom/config.toml (or --config), PHOTOM_* environment variables,
and command line flags.

HTTP error statuses are not treated as failures unless --strict-status is set.
`

var exampleUsage = strings.TrimSpace(`
  photomctl accounts list --output table
  photomctl accounts delete user@example.com
  photomctl get /auth/ --query '#.openid.email'
  photomctl post /items --set name=demo --set count=3
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the state shared by every command. The client is built once in
// setup and never replaced.
type app struct {
	cfg    cliconfig.Config
	log    zerolog.Logger
	client *apiclient.Client
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		cfg:    cliconfig.DefaultConfig(),
		log:    cliconfig.NewLogger(errOut, zerolog.InfoLevel),
		out:    out,
		errOut: errOut,
	}
	var cfgPath string

	root := &cobra.Command{
		Use:           "photomctl",
		Short:         "Command line client for the photom API",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, cfgPath)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.photom/config.toml)")
	flags.StringVar(&a.cfg.BaseURL, "base-url", a.cfg.BaseURL, "API base URL")
	flags.DurationVar(&a.cfg.HTTPTimeout, "timeout", a.cfg.HTTPTimeout, "HTTP timeout")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "output format (json, table)")
	flags.BoolVar(&a.cfg.StrictStatus, "strict-status", a.cfg.StrictStatus, "fail on non-2xx responses")
	flags.BoolVar(&a.cfg.Debug, "debug", a.cfg.Debug, "dump HTTP requests and responses (debug)")
	if err := flags.MarkHidden("debug"); err != nil {
		a.log.Info().Err(err).Msg("failed to hide debug flag")
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.AddCommand(
		newAccountsCmd(a),
		newGetCmd(a),
		newPostCmd(a),
	)
	return root
}

// setup resolves configuration and builds the client.
func (a *app) setup(cmd *cobra.Command, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	switch {
	case cfgFile != "" && cliconfig.FileExists(cfgFile):
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	case cfgPath != "":
		return fmt.Errorf("config file %s not found", cfgPath)
	}

	// Environment overrides the file; explicitly set flags override both
	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := a.cfg.Level()
	if err != nil {
		return err
	}
	a.log = cliconfig.NewLogger(a.errOut, level)
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")

	client, err := apiclient.New(a.cfg.BaseURL,
		apiclient.WithHTTPTimeout(a.cfg.HTTPTimeout),
		apiclient.WithLogger(a.log),
		apiclient.WithStatusCheck(a.cfg.StrictStatus),
		apiclient.WithDebugLogging(a.cfg.Debug),
		apiclient.WithUserAgent(fmt.Sprintf("photomctl/%s", getVersion())),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	a.client = client
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		logger := cliconfig.Logger(zerolog.InfoLevel)
		logger.Error().Err(err).Msg("photomctl")
		stop()
		os.Exit(1)
	}
}
