// ABOUTME: Root command, shared flags and lazily built collaborators.
// ABOUTME: Loads config, sets up logging and owns the tag editor registry.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/harper/tempmail/internal/api"
	"github.com/harper/tempmail/internal/config"
	"github.com/harper/tempmail/internal/tagedit"
	"github.com/harper/tempmail/internal/tui"
	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	logger    *log.Logger
	apiClient *api.Client
	registry  *tagedit.Registry
)

var rootCmd = &cobra.Command{
	Use:   "tempmail",
	Short: "Manage temporary email aliases",
	Long: `tempmail creates forwarding aliases on your domain, tags them, pins the
ones you keep and destroys the rest. Running it without a command shows the
active aliases.`,
	Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return showActive(cmd.Context(), "")
	},
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().String("token", "", "API bearer token (overrides config)")
	rootCmd.PersistentFlags().Bool("debug", false, "log requests to stderr")
}

// Execute runs the CLI, cancelling in-flight requests on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func setup(cmd *cobra.Command) error {
	debug, _ := cmd.Flags().GetBool("debug")
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "tempmail",
		ReportTimestamp: debug,
		Level:           level,
	})

	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if apiURL, _ := cmd.Flags().GetString("api"); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if token, _ := cmd.Flags().GetString("token"); token != "" {
		cfg.Token = token
	}

	apiClient = nil
	registry = nil
	return nil
}

// client builds the API client on first use so that config commands work
// even with a broken api_url.
func client() (*api.Client, error) {
	if apiClient != nil {
		return apiClient, nil
	}
	c, err := api.NewClient(cfg.APIURL,
		api.WithToken(cfg.Token),
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid api_url (fix with 'tempmail config set api_url <url>'): %w", err)
	}
	apiClient = c
	return apiClient, nil
}

// editors registers one tag editor per create form.
func editors(c *api.Client) (*tagedit.Registry, error) {
	if registry != nil {
		return registry, nil
	}
	reg := tagedit.NewRegistry()
	for _, name := range []string{tui.CreateTagInput, tui.CustomTagInput} {
		if err := reg.Register(tagedit.New(name, c, tagedit.WithLogger(logger))); err != nil {
			return nil, err
		}
	}
	logger.Debug("tag editors registered", "names", reg.Names())
	registry = reg
	return registry, nil
}

// runForm shows an interactive alias form, preselecting dest or else the
// configured default destination. Logs go to a file while the terminal
// belongs to the form.
func runForm(ctx context.Context, mode tui.Mode, dest string, opts ...tui.FormOption) (tui.Result, error) {
	c, err := client()
	if err != nil {
		return tui.Result{}, err
	}
	reg, err := editors(c)
	if err != nil {
		return tui.Result{}, err
	}
	if dest == "" {
		dest = cfg.DefaultDestination
	}
	form, err := tui.NewForm(ctx, mode, c, reg, dest, opts...)
	if err != nil {
		return tui.Result{}, err
	}

	restore := logToFile()
	defer restore()
	return tui.Run(ctx, form)
}

func logToFile() func() {
	path := filepath.Join(config.Dir(), "tempmail.log")
	if err := os.MkdirAll(config.Dir(), 0750); err != nil {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
