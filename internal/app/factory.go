// Package app assembles the pieces of a running session: config,
// logging, storage, the command registry and the shell.
package app

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rolo-tools/cli/internal/commands"
	"github.com/rolo-tools/cli/internal/config"
	"github.com/rolo-tools/cli/internal/dispatchers"
	"github.com/rolo-tools/cli/internal/domain"
	"github.com/rolo-tools/cli/internal/log"
	"github.com/rolo-tools/cli/internal/paths"
	"github.com/rolo-tools/cli/internal/shell"
	"github.com/rolo-tools/cli/internal/store"
	"github.com/rolo-tools/cli/internal/ui"
	"github.com/rolo-tools/cli/internal/ui/style"
)

const defaultHistorySize = 500

// Options controls how the application is assembled.
type Options struct {
	// StyleEnabled turns colored output on.
	StyleEnabled bool
	// Interactive selects the completing prompt over plain stdin reads.
	Interactive bool
	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// App is a fully wired session.
type App struct {
	Shell *shell.Shell
	Store *store.Store
	Log   domain.Logger
}

// New builds an App from the on-disk config and data directory.
func New(opts Options) (*App, error) {
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cfg, err := config.GetAll()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	style.Init(opts.StyleEnabled, cfg)

	logger, err := buildLogger(cfg)
	if err != nil {
		return nil, err
	}

	st, err := store.New(paths.DBFilePath())
	if err != nil {
		logger.Error("opening store: %v", err)
		_ = logger.Close()
		return nil, fmt.Errorf("opening store: %w", err)
	}

	registry := commands.NewRegistry()
	for _, cmd := range commands.All() {
		if err := registry.Register(cmd); err != nil {
			_ = st.Close()
			_ = logger.Close()
			return nil, fmt.Errorf("registering %s: %w", cmd.Name(), err)
		}
	}

	console := ui.NewConsole(stdout, stdin)
	ctx := &commands.Context{
		Contacts: st.Contacts(),
		Notes:    st.Notes(),
		Registry: registry,
		Out:      console,
		Log:      logger,
	}

	history, err := shell.LoadHistory(paths.HistoryFilePath(), historySize(cfg))
	if err != nil {
		logger.Warn("loading history: %v", err)
		history = nil
	}

	sh := shell.New(shell.Options{
		Dispatcher:  dispatchers.New(registry, ctx),
		Out:         console,
		History:     history,
		Suggestions: registry.Names(),
		Stdin:       stdin,
		Interactive: opts.Interactive,
	})

	logger.Info("session started")
	return &App{Shell: sh, Store: st, Log: logger}, nil
}

// Close releases the store and the logger.
func (a *App) Close() error {
	a.Log.Info("session ended")
	err := a.Store.Close()
	if cerr := a.Log.Close(); err == nil {
		err = cerr
	}
	return err
}

func buildLogger(cfg map[string]string) (domain.Logger, error) {
	if cfg["enable_log"] != "true" {
		return log.NopLogger{}, nil
	}
	logger, err := log.New(paths.LogFilePath(), log.ParseLevel(cfg["log_level"]))
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	return logger, nil
}

func historySize(cfg map[string]string) int {
	if size, err := strconv.Atoi(cfg["history_size"]); err == nil && size > 0 {
		return size
	}
	return defaultHistorySize
}
