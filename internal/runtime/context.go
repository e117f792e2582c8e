// Package runtime provides application runtime context for Shepherd.
package runtime

import (
	"log/slog"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/config"
	"github.com/shepherd-cli/shepherd/internal/logging"
	"github.com/shepherd-cli/shepherd/internal/notify"
	"github.com/shepherd-cli/shepherd/internal/output"
	"github.com/shepherd-cli/shepherd/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.Config
	DB        *storage.DB
	App       *app.App
	Webhooks  *storage.WebhookRepo
	Notifier  *notify.Dispatcher
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string
	DataDir    string
	InMemory   bool
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context: configuration, logging, database, and
// the organizer state on top of them.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}

	logCfg := logging.Config{Level: logging.ParseLevel(cfg.LogLevel)}
	if opts.Debug {
		logCfg.Level = slog.LevelDebug
		logCfg.AddSource = true
	}
	logging.Configure(logCfg)

	dbPath := cfg.DataDir
	if dbPath == "" {
		dbPath = storage.DefaultPath()
	}
	db, err := storage.Open(storage.Options{
		Path:     dbPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	organizer, err := app.New(app.Options{
		Store:   storage.NewStateStore(db),
		Toaster: output.NewCLIFormatter(formatter),
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	webhooks := storage.NewWebhookRepo(db)

	return &Context{
		Config:    cfg,
		DB:        db,
		App:       organizer,
		Webhooks:  webhooks,
		Notifier:  notify.NewDispatcher(webhooks),
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
