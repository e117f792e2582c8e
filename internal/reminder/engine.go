// Package reminder runs the periodic checks that turn upcoming items into
// notifications.
package reminder

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/config"
	"github.com/shepherd-cli/shepherd/internal/logging"
	"github.com/shepherd-cli/shepherd/internal/model"
)

// Notifier raises a platform-level notification. Best-effort: failures are
// swallowed, the in-app notification record exists regardless.
type Notifier interface {
	Notify(title, body string)
}

// Engine scans events, visits, sermons and the call sheet against the clock
// and emits deduplicated notifications when items cross their lead-time
// thresholds.
type Engine struct {
	app      *app.App
	notifier Notifier
	cfg      config.Reminders
	cron     *cron.Cron
	now      func() time.Time
	log      *slog.Logger

	mu       sync.Mutex
	lastTick time.Time
}

// Options configures the engine.
type Options struct {
	App      *app.App
	Notifier Notifier
	Config   config.Reminders
	// Now is the time source; defaults to time.Now.
	Now func() time.Time
}

// New creates an engine. It does not start ticking until Start.
func New(opts Options) *Engine {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		app:      opts.App,
		notifier: opts.Notifier,
		cfg:      opts.Config,
		cron:     cron.New(),
		now:      now,
		log:      logging.L(),
	}
}

// Start runs one check immediately, then schedules the periodic tick.
func (e *Engine) Start() error {
	e.mu.Lock()
	e.lastTick = e.now()
	e.mu.Unlock()

	e.Check()

	spec := fmt.Sprintf("@every %s", e.cfg.CheckIntervalDuration())
	if _, err := e.cron.AddFunc(spec, e.tick); err != nil {
		return fmt.Errorf("failed to schedule reminder checks: %w", err)
	}
	e.cron.Start()
	e.log.Debug("reminder engine started", "interval", e.cfg.CheckIntervalDuration())
	return nil
}

// Stop halts the periodic tick and waits for a running check to finish.
func (e *Engine) Stop() {
	ctx := e.cron.Stop()
	<-ctx.Done()
	e.log.Debug("reminder engine stopped")
}

// tick guards against stale wake-ups after a system sleep: a gap over an
// hour means the accumulated "upcoming" items are likely already past.
func (e *Engine) tick() {
	e.mu.Lock()
	elapsed := e.now().Sub(e.lastTick)
	e.lastTick = e.now()
	e.mu.Unlock()

	if elapsed > time.Hour {
		e.log.Debug("skipping stale reminder check", "elapsed", elapsed.Round(time.Second))
		return
	}
	e.Check()
}

// Check runs all reminder checks once against the current time. The week
// rollover check runs first so a session crossing a week boundary regenerates
// the call sheet without a restart.
func (e *Engine) Check() {
	e.app.EnsureCurrentWeek()

	now := e.now()
	e.checkEvents(now)
	e.checkVisits(now)
	e.checkSermons(now)
	e.checkUrgentCalls(now)
}

// emit records the in-app notification and, when it was newly created,
// mirrors it to the platform channel.
func (e *Engine) emit(title, message string, target model.Target) {
	created := e.app.AddNotification(model.NotifyReminder, title, message, target)
	if created && e.notifier != nil {
		e.notifier.Notify(title, message)
	}
}
