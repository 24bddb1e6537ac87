// Package handlers implements the business logic for CLI commands.
//
// Each handler loads settings, builds the logger and metrics recorder for the
// session, and drives either the terminal UI or the headless driver. Handler
// dependencies are package-level function variables so tests can replace
// them.
package handlers

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/imamik/onboard/internal/config"
	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/logging"
	"github.com/imamik/onboard/internal/metrics"
	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/provisioning"
)

// GlobalOptions carries the persistent root flags.
type GlobalOptions struct {
	// ConfigPath is the optional settings file.
	ConfigPath string
	// Flags holds the parsed flags; set values override the settings file.
	Flags *pflag.FlagSet
}

// Factory function variables for sessions - can be replaced in tests.
var (
	loadSettings = config.LoadSettings
	newLogger    = logging.New
	serveMetrics = metrics.Serve
)

// session holds everything one wizard run shares.
type session struct {
	ctx      context.Context
	cancel   context.CancelFunc
	id       string
	settings *config.Settings
	log      logr.Logger
	recorder *metrics.Recorder
	closeLog func() error
}

// openSession resolves settings and starts logging and, when configured, the
// metrics listener. fast drops every simulated delay.
func openSession(ctx context.Context, opts GlobalOptions, fast bool) (*session, error) {
	settings, err := loadSettings(opts.ConfigPath, opts.Flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if fast {
		settings = settings.Fast()
	}

	log, closeLog, err := newLogger(logging.Options{File: settings.LogFile, Verbosity: settings.LogVerbosity})
	if err != nil {
		return nil, err
	}

	id := config.NewSessionID()
	log = log.WithValues("session", id)
	ctx, cancel := context.WithCancel(logging.IntoContext(ctx, log))

	s := &session{
		ctx:      ctx,
		cancel:   cancel,
		id:       id,
		settings: settings,
		log:      log,
		recorder: metrics.NewRecorder(),
		closeLog: closeLog,
	}

	if settings.MetricsAddr != "" {
		if _, err := serveMetrics(ctx, settings.MetricsAddr, s.recorder); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to start metrics server: %w", err)
		}
	}

	log.Info("session started")
	return s, nil
}

// Close stops the metrics listener and flushes the log file.
func (s *session) Close() {
	s.cancel()
	if err := s.closeLog(); err != nil {
		s.log.Error(err, "failed to close log file")
	}
}

func (s *session) store() *onboarding.Store {
	return onboarding.NewStore(
		onboarding.WithLogger(s.log.WithName("store")),
		onboarding.WithRecorder(s.recorder),
	)
}

func (s *session) authenticator() *identity.Authenticator {
	return identity.NewAuthenticator(s.settings.AuthDelay)
}

// runner builds the provisioning runner. fields are attached to every
// provisioning event.
func (s *session) runner(fields map[string]string) *provisioning.Runner {
	r := provisioning.NewRunner(s.settings.ProvisioningDelays(), s.log)
	r.Durations = s.recorder
	r.Observer = r.Observer.WithFields(fields)
	return r
}
