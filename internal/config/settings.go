package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/imamik/onboard/internal/provisioning"
)

// EnvPrefix is prepended to every environment override, e.g.
// ONBOARD_DELAYS_AUTH=500ms.
const EnvPrefix = "ONBOARD"

// Setting keys.
const (
	KeyAuthDelay     = "delays.auth"
	KeyAdvanceDelay  = "delays.advance"
	KeyCopyFeedback  = "delays.copy_feedback"
	KeyStepMin       = "delays.step_min"
	KeyStepJitter    = "delays.step_jitter"
	KeyStepPause     = "delays.step_pause"
	KeyLogFile       = "log.file"
	KeyLogVerbosity  = "log.verbosity"
	KeyMetricsAddr   = "metrics.addr"
	flagLogFile      = "log-file"
	flagMetricsAddr  = "metrics-addr"
	flagLogVerbosity = "verbosity"
)

// Settings holds all configurable runtime values.
type Settings struct {
	AuthDelay    time.Duration // Simulated sign-in time
	AdvanceDelay time.Duration // Display delay before an automatic step transition
	CopyFeedback time.Duration // How long the "copied" indicator stays visible
	StepMin      time.Duration // Minimum provisioning step duration
	StepJitter   time.Duration // Random extra provisioning step duration
	StepPause    time.Duration // Pause after each provisioning step
	LogFile      string        // Log destination; empty discards logs
	LogVerbosity int           // logr V-level enabled in the log file
	MetricsAddr  string        // Listen address for /metrics; empty disables it
}

// DefaultSettings returns the interactive defaults.
func DefaultSettings() *Settings {
	d := provisioning.DefaultDelays()
	return &Settings{
		AuthDelay:    2 * time.Second,
		AdvanceDelay: 2 * time.Second,
		CopyFeedback: 2 * time.Second,
		StepMin:      d.StepMin,
		StepJitter:   d.StepJitter,
		StepPause:    d.Pause,
	}
}

// LoadSettings resolves settings from defaults, the optional file at path,
// ONBOARD_* environment variables and any of flags that were set on the
// command line. flags may be nil.
func LoadSettings(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	def := DefaultSettings()
	v.SetDefault(KeyAuthDelay, def.AuthDelay)
	v.SetDefault(KeyAdvanceDelay, def.AdvanceDelay)
	v.SetDefault(KeyCopyFeedback, def.CopyFeedback)
	v.SetDefault(KeyStepMin, def.StepMin)
	v.SetDefault(KeyStepJitter, def.StepJitter)
	v.SetDefault(KeyStepPause, def.StepPause)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogVerbosity, 0)
	v.SetDefault(KeyMetricsAddr, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			KeyLogFile:      flagLogFile,
			KeyMetricsAddr:  flagMetricsAddr,
			KeyLogVerbosity: flagLogVerbosity,
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	s := &Settings{
		AuthDelay:    v.GetDuration(KeyAuthDelay),
		AdvanceDelay: v.GetDuration(KeyAdvanceDelay),
		CopyFeedback: v.GetDuration(KeyCopyFeedback),
		StepMin:      v.GetDuration(KeyStepMin),
		StepJitter:   v.GetDuration(KeyStepJitter),
		StepPause:    v.GetDuration(KeyStepPause),
		LogFile:      v.GetString(KeyLogFile),
		LogVerbosity: v.GetInt(KeyLogVerbosity),
		MetricsAddr:  v.GetString(KeyMetricsAddr),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ErrNegativeDelay is returned when a configured delay is below zero.
var ErrNegativeDelay = errors.New("delays must not be negative")

// Validate checks that every delay is usable.
func (s *Settings) Validate() error {
	for name, d := range map[string]time.Duration{
		KeyAuthDelay:    s.AuthDelay,
		KeyAdvanceDelay: s.AdvanceDelay,
		KeyCopyFeedback: s.CopyFeedback,
		KeyStepMin:      s.StepMin,
		KeyStepJitter:   s.StepJitter,
		KeyStepPause:    s.StepPause,
	} {
		if d < 0 {
			return fmt.Errorf("%s=%v: %w", name, d, ErrNegativeDelay)
		}
	}
	return nil
}

// Fast returns a copy with every simulated delay removed. The copy feedback
// duration is kept since it only affects display.
func (s *Settings) Fast() *Settings {
	out := *s
	out.AuthDelay = 0
	out.AdvanceDelay = 0
	out.StepMin = 0
	out.StepJitter = 0
	out.StepPause = 0
	return &out
}

// ProvisioningDelays returns the provisioning timing.
func (s *Settings) ProvisioningDelays() provisioning.Delays {
	return provisioning.Delays{
		StepMin:    s.StepMin,
		StepJitter: s.StepJitter,
		Pause:      s.StepPause,
	}
}
