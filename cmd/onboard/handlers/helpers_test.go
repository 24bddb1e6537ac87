package handlers

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"testing"

	"github.com/spf13/pflag"

	"github.com/imamik/onboard/internal/config"
	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/metrics"
	"github.com/imamik/onboard/internal/util/ptr"
)

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	_ = w.Close()
	os.Stdout = old
	return <-done
}

// saveAndRestoreFactories restores every factory variable after the test.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoadSettings := loadSettings
	origNewLogger := newLogger
	origServeMetrics := serveMetrics
	origIsTerminal := isTerminal
	origRunWizardTUI := runWizardTUI
	origFileExists := fileExists
	origConfirmOverwrite := confirmOverwrite
	origRunWizard := runWizard
	origWriteAnswers := writeAnswers
	origLoadAnswers := loadAnswers
	origWriteReport := writeReport
	origNow := now

	t.Cleanup(func() {
		loadSettings = origLoadSettings
		newLogger = origNewLogger
		serveMetrics = origServeMetrics
		isTerminal = origIsTerminal
		runWizardTUI = origRunWizardTUI
		fileExists = origFileExists
		confirmOverwrite = origConfirmOverwrite
		runWizard = origRunWizard
		writeAnswers = origWriteAnswers
		loadAnswers = origLoadAnswers
		writeReport = origWriteReport
		now = origNow
	})
}

// useSettings makes every session load s.
func useSettings(s *config.Settings) {
	loadSettings = func(string, *pflag.FlagSet) (*config.Settings, error) {
		return s, nil
	}
}

// instantSettings has no simulated delay.
func instantSettings() *config.Settings {
	s := config.DefaultSettings().Fast()
	s.CopyFeedback = 0
	return s
}

func useAnswers(a *config.Answers) {
	loadAnswers = func(string) (*config.Answers, error) {
		return a, nil
	}
}

func validAnswers() *config.Answers {
	return &config.Answers{
		Provider: identity.GitHub,
		Project: config.ProjectAnswers{
			Name:        "checkout",
			DisplayName: "Checkout",
			Description: "Cart and checkout service",
			ProjectType: "api-service",
			Language:    "go",
		},
		Templates: []string{"infra-basic-vpc"},
		Configuration: config.ConfigurationAnswers{
			Environment: "development",
			DataStore:   "redis",
			Budget:      ptr.Int(100),
		},
	}
}

type serveCall struct {
	addr     string
	recorder *metrics.Recorder
}

func stubServeMetrics(calls *[]serveCall, err error) {
	serveMetrics = func(_ context.Context, addr string, r *metrics.Recorder) (net.Addr, error) {
		*calls = append(*calls, serveCall{addr: addr, recorder: r})
		if err != nil {
			return nil, err
		}
		return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 9090}, nil
	}
}
