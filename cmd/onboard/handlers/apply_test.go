package handlers

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/onboard/internal/config"
	"github.com/imamik/onboard/internal/headless"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	var sum float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
	}
	return sum
}

func TestApply_Success(t *testing.T) {
	saveAndRestoreFactories(t)
	useSettings(instantSettings())
	useAnswers(validAnswers())

	var err error
	output := captureOutput(func() {
		err = Apply(context.Background(), GlobalOptions{}, ApplyOptions{AnswersPath: "answers.yaml"})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Step 1 of 7")
	assert.Contains(t, output, "Successfully authenticated via GitHub")
	assert.Contains(t, output, "100%")
	assert.NotContains(t, output, "Report written")
}

func TestApply_WritesReport(t *testing.T) {
	saveAndRestoreFactories(t)
	useSettings(instantSettings())
	useAnswers(validAnswers())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }

	var (
		report config.Report
		path   string
	)
	writeReport = func(r config.Report, p string) error {
		report, path = r, p
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Apply(context.Background(), GlobalOptions{}, ApplyOptions{AnswersPath: "a.yaml", ReportPath: "report.yaml"})
	})

	require.NoError(t, err)
	assert.Equal(t, "report.yaml", path)
	assert.NotEmpty(t, report.SessionID)
	assert.Equal(t, fixed, report.GeneratedAt)
	assert.Equal(t, []string{"infra-basic-vpc"}, report.Templates)
	require.NotNil(t, report.Completion)
	assert.NotEmpty(t, report.Completion.RepositoryURL)
	assert.Contains(t, output, "Report written to report.yaml")
}

func TestApply_BlockedRunStillReports(t *testing.T) {
	saveAndRestoreFactories(t)
	useSettings(instantSettings())
	answers := validAnswers()
	answers.Templates = nil
	useAnswers(answers)

	var report *config.Report
	writeReport = func(r config.Report, _ string) error {
		report = &r
		return nil
	}

	var err error
	captureOutput(func() {
		err = Apply(context.Background(), GlobalOptions{}, ApplyOptions{ReportPath: "report.yaml"})
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, headless.ErrStepBlocked)
	assert.Contains(t, err.Error(), "onboarding failed")
	require.NotNil(t, report)
	assert.Nil(t, report.Completion)
	assert.Empty(t, report.Provisioning)
}

func TestApply_FastDropsDelays(t *testing.T) {
	saveAndRestoreFactories(t)
	slow := config.DefaultSettings()
	slow.StepMin = time.Hour
	useSettings(slow)
	useAnswers(validAnswers())

	// An hour-long step would time the test out unless --fast drops it.
	var err error
	captureOutput(func() {
		err = Apply(context.Background(), GlobalOptions{}, ApplyOptions{Fast: true})
	})
	assert.NoError(t, err)
}

func TestApply_MetricsWiring(t *testing.T) {
	saveAndRestoreFactories(t)
	s := instantSettings()
	s.MetricsAddr = "127.0.0.1:0"
	useSettings(s)
	useAnswers(validAnswers())

	var calls []serveCall
	stubServeMetrics(&calls, nil)

	var err error
	captureOutput(func() {
		err = Apply(context.Background(), GlobalOptions{}, ApplyOptions{})
	})

	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "127.0.0.1:0", calls[0].addr)
	reg := calls[0].recorder.Registry()
	assert.Equal(t, float64(1), counterValue(t, reg, "onboard_wizard_sessions_completed_total"))
	assert.Equal(t, float64(1), counterValue(t, reg, "onboard_wizard_authentications_total"))
}

func TestApply_Errors(t *testing.T) {
	t.Run("answers", func(t *testing.T) {
		saveAndRestoreFactories(t)
		cause := errors.New("missing file")
		loadAnswers = func(string) (*config.Answers, error) { return nil, cause }

		assert.ErrorIs(t, Apply(context.Background(), GlobalOptions{}, ApplyOptions{}), cause)
	})

	t.Run("settings", func(t *testing.T) {
		saveAndRestoreFactories(t)
		useAnswers(validAnswers())
		loadSettings = func(string, *pflag.FlagSet) (*config.Settings, error) {
			return nil, config.ErrNegativeDelay
		}

		err := Apply(context.Background(), GlobalOptions{}, ApplyOptions{})
		assert.ErrorIs(t, err, config.ErrNegativeDelay)
		assert.Contains(t, err.Error(), "failed to load settings")
	})

	t.Run("metrics listener", func(t *testing.T) {
		saveAndRestoreFactories(t)
		s := instantSettings()
		s.MetricsAddr = ":1"
		useSettings(s)
		useAnswers(validAnswers())
		var calls []serveCall
		stubServeMetrics(&calls, errors.New("address in use"))

		err := Apply(context.Background(), GlobalOptions{}, ApplyOptions{})
		assert.ErrorContains(t, err, "failed to start metrics server")
	})

	t.Run("report", func(t *testing.T) {
		saveAndRestoreFactories(t)
		useSettings(instantSettings())
		useAnswers(validAnswers())
		writeReport = func(config.Report, string) error { return errors.New("read-only") }

		var err error
		captureOutput(func() {
			err = Apply(context.Background(), GlobalOptions{}, ApplyOptions{ReportPath: "r.yaml"})
		})
		assert.ErrorContains(t, err, "failed to write report")
	})
}

func TestApply_LogsToFile(t *testing.T) {
	saveAndRestoreFactories(t)
	s := instantSettings()
	s.LogFile = t.TempDir() + "/onboard.log"
	useSettings(s)
	useAnswers(validAnswers())

	var err error
	captureOutput(func() {
		err = Apply(context.Background(), GlobalOptions{}, ApplyOptions{})
	})
	require.NoError(t, err)

	data, readErr := os.ReadFile(s.LogFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), `"session"`)
	assert.Contains(t, string(data), "onboarding complete")
}

func TestApply_TagsProvisioningEvents(t *testing.T) {
	saveAndRestoreFactories(t)
	s := instantSettings()
	s.LogFile = t.TempDir() + "/onboard.log"
	s.LogVerbosity = 1
	useSettings(s)
	useAnswers(validAnswers())

	var err error
	captureOutput(func() {
		err = Apply(context.Background(), GlobalOptions{}, ApplyOptions{})
	})
	require.NoError(t, err)

	data, readErr := os.ReadFile(s.LogFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), `"event":"phase.started"`)
	assert.Contains(t, string(data), `"mode":"headless"`)
	assert.Contains(t, string(data), `"project":"checkout"`)
}
