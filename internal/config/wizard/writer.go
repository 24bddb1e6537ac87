package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/imamik/onboard/internal/config"
)

// WriteAnswers writes the answers to a YAML file with a descriptive header.
func WriteAnswers(a *config.Answers, outputPath string) error {
	yamlBytes, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(answersHeader(outputPath, time.Now()))
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func answersHeader(outputPath string, at time.Time) string {
	return fmt.Sprintf("# onboard answers, written by 'onboard init' at %s\n"+
		"#\n"+
		"#   onboard validate -f %[2]s\n"+
		"#   onboard apply -f %[2]s\n\n", at.Format(time.RFC3339), outputPath)
}

// FileExists reports whether anything exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite asks whether an existing answers file may be replaced.
func ConfirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists. Overwrite it?", path)).
		Affirmative("Overwrite").
		Negative("Keep").
		Value(&overwrite).
		Run()
	if err != nil {
		return false, err
	}
	return overwrite, nil
}
