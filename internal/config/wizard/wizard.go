package wizard

import (
	"context"
	"fmt"

	"github.com/imamik/onboard/internal/config"
)

// RunWizard runs the interactive questionnaire and returns the collected
// answers. The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*config.Answers, error) {
	result := &config.Answers{}

	if err := runIdentityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}

	if err := runProjectGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("project details: %w", err)
	}

	if err := runFrameworkGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("framework: %w", err)
	}

	if err := runTemplatesGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	if err := runConfigurationGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	if err := runTagsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}
