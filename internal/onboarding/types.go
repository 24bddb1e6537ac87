package onboarding

import (
	"strconv"
	"strings"
	"time"
)

// ProjectType is the kind of project being onboarded.
type ProjectType string

// Project types offered by the Project Details step.
const (
	ProjectWebApp       ProjectType = "web-app"
	ProjectAPIService   ProjectType = "api-service"
	ProjectMobileApp    ProjectType = "mobile-app"
	ProjectDataPipeline ProjectType = "data-pipeline"
	ProjectMLModel      ProjectType = "ml-model"
)

// Environment is the deployment environment for provisioned resources.
type Environment string

// Environments offered by the Configuration step.
const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Language is the primary implementation language.
type Language string

// Languages offered by the Project Details step.
const (
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
	LangJava       Language = "java"
	LangGo         Language = "go"
	LangRust       Language = "rust"
)

// DataStore is the backing data store for the project.
type DataStore string

// Data stores offered by the Configuration step.
const (
	StoreNone     DataStore = "none"
	StorePostgres DataStore = "postgres"
	StoreMongoDB  DataStore = "mongodb"
	StoreRedis    DataStore = "redis"
	StoreDynamoDB DataStore = "dynamodb"
)

// TemplateType partitions the template catalog.
type TemplateType string

// Template types.
const (
	TemplateInfrastructure TemplateType = "infrastructure"
	TemplateRepository     TemplateType = "repository"
)

// Complexity grades how involved a template is.
type Complexity string

// Template complexities.
const (
	ComplexitySimple       Complexity = "simple"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

// Severity distinguishes blocking validation results from informational ones.
type Severity string

// Validation severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// StepStatus is the lifecycle state of a provisioning step.
type StepStatus string

// Provisioning step statuses. StatusFailed is part of the enumeration but the
// simulated run never enters it.
const (
	StatusPending   StepStatus = "pending"
	StatusRunning   StepStatus = "running"
	StatusCompleted StepStatus = "completed"
	StatusFailed    StepStatus = "failed"
)

// User is the authenticated identity. It is immutable once set.
type User struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Avatar   string `yaml:"avatar,omitempty"`
	Role     string `yaml:"role"`
	Team     string `yaml:"team"`
	Provider string `yaml:"provider,omitempty"`
}

// ProjectConfig is built incrementally across steps. Zero values mean the
// field has not been provided yet.
type ProjectConfig struct {
	Name        string            `yaml:"name,omitempty"`
	DisplayName string            `yaml:"displayName,omitempty"`
	Description string            `yaml:"description,omitempty"`
	ProjectType ProjectType       `yaml:"projectType,omitempty"`
	Environment Environment       `yaml:"environment,omitempty"`
	Language    Language          `yaml:"language,omitempty"`
	Framework   string            `yaml:"framework,omitempty"`
	DataStore   DataStore         `yaml:"dataStore,omitempty"`
	Owner       string            `yaml:"owner,omitempty"`
	Team        string            `yaml:"team,omitempty"`
	Tags        map[string]string `yaml:"tags,omitempty"`
	Budget      *int              `yaml:"budget,omitempty"`
	Compliance  []string          `yaml:"compliance,omitempty"`
}

// Clone returns a deep copy of the config.
func (c ProjectConfig) Clone() ProjectConfig {
	out := c
	if c.Tags != nil {
		out.Tags = make(map[string]string, len(c.Tags))
		for k, v := range c.Tags {
			out.Tags[k] = v
		}
	}
	if c.Budget != nil {
		b := *c.Budget
		out.Budget = &b
	}
	if c.Compliance != nil {
		out.Compliance = append([]string{}, c.Compliance...)
	}
	return out
}

// Template is a catalog entry for an infrastructure or repository starter.
type Template struct {
	ID            string       `yaml:"id"`
	Name          string       `yaml:"name"`
	Description   string       `yaml:"description"`
	Type          TemplateType `yaml:"type"`
	Category      string       `yaml:"category"`
	Technologies  []string     `yaml:"technologies"`
	Complexity    Complexity   `yaml:"complexity"`
	EstimatedTime string       `yaml:"estimatedTime"`
	Resources     []string     `yaml:"resources"`
	Preview       string       `yaml:"preview,omitempty"`
}

// Minutes returns the numeric prefix of EstimatedTime ("15 minutes" -> 15).
// A missing or non-numeric prefix counts as zero.
func (t Template) Minutes() int {
	s := strings.TrimSpace(t.EstimatedTime)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// ValidationResult is one finding of the Review step.
type ValidationResult struct {
	Field   string   `yaml:"field"`
	Message string   `yaml:"message"`
	Type    Severity `yaml:"type"`
}

// IsError reports whether the result blocks proceeding.
func (r ValidationResult) IsError() bool {
	return r.Type == SeverityError
}

// ProvisioningStep is one unit of the simulated setup sequence.
type ProvisioningStep struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	Status    StepStatus `yaml:"status"`
	Message   string     `yaml:"message,omitempty"`
	Details   string     `yaml:"details,omitempty"`
	StartTime *time.Time `yaml:"startTime,omitempty"`
	EndTime   *time.Time `yaml:"endTime,omitempty"`
}

// CompletionData is the payload shown once provisioning finishes.
type CompletionData struct {
	RepositoryURL      string   `yaml:"repositoryUrl"`
	InfrastructureURLs []string `yaml:"infrastructureUrls"`
	AccessDetails      []string `yaml:"accessDetails"`
	NextSteps          []string `yaml:"nextSteps"`
}

// State is the complete wizard state for one session.
type State struct {
	CurrentStep       Step
	User              *User
	Config            ProjectConfig
	SelectedTemplates []Template
	ValidationResults []ValidationResult
	Provisioning      []ProvisioningStep
	IsComplete        bool
	Completion        *CompletionData
}

// HasErrors reports whether any validation result is an error.
func (s State) HasErrors() bool {
	for _, r := range s.ValidationResults {
		if r.IsError() {
			return true
		}
	}
	return false
}
