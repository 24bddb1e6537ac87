package onboarding

import (
	"strconv"
	"strings"

	"github.com/imamik/onboard/internal/util/ptr"
)

// ConfigDraft is the screen-local form state of the Configuration step.
type ConfigDraft struct {
	Environment Environment
	DataStore   DataStore
	Budget      int
	Compliance  []string
	Tags        map[string]string
}

// NewConfigDraft seeds a draft from the shared config.
func NewConfigDraft(cfg ProjectConfig) ConfigDraft {
	d := ConfigDraft{
		Environment: cfg.Environment,
		DataStore:   cfg.DataStore,
		Budget:      ptr.Deref(cfg.Budget, 0),
		Compliance:  append([]string{}, cfg.Compliance...),
		Tags:        map[string]string{},
	}
	for k, v := range cfg.Tags {
		d.Tags[k] = v
	}
	return d
}

// SetBudget parses raw budget input. Anything that is not a non-negative
// integer reads as 0, which means no limit.
func (d *ConfigDraft) SetBudget(raw string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		n = 0
	}
	d.Budget = n
}

// ToggleCompliance adds id when absent and removes it when present.
func (d *ConfigDraft) ToggleCompliance(id string) {
	for i, c := range d.Compliance {
		if c == id {
			d.Compliance = append(append([]string{}, d.Compliance[:i]...), d.Compliance[i+1:]...)
			return
		}
	}
	d.Compliance = append(d.Compliance, id)
}

// HasCompliance reports whether id is selected.
func (d ConfigDraft) HasCompliance(id string) bool {
	for _, c := range d.Compliance {
		if c == id {
			return true
		}
	}
	return false
}

// SetTag stores a tag value. An empty value deletes the key instead of
// storing an empty string.
func (d *ConfigDraft) SetTag(key, value string) {
	if d.Tags == nil {
		d.Tags = map[string]string{}
	}
	if value == "" {
		delete(d.Tags, key)
		return
	}
	d.Tags[key] = value
}

// Patch returns the draft as a config patch carrying every draft field.
func (d ConfigDraft) Patch() ConfigPatch {
	tags := make(map[string]string, len(d.Tags))
	for k, v := range d.Tags {
		tags[k] = v
	}
	return ConfigPatch{
		Environment: ptr.To(d.Environment),
		DataStore:   ptr.To(d.DataStore),
		Budget:      ptr.Int(d.Budget),
		Compliance:  append([]string{}, d.Compliance...),
		Tags:        tags,
	}
}
