// Package config defines the data structures for the project catalog and the
// run constraints, and includes functions for loading and validating the
// configuration.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/gigtools/gig-optimizer/pkg/constants"
	"github.com/gigtools/gig-optimizer/pkg/mathutil"
	"github.com/gigtools/gig-optimizer/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds the full input for one optimization run.
type Configuration struct {
	Projects    []Project
	Constraints Constraints
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Project is one freelance opportunity under consideration. A project is
// atomic: it is either fully taken or fully skipped.
type Project struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Client       string  `json:"client"`
	Pay          float64 `json:"pay"`
	Hours        float64 `json:"hours"`
	DeadlineDays int     `json:"deadlineDays"` // informational; never enters the model
	SkillMatch   float64 `json:"skillMatch"`
}

// HourlyRate returns the project's pay per hour, or 0 for non-positive hours.
func (p Project) HourlyRate() float64 {
	if p.Hours <= 0 {
		return 0
	}
	return p.Pay / p.Hours
}

// Validate checks the numeric invariants of a single project and reports the
// first violated field.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !mathutil.IsFinite(p.Pay) || p.Pay < 0 {
		return fmt.Errorf("project %q: pay must be a non-negative finite number, got %v", p.Name, p.Pay)
	}
	if !mathutil.IsFinite(p.Hours) || p.Hours <= 0 {
		return fmt.Errorf("project %q: hours must be a positive finite number, got %v", p.Name, p.Hours)
	}
	if p.DeadlineDays < 0 {
		return fmt.Errorf("project %q: deadlineDays must not be negative, got %d", p.Name, p.DeadlineDays)
	}
	if !mathutil.IsFinite(p.SkillMatch) || p.SkillMatch < constants.SkillMatchMin || p.SkillMatch > constants.SkillMatchMax {
		return fmt.Errorf("project %q: skillMatch must be between %.0f and %.0f, got %v",
			p.Name, constants.SkillMatchMin, constants.SkillMatchMax, p.SkillMatch)
	}
	return nil
}

// Constraints bound a single optimization run.
type Constraints struct {
	AvailableHours float64 `json:"availableHours"`
	MinSkillMatch  float64 `json:"minSkillMatch"`
}

// Validate checks the constraint scalars and reports the first violated field.
func (c Constraints) Validate() error {
	if !mathutil.IsFinite(c.AvailableHours) || c.AvailableHours < 0 {
		return fmt.Errorf("availableHours must be a non-negative finite number, got %v", c.AvailableHours)
	}
	if !mathutil.IsFinite(c.MinSkillMatch) || c.MinSkillMatch < constants.SkillMatchMin || c.MinSkillMatch > constants.SkillMatchMax {
		return fmt.Errorf("minSkillMatch must be between %.0f and %.0f, got %v",
			constants.SkillMatchMin, constants.SkillMatchMax, c.MinSkillMatch)
	}
	return nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// provided reader. Used by the HTTP server for request-supplied catalogs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.AssignProjectIDs()
	return &configuration, nil
}

// AssignProjectIDs gives every project without an explicit id a sequential
// one. IDs are stable for the duration of a run.
func (conf *Configuration) AssignProjectIDs() {
	for i := range conf.Projects {
		if strings.TrimSpace(conf.Projects[i].ID) == "" {
			conf.Projects[i].ID = fmt.Sprintf("p%d", i+1)
		}
	}
}

// Validate fails fast on the first invalid project or constraint field. No
// optimization should be attempted on a configuration that fails here.
func (conf *Configuration) Validate() error {
	for _, project := range conf.Projects {
		if err := project.Validate(); err != nil {
			return err
		}
	}
	return conf.Constraints.Validate()
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Unlike Validate, nothing here stops a run.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	seen := make(map[string]bool)
	for _, project := range conf.Projects {
		if warning := validation.ValidateClient(project.Name, project.Client); warning != "" {
			warnings = append(warnings, warning)
		}
		if warning := validation.ValidateProjectLoad(project.Name, project.Hours, conf.Constraints.AvailableHours); warning != "" {
			warnings = append(warnings, warning)
		}
		if warning := validation.ValidateDeadline(project.Name, project.Hours, project.DeadlineDays); warning != "" {
			warnings = append(warnings, warning)
		}
		if seen[project.Name] {
			warnings = append(warnings, fmt.Sprintf("Project '%s' appears more than once in the catalog", project.Name))
		}
		seen[project.Name] = true
	}

	return warnings
}

// SampleConfiguration returns the built-in demonstration catalog: eight
// projects, 80 available hours, and a 50 percent skill threshold.
func SampleConfiguration() *Configuration {
	conf := &Configuration{
		Projects: []Project{
			{Name: "E-commerce Website Redesign", Client: "TechStart Inc", Pay: 2500, Hours: 40, DeadlineDays: 14, SkillMatch: 95},
			{Name: "Mobile App UI/UX Design", Client: "HealthApp Co", Pay: 1800, Hours: 25, DeadlineDays: 10, SkillMatch: 80},
			{Name: "Data Dashboard Development", Client: "FinanceMetrics", Pay: 3200, Hours: 50, DeadlineDays: 21, SkillMatch: 90},
			{Name: "API Integration Project", Client: "RetailHub", Pay: 1500, Hours: 20, DeadlineDays: 7, SkillMatch: 75},
			{Name: "Brand Identity Package", Client: "GreenLeaf Studio", Pay: 800, Hours: 12, DeadlineDays: 5, SkillMatch: 60},
			{Name: "SEO Optimization Campaign", Client: "LocalBiz Group", Pay: 1200, Hours: 18, DeadlineDays: 14, SkillMatch: 85},
			{Name: "Social Media Content Strategy", Client: "FashionBrand", Pay: 600, Hours: 10, DeadlineDays: 7, SkillMatch: 70},
			{Name: "WordPress Plugin Development", Client: "BloggerPro", Pay: 2000, Hours: 30, DeadlineDays: 14, SkillMatch: 88},
		},
		Constraints: Constraints{
			AvailableHours: 80,
			MinSkillMatch:  50,
		},
	}
	conf.AssignProjectIDs()
	return conf
}
