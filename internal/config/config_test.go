package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
logging:
  level: debug
  format: console
output:
  format: csv
constraints:
  availableHours: 60
  minSkillMatch: 70
projects:
  - name: Landing Page
    client: Acme Corp
    pay: 1200
    hours: 15
    deadlineDays: 7
    skillMatch: 90
  - id: custom-id
    name: Backend Migration
    client: Widgets LLC
    pay: 4000
    hours: 55
    deadlineDays: 30
    skillMatch: 65
`

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}

	if len(conf.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(conf.Projects))
	}
	if conf.Projects[0].Name != "Landing Page" || conf.Projects[0].Pay != 1200 {
		t.Fatalf("unexpected first project: %+v", conf.Projects[0])
	}
	if conf.Projects[0].ID != "p1" {
		t.Fatalf("expected assigned id p1, got %q", conf.Projects[0].ID)
	}
	if conf.Projects[1].ID != "custom-id" {
		t.Fatalf("expected explicit id to be preserved, got %q", conf.Projects[1].ID)
	}
	if conf.Constraints.AvailableHours != 60 || conf.Constraints.MinSkillMatch != 70 {
		t.Fatalf("unexpected constraints: %+v", conf.Constraints)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Fatalf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Fatalf("unexpected output config: %+v", conf.Output)
	}
}

func TestLoadConfigurationFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}
	if len(conf.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(conf.Projects))
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing configuration file")
	}
}

func TestProjectValidate(t *testing.T) {
	valid := Project{Name: "Valid", Client: "C", Pay: 100, Hours: 10, DeadlineDays: 5, SkillMatch: 80}

	tests := []struct {
		name    string
		mutate  func(p Project) Project
		wantErr string
	}{
		{
			name:   "Valid project",
			mutate: func(p Project) Project { return p },
		},
		{
			name:    "Empty name",
			mutate:  func(p Project) Project { p.Name = "  "; return p },
			wantErr: "name",
		},
		{
			name:    "Negative pay",
			mutate:  func(p Project) Project { p.Pay = -1; return p },
			wantErr: "pay",
		},
		{
			name:    "Zero hours",
			mutate:  func(p Project) Project { p.Hours = 0; return p },
			wantErr: "hours",
		},
		{
			name:    "Negative hours",
			mutate:  func(p Project) Project { p.Hours = -3; return p },
			wantErr: "hours",
		},
		{
			name:    "Negative deadline",
			mutate:  func(p Project) Project { p.DeadlineDays = -1; return p },
			wantErr: "deadlineDays",
		},
		{
			name:    "Skill match above range",
			mutate:  func(p Project) Project { p.SkillMatch = 101; return p },
			wantErr: "skillMatch",
		},
		{
			name:    "Skill match below range",
			mutate:  func(p Project) Project { p.SkillMatch = -0.5; return p },
			wantErr: "skillMatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConstraintsValidate(t *testing.T) {
	tests := []struct {
		name        string
		constraints Constraints
		wantErr     string
	}{
		{
			name:        "Valid constraints",
			constraints: Constraints{AvailableHours: 80, MinSkillMatch: 50},
		},
		{
			name:        "Zero hours is valid",
			constraints: Constraints{AvailableHours: 0, MinSkillMatch: 0},
		},
		{
			name:        "Negative hours",
			constraints: Constraints{AvailableHours: -1, MinSkillMatch: 50},
			wantErr:     "availableHours",
		},
		{
			name:        "Skill threshold above range",
			constraints: Constraints{AvailableHours: 80, MinSkillMatch: 150},
			wantErr:     "minSkillMatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constraints.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := &Configuration{
		Projects: []Project{
			{ID: "p1", Name: "Oversized", Client: "", Pay: 5000, Hours: 100, DeadlineDays: 2, SkillMatch: 90},
			{ID: "p2", Name: "Oversized", Client: "Acme", Pay: 100, Hours: 5, DeadlineDays: 7, SkillMatch: 80},
		},
		Constraints: Constraints{AvailableHours: 40, MinSkillMatch: 0},
	}

	warnings := conf.ValidateConfiguration()

	expectWarning := func(substr string) {
		t.Helper()
		for _, warning := range warnings {
			if strings.Contains(warning, substr) {
				return
			}
		}
		t.Fatalf("expected a warning containing %q, got %v", substr, warnings)
	}

	expectWarning("no client")
	expectWarning("can never be selected")
	expectWarning("hours per day")
	expectWarning("more than once")
}

func TestSampleConfiguration(t *testing.T) {
	conf := SampleConfiguration()

	if len(conf.Projects) != 8 {
		t.Fatalf("expected 8 sample projects, got %d", len(conf.Projects))
	}
	if conf.Constraints.AvailableHours != 80 || conf.Constraints.MinSkillMatch != 50 {
		t.Fatalf("unexpected sample constraints: %+v", conf.Constraints)
	}
	if err := conf.Validate(); err != nil {
		t.Fatalf("sample configuration should validate, got %v", err)
	}
	for i, project := range conf.Projects {
		if project.ID == "" {
			t.Fatalf("sample project %d missing id", i)
		}
	}
}

func TestHourlyRate(t *testing.T) {
	p := Project{Pay: 3200, Hours: 50}
	if rate := p.HourlyRate(); rate != 64 {
		t.Fatalf("expected hourly rate 64, got %v", rate)
	}
	zero := Project{Pay: 100, Hours: 0}
	if rate := zero.HourlyRate(); rate != 0 {
		t.Fatalf("expected zero rate for zero hours, got %v", rate)
	}
}
