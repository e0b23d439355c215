package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gigtools/gig-optimizer/internal/config"
	"github.com/gigtools/gig-optimizer/internal/optimizer"
	"go.uber.org/zap"
)

func sampleResult(t *testing.T) *optimizer.Result {
	t.Helper()

	conf := config.SampleConfiguration()
	result, err := optimizer.Optimize(zap.NewNop(), conf.Projects, conf.Constraints)
	if err != nil {
		t.Fatalf("failed to build sample result: %v", err)
	}
	return result
}

func TestPrettyString(t *testing.T) {
	rendered := PrettyString(sampleResult(t))

	for _, expected := range []string{
		"--- Optimal project selection ---",
		"Take 4 of 8 projects",
		"TAKE:",
		"SKIP:",
		"WordPress Plugin Development",
		"excluded by optimizer",
		"Total pay:      $5,500.00",
		"$68.75/hr",
		"100.0%",
	} {
		if !strings.Contains(rendered, expected) {
			t.Fatalf("pretty output missing %q:\n%s", expected, rendered)
		}
	}
}

func TestPrettyStringUndefinedRate(t *testing.T) {
	conf := config.SampleConfiguration()
	conf.Constraints.AvailableHours = 0

	result, err := optimizer.Optimize(zap.NewNop(), conf.Projects, conf.Constraints)
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	rendered := PrettyString(result)
	if !strings.Contains(rendered, "Effective rate: n/a") {
		t.Fatalf("expected undefined rate marker in output:\n%s", rendered)
	}
}

func TestCsvString(t *testing.T) {
	rendered := CsvString(sampleResult(t))

	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected header plus 8 rows, got %d lines", len(lines))
	}
	if lines[0] != `"id","project","client","pay","hours","deadline_days","skill_match","taken","skip_reason"` {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(rendered, `"WordPress Plugin Development"`) {
		t.Fatalf("csv missing project row:\n%s", rendered)
	}
	if !strings.Contains(rendered, `"excluded by optimizer"`) {
		t.Fatalf("csv missing skip reason:\n%s", rendered)
	}
}

func TestJSONString(t *testing.T) {
	rendered, err := JSONString(sampleResult(t))
	if err != nil {
		t.Fatalf("json rendering failed: %v", err)
	}

	var decoded optimizer.Result
	if err := json.Unmarshal([]byte(rendered), &decoded); err != nil {
		t.Fatalf("failed to decode rendered JSON: %v", err)
	}
	if decoded.TotalPay != 5500 {
		t.Fatalf("expected total pay 5500 in JSON, got %.2f", decoded.TotalPay)
	}
	if len(decoded.Taken) != 4 {
		t.Fatalf("expected 4 taken decisions in JSON, got %d", len(decoded.Taken))
	}
}
