package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/samples"
	hoisttest "github.com/go-drift/hoisting/pkg/testing"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - tap: Add one
    repeat: 3
  - tap: "[ ]"
    within: 5
  - tap: Show more
    within: "1"
  - reconstruct: true
  - resize: 600x400
  - scroll: 120
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Steps) != 6 {
		t.Fatalf("steps = %d", len(s.Steps))
	}
	if s.Steps[1].Within != 5 {
		t.Errorf("an unquoted key should decode as int, got %T", s.Steps[1].Within)
	}
	if s.Steps[2].Within != "1" {
		t.Errorf("a quoted key should decode as string, got %T", s.Steps[2].Within)
	}
	descs := make([]string, len(s.Steps))
	for i, step := range s.Steps {
		descs[i] = step.Describe()
	}
	want := `tap "Add one" x3|tap "[ ]" within 5|tap "Show more" within 1|reconstruct|resize 600x400|scroll 120`
	if got := strings.Join(descs, "|"); got != want {
		t.Errorf("Describe() = %q\nwant %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, yaml, want string
	}{
		{"empty step", "steps:\n  - {}\n", "no action"},
		{"two actions", "steps:\n  - tap: a\n    reconstruct: true\n", "more than one"},
		{"stray within", "steps:\n  - reconstruct: true\n    within: 3\n", "within"},
		{"bad size", "steps:\n  - resize: big\n", "WxH"},
		{"negative repeat", "steps:\n  - tap: a\n    repeat: -2\n", "repeat"},
		{"not yaml", "steps: [", "parse scenario"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	got, err := ParseSize(" 320X480 ")
	if err != nil || got != (graphics.Size{Width: 320, Height: 480}) {
		t.Errorf("ParseSize = %v, %v", got, err)
	}
	for _, bad := range []string{"320", "0x10", "ax10", "10xb"} {
		if _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) should fail", bad)
		}
	}
}

func TestRunWaterScenario(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.WaterCounter{})

	s, err := Parse([]byte(`
steps:
  - tap: Add one
    repeat: 12
  - tap: Close
  - reconstruct: true
`))
	if err != nil {
		t.Fatal(err)
	}
	var seen []int
	if err := s.Run(tester, func(i int, _ Step) { seen = append(seen, i) }); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 {
		t.Errorf("observed %v", seen)
	}
	if !tester.Find(hoisttest.ByText(samples.GlassesLine(samples.MaxGlasses))).Exists() {
		t.Errorf("painted %q", tester.Texts())
	}
	if !tester.Find(hoisttest.ByText(samples.LabelWalkTask)).Exists() {
		t.Error("the reminder should be back after reconstruction")
	}
}

func TestRunWellnessScenario(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.WellnessScreen{})

	s, err := Parse([]byte(`
steps:
  - tap: "[ ]"
    within: 5
  - tap: Close
    within: 0
  - scroll: 400
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(tester, nil); err != nil {
		t.Fatal(err)
	}
	items := tester.Host().Registry().Live(samples.WellnessScope).Collection(samples.KeyTasks).Items()
	if len(items) != 29 || items[0].ID != 1 {
		t.Errorf("items = %d, first id %d", len(items), items[0].ID)
	}
	if tester.Find(hoisttest.ByText("Task # 1")).Exists() {
		t.Error("scrolling should move the first rows out of view")
	}
}

func TestRunReportsFailingStep(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.WaterCounter{})

	s, err := Parse([]byte("steps:\n  - reconstruct: true\n  - tap: Nope\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = s.Run(tester, nil)
	if err == nil || !strings.Contains(err.Error(), `step 2 (tap "Nope")`) {
		t.Errorf("Run() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - resize: 200x300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil || len(s.Steps) != 1 {
		t.Fatalf("Load() = %v, %v", s, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
