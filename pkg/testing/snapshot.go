package testing

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/hoisting/pkg/layout"
)

// updateEnv names the variable that rewrites golden files instead of
// comparing against them.
const updateEnv = "HOIST_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the render tree and the painted text of a frame.
type Snapshot struct {
	RenderTree *RenderNode `yaml:"renderTree"`
	Texts      []string    `yaml:"texts,omitempty"`
}

// RenderNode is one node of the serialized render tree.
type RenderNode struct {
	Type     string        `yaml:"type"`
	Size     [2]float64    `yaml:"size,flow"`
	Offset   [2]float64    `yaml:"offset,flow"`
	Text     string        `yaml:"text,omitempty"`
	Children []*RenderNode `yaml:"children,omitempty"`
}

// CaptureSnapshot captures the current render tree and last frame.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Texts: t.Texts()}
	if root := t.host.RootRender(); root != nil {
		snap.RenderTree = captureRenderNode(root)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. With
// HOIST_UPDATE_SNAPSHOTS=1 the file is written instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, updateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}
	expected := &Snapshot{}
	if err := yaml.Unmarshal(data, expected); err != nil {
		t.Fatalf("failed to parse snapshot %s: %v", path, err)
		return
	}
	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, updateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff from other to s, or "" when they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := yaml.Marshal(s)
	b, _ := yaml.Marshal(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func captureRenderNode(ro layout.RenderObject) *RenderNode {
	size := ro.Size()
	offset := layout.ChildOffset(ro)
	node := &RenderNode{
		Type:   renderTypeName(ro),
		Size:   [2]float64{round2(size.Width), round2(size.Height)},
		Offset: [2]float64{round2(offset.X), round2(offset.Y)},
	}
	if text, ok := ro.(interface{ Content() string }); ok {
		node.Text = text.Content()
	}
	if visitor, ok := ro.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			node.Children = append(node.Children, captureRenderNode(child))
		})
	}
	return node
}

// renderTypeName turns *widgets.renderText into "RenderText".
func renderTypeName(ro layout.RenderObject) string {
	t := reflect.TypeOf(ro)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return t.String()
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// lineDiff marks lines of want missing from got with "-" and lines of got
// missing from want with "+", in order, using a longest common subsequence.
func lineDiff(want, got string) string {
	a := strings.Split(strings.TrimSuffix(want, "\n"), "\n")
	b := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var sb strings.Builder
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && j < len(b) && a[i] == b[j]:
			fmt.Fprintf(&sb, "  %s\n", a[i])
			i++
			j++
		case j < len(b) && (i == len(a) || lcs[i][j+1] >= lcs[i+1][j]):
			fmt.Fprintf(&sb, "+ %s\n", b[j])
			j++
		default:
			fmt.Fprintf(&sb, "- %s\n", a[i])
			i++
		}
	}
	return sb.String()
}
