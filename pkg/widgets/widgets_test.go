package widgets_test

import (
	"fmt"
	"testing"

	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
	hoisttest "github.com/go-drift/hoisting/pkg/testing"
	"github.com/go-drift/hoisting/pkg/widgets"
)

func offsetOf(t *testing.T, tester *hoisttest.WidgetTester, finder hoisttest.Finder) graphics.Offset {
	t.Helper()
	bounds, ok := layout.GlobalBounds(tester.RootRenderObject(), tester.Find(finder).RenderObject())
	if !ok {
		t.Fatalf("%s is not laid out", finder.Description())
	}
	return graphics.Offset{X: bounds.Left, Y: bounds.Top}
}

func TestPadding_OffsetsChild(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Column{Children: []core.Widget{
		widgets.Padded(layout.EdgeInsets{Left: 10, Top: 5, Right: 2, Bottom: 3}, widgets.Text{Content: "pad"}),
	}})

	if got := offsetOf(t, tester, hoisttest.ByText("pad")); got != (graphics.Offset{X: 10, Y: 5}) {
		t.Errorf("text offset = %v, want (10, 5)", got)
	}
	size := tester.Find(hoisttest.ByType[widgets.Padding]()).RenderObject().Size()
	text := graphics.MeasureText("pad")
	if size.Width != text.Width+12 || size.Height != text.Height+8 {
		t.Errorf("padding size = %v, text = %v", size, text)
	}
}

func TestSizedBox_FixesDimensions(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Column{Children: []core.Widget{
		widgets.SizedBox{Width: 120, Height: 30, Child: widgets.Text{Content: "x"}},
		widgets.VSpace(12),
	}})

	boxes := tester.Find(hoisttest.ByType[widgets.SizedBox]())
	if size := boxes.RenderObject().Size(); size != (graphics.Size{Width: 120, Height: 30}) {
		t.Errorf("sized box = %v", size)
	}
	if size := boxes.At(1).(interface{ RenderObject() layout.RenderObject }).RenderObject().Size(); size.Height != 12 {
		t.Errorf("spacer = %v", size)
	}
}

func TestColumn_StacksWithSpacing(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Column{Spacing: 4, Children: []core.Widget{
		widgets.Text{Content: "one"},
		widgets.Text{Content: "two"},
	}})

	line := graphics.LineHeight()
	if got := offsetOf(t, tester, hoisttest.ByText("two")).Y; got != line+4 {
		t.Errorf("second child y = %v, want %v", got, line+4)
	}
}

func TestRow_SpaceBetweenAndExpanded(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	tester.PumpWidget(widgets.Column{Children: []core.Widget{
		widgets.Row{
			MainAxisAlignment: widgets.MainAxisAlignmentSpaceBetween,
			Children: []core.Widget{
				widgets.Text{Content: "left"},
				widgets.Text{Content: "right"},
			},
		},
		widgets.Row{Children: []core.Widget{
			widgets.SizedBox{Width: 50, Height: 10},
			widgets.Expanded{Child: widgets.Text{Content: "fill"}},
		}},
	}})

	right := offsetOf(t, tester, hoisttest.ByText("right"))
	if want := 200 - graphics.MeasureText("right").Width; right.X != want {
		t.Errorf("right x = %v, want %v", right.X, want)
	}
	expanded := tester.Find(hoisttest.ByType[widgets.Expanded]()).RenderObject().Size()
	if expanded.Width != 150 {
		t.Errorf("expanded width = %v, want 150", expanded.Width)
	}
}

func TestOwnColumn_StacksChildrenAtRunningHeight(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Column{Children: []core.Widget{
		widgets.OwnColumn{Children: []core.Widget{
			widgets.Text{Content: "Hello,"},
			widgets.SizedBox{Width: 40, Height: 25},
			widgets.Text{Content: "world of layouts"},
		}},
	}})

	line := graphics.LineHeight()
	if got := offsetOf(t, tester, hoisttest.ByText("world of layouts")); got != (graphics.Offset{X: 0, Y: line + 25}) {
		t.Errorf("third child offset = %v", got)
	}
	size := tester.Find(hoisttest.ByType[widgets.OwnColumn]()).RenderObject().Size()
	want := graphics.Size{Width: graphics.MeasureText("world of layouts").Width, Height: 2*line + 25}
	if size != want {
		t.Errorf("own column size = %v, want %v", size, want)
	}
}

func TestText_Wraps(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 200})
	content := "Composem ipsum color sit lazy, padding theme elit"
	tester.PumpWidget(widgets.Column{Children: []core.Widget{
		widgets.Text{Content: content, Wrap: true},
	}})

	lines := tester.Texts()
	if len(lines) < 2 {
		t.Fatalf("expected wrapped lines, got %q", lines)
	}
	for _, line := range lines {
		if graphics.MeasureText(line).Width > 100 {
			t.Errorf("line %q wider than 100", line)
		}
	}
	if !tester.Find(hoisttest.ByText(content)).Exists() {
		t.Error("finder should match the full content")
	}
}

func TestButton_TapAndDisabled(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	taps := 0
	build := func(disabled bool) core.Widget {
		return widgets.Column{Children: []core.Widget{
			widgets.ButtonOf("Add one", func() { taps++ }).WithDisabled(disabled),
		}}
	}

	tester.PumpWidget(build(false))
	if err := tester.Tap(hoisttest.ByText("Add one")); err != nil {
		t.Fatal(err)
	}
	if taps != 1 {
		t.Fatalf("taps = %d, want 1", taps)
	}

	tester.PumpWidget(build(true))
	tester.Tap(hoisttest.ByText("Add one"))
	if taps != 1 {
		t.Errorf("disabled button fired: taps = %d", taps)
	}
	var gray bool
	for _, op := range tester.DisplayList().Ops() {
		if !op.IsText() && op.Paint.Color == graphics.ColorGray {
			gray = true
		}
	}
	if !gray {
		t.Error("disabled button should paint gray")
	}
}

func TestCheckbox_ReportsRequestedValue(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	var got []bool
	tester.PumpWidget(widgets.Column{Children: []core.Widget{
		widgets.Checkbox{Value: false, OnChanged: func(v bool) { got = append(got, v) }},
	}})

	tester.Tap(hoisttest.ByText("[ ]"))
	tester.Pump()
	tester.Tap(hoisttest.ByText("[ ]"))

	if fmt.Sprint(got) != "[true true]" {
		t.Errorf("OnChanged calls = %v; a controlled checkbox must not flip itself", got)
	}
}

func TestGestureDetector_NestedFiresDeepestOnly(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	var outer, inner int
	tester.PumpWidget(widgets.Column{Children: []core.Widget{
		widgets.Tap(func() { outer++ }, widgets.PaddingAll(10, widgets.Tap(func() { inner++ }, widgets.Text{Content: "inner"}))),
	}})

	tester.Tap(hoisttest.ByText("inner"))
	if inner != 1 || outer != 0 {
		t.Errorf("inner = %d, outer = %d", inner, outer)
	}
	tester.TapAt(graphics.Offset{X: 2, Y: 2})
	if outer != 1 {
		t.Errorf("tap on the padding should reach the outer detector, outer = %d", outer)
	}
}

type exploding struct{ core.StatelessBase }

func (exploding) Build(core.BuildContext) core.Widget { panic("kaboom") }

func TestErrorWidget_ReplacesPanickingSubtree(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Column{Children: []core.Widget{
		widgets.Text{Content: "before"},
		exploding{},
	}})

	if !tester.Find(hoisttest.ByType[widgets.ErrorWidget]()).Exists() {
		t.Fatal("expected an ErrorWidget in place of the panicking build")
	}
	if !tester.Find(hoisttest.ByTextContaining("kaboom")).Exists() {
		t.Error("error text should mention the panic value")
	}
	if !tester.Find(hoisttest.ByText("before")).Exists() {
		t.Error("siblings should still build")
	}
}
