package samples_test

import (
	"testing"
	"time"

	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/layout"
	"github.com/go-drift/hoisting/pkg/samples"
	"github.com/go-drift/hoisting/pkg/state"
	hoisttest "github.com/go-drift/hoisting/pkg/testing"
	"github.com/go-drift/hoisting/pkg/widgets"
)

func tap(t *testing.T, tester *hoisttest.WidgetTester, finder hoisttest.Finder) {
	t.Helper()
	if err := tester.Tap(finder); err != nil {
		t.Fatal(err)
	}
	tester.Pump()
}

func exists(tester *hoisttest.WidgetTester, text string) bool {
	return tester.Find(hoisttest.ByText(text)).Exists()
}

func addButton(tester *hoisttest.WidgetTester) widgets.Button {
	for _, e := range tester.Find(hoisttest.ByType[widgets.Button]()).All() {
		if b := e.Widget().(widgets.Button); b.Label == samples.LabelAddOne {
			return b
		}
	}
	panic("no Add one button")
}

func TestWaterCounter_TenGlassesThenDisabled(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.WaterCounter{})

	if tester.Find(hoisttest.ByTextContaining("You've had")).Exists() {
		t.Fatal("count line should be hidden at 0")
	}
	for n := 1; n <= samples.MaxGlasses; n++ {
		tap(t, tester, hoisttest.ByText(samples.LabelAddOne))
		if !exists(tester, samples.GlassesLine(n)) {
			t.Fatalf("after %d taps painted %q", n, tester.Texts())
		}
	}
	if !addButton(tester).Disabled {
		t.Error("Add one should be disabled at the max")
	}

	tap(t, tester, hoisttest.ByText(samples.LabelAddOne))
	if !exists(tester, samples.GlassesLine(10)) {
		t.Errorf("an 11th tap must leave 10, painted %q", tester.Texts())
	}

	tap(t, tester, hoisttest.ByText(samples.LabelClearWater))
	if tester.Find(hoisttest.ByTextContaining("You've had")).Exists() {
		t.Error("clear should hide the count line again")
	}
	if addButton(tester).Disabled {
		t.Error("Add one should be enabled after clear")
	}
}

func TestWaterCounter_ReminderIsEphemeral(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.WaterCounter{})

	if exists(tester, samples.LabelWalkTask) {
		t.Fatal("reminder only shows once a glass is counted")
	}
	tap(t, tester, hoisttest.ByText(samples.LabelAddOne))
	tap(t, tester, hoisttest.ByText(samples.LabelAddOne))
	if !exists(tester, samples.LabelWalkTask) {
		t.Fatal("reminder should be visible")
	}
	tap(t, tester, hoisttest.ByText(samples.LabelClose))
	if exists(tester, samples.LabelWalkTask) {
		t.Fatal("close should dismiss the reminder")
	}

	tester.Reconstruct()
	if !exists(tester, samples.GlassesLine(2)) {
		t.Errorf("count is durable, painted %q", tester.Texts())
	}
	if !exists(tester, samples.LabelWalkTask) {
		t.Error("the ephemeral reminder flag should reset after reconstruction")
	}
}

func TestWaterCounter_DurabilityOverride(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.SetDurability(map[string]state.Durability{
		samples.WaterScope + "/" + samples.KeyCount: state.Ephemeral,
	})
	tester.PumpWidget(samples.WaterCounter{})

	tap(t, tester, hoisttest.ByText(samples.LabelAddOne))
	tester.Reconstruct()
	if tester.Find(hoisttest.ByTextContaining("You've had")).Exists() {
		t.Error("a count configured as ephemeral should reset")
	}
}

func rowControl(id int, text string) hoisttest.Finder {
	return hoisttest.Descendant(hoisttest.ByKey(id), hoisttest.ByText(text))
}

func wellnessTasks(t *testing.T, tester *hoisttest.WidgetTester) []state.Item {
	t.Helper()
	store := tester.Host().Registry().Live(samples.WellnessScope)
	if store == nil {
		t.Fatal("wellness store is not attached")
	}
	return store.Collection(samples.KeyTasks).Items()
}

func TestWellness_ToggleThenRemoveScenario(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.WellnessScreen{})

	if got := len(wellnessTasks(t, tester)); got != samples.TaskCount {
		t.Fatalf("initial tasks = %d, want 30", got)
	}
	tap(t, tester, rowControl(5, "[ ]"))
	tap(t, tester, rowControl(0, samples.LabelClose))

	tasks := wellnessTasks(t, tester)
	if len(tasks) != 29 {
		t.Fatalf("tasks = %d, want 29", len(tasks))
	}
	ids := make(map[int]state.Item, len(tasks))
	for _, task := range tasks {
		ids[task.ID] = task
	}
	if _, ok := ids[0]; ok {
		t.Error("id 0 should be removed")
	}
	for id := 1; id < 30; id++ {
		task, ok := ids[id]
		if !ok {
			t.Errorf("id %d missing", id)
			continue
		}
		if task.Checked != (id == 5) {
			t.Errorf("id %d checked = %v", id, task.Checked)
		}
	}

	if exists(tester, "Task # 0") {
		t.Error("row 0 should be gone from the list")
	}
	if !tester.Find(rowControl(5, "[x]")).Exists() {
		t.Error("row 5 should render checked")
	}
}

func TestWellness_RowsKeepElementsAcrossRemoval(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.WellnessScreen{})

	row := func(id int) core.Element {
		for _, e := range tester.Find(hoisttest.ByType[samples.TaskRow]()).All() {
			if e.Widget().(samples.TaskRow).Task.ID == id {
				return e
			}
		}
		t.Fatalf("row %d not built", id)
		return nil
	}
	before := row(7)
	tap(t, tester, rowControl(2, samples.LabelClose))

	if row(7) != before {
		t.Error("row 7 should keep its element when row 2 is removed")
	}
	label := tester.Find(hoisttest.Descendant(hoisttest.ByKey(7), hoisttest.ByType[widgets.Text]())).Widget().(widgets.Text)
	if label.Content != "Task # 7" {
		t.Errorf("row 7 label = %q", label.Content)
	}
}

func TestWellness_ListIsLazy(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.WellnessScreen{})

	built := tester.Find(hoisttest.ByType[samples.TaskRow]()).Count()
	if built == 0 || built >= samples.TaskCount {
		t.Errorf("built %d rows, want only the visible ones", built)
	}
	if exists(tester, "Task # 29") {
		t.Error("the last task should not be built before scrolling")
	}
}

func TestWellness_ReconstructKeepsCollection(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.WellnessScreen{})

	tap(t, tester, rowControl(3, "[ ]"))
	tap(t, tester, rowControl(1, samples.LabelClose))
	tester.Reconstruct()

	tasks := wellnessTasks(t, tester)
	if len(tasks) != 29 || tasks[0].ID != 0 || tasks[1].ID != 2 {
		t.Fatalf("tasks after reconstruction = %+v", tasks)
	}
	if !tasks[2].Checked || tasks[2].ID != 3 {
		t.Errorf("task 3 = %+v, want checked", tasks[2])
	}
	if !tester.Find(rowControl(3, "[x]")).Exists() {
		t.Error("row 3 should still render checked")
	}
}

func TestBasics_OnboardingThenGreetings(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.BasicsApp{})

	if !exists(tester, samples.LabelWelcome) {
		t.Fatalf("onboarding should show first, painted %q", tester.Texts())
	}
	tap(t, tester, hoisttest.ByText(samples.LabelContinue))
	if exists(tester, samples.LabelWelcome) {
		t.Fatal("continue should leave onboarding")
	}
	if got := tester.Find(hoisttest.ByText(samples.LabelHello)).Count(); got != samples.GreetingCount {
		t.Errorf("greetings = %d, want 20", got)
	}

	tester.Reconstruct()
	if exists(tester, samples.LabelWelcome) {
		t.Error("the onboarding flag is durable and must not come back")
	}
}

func greetingCard(tester *hoisttest.WidgetTester, name string) samples.GreetingCard {
	return tester.Find(hoisttest.Descendant(hoisttest.ByKey(name), hoisttest.ByType[samples.GreetingCard]())).Widget().(samples.GreetingCard)
}

func TestBasics_GreetingExpandsAndAnimates(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.BasicsApp{})
	tap(t, tester, hoisttest.ByText(samples.LabelContinue))

	tap(t, tester, hoisttest.Descendant(hoisttest.ByKey("1"), hoisttest.ByText(samples.LabelShowMore)))
	card := greetingCard(tester, "1")
	if !card.Expanded {
		t.Fatal("greeting 1 should be expanded")
	}
	if card.ExtraPadding >= 48 {
		t.Errorf("padding should still be animating, got %v", card.ExtraPadding)
	}
	if !tester.Find(hoisttest.ByText(samples.LoremText)).Exists() {
		t.Error("expanded greeting should show its body")
	}
	if greetingCard(tester, "0").Expanded {
		t.Error("other greetings are unaffected")
	}

	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatal(err)
	}
	if got := greetingCard(tester, "1").ExtraPadding; got != 48 {
		t.Errorf("settled padding = %v, want 48", got)
	}

	tester.Reconstruct()
	card = greetingCard(tester, "1")
	if !card.Expanded || card.ExtraPadding != 48 {
		t.Errorf("after reconstruction card = %+v; expanded is durable and the animation snaps", card)
	}

	tap(t, tester, hoisttest.Descendant(hoisttest.ByKey("1"), hoisttest.ByText(samples.LabelShowLess)))
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatal(err)
	}
	if card := greetingCard(tester, "1"); card.Expanded || card.ExtraPadding != 0 {
		t.Errorf("collapsed card = %+v", card)
	}
}

func TestLayoutsDemo_OwnColumnStacking(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(samples.LayoutsDemo{})

	top := func(text string) float64 {
		bounds, ok := layout.GlobalBounds(tester.RootRenderObject(), tester.Find(hoisttest.ByText(text)).RenderObject())
		if !ok {
			t.Fatalf("%q not laid out", text)
		}
		return bounds.Top
	}
	order := []string{samples.LabelAlignYourBody, "Inversions", "Pre-natal yoga", samples.LabelFavoriteCollections, "Nightly wind down", "Text1", "Text2", "Text3"}
	for i := 1; i < len(order); i++ {
		if top(order[i]) <= top(order[i-1]) {
			t.Errorf("%q (y=%v) should be below %q (y=%v)", order[i], top(order[i]), order[i-1], top(order[i-1]))
		}
	}
	if top("Text2")-top("Text1") != top("Text3")-top("Text2") {
		t.Error("equal children should be placed at equal steps")
	}
}

func TestRegistry(t *testing.T) {
	names := samples.Names()
	if len(names) != 4 || names[0] != "water" {
		t.Errorf("Names() = %v", names)
	}
	for _, name := range names {
		s, ok := samples.Lookup(name)
		if !ok || s.New() == nil {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
	if _, ok := samples.Lookup("missing"); ok {
		t.Error("Lookup should miss unknown names")
	}
}
