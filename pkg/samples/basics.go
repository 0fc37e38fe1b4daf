package samples

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/hoisting/pkg/animation"
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
	"github.com/go-drift/hoisting/pkg/state"
	"github.com/go-drift/hoisting/pkg/widgets"
)

// Basics store keys.
const (
	BasicsScope       = "basics"
	KeyShowOnboarding = "showOnboarding"
	// GreetingCount is the number of names in the greetings list.
	GreetingCount = 20
)

// Labels used by the basics sample.
const (
	LabelWelcome  = "Welcome to the Basics Codelab!"
	LabelContinue = "Continue"
	LabelHello    = "Hello,"
	LabelShowMore = "Show more"
	LabelShowLess = "Show less"
)

// LoremText is the body shown under an expanded greeting.
var LoremText = strings.TrimSpace(strings.Repeat("Composem ipsum color sit lazy, padding theme elit, sed do bouncy. ", 4))

// greetingExtraPadding is the bottom padding an expanded greeting grows by.
const greetingExtraPadding = 48

// ExpandedKey is the store key of a greeting's expanded flag.
func ExpandedKey(name string) string { return "expanded/" + name }

// GreetingNames returns "0" to "19".
func GreetingNames() []string {
	names := make([]string, GreetingCount)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}

// DeclareBasics declares the onboarding flag and one expanded flag per
// greeting. Keeping the per-greeting flags here rather than in each
// greeting lets them outlive a greeting that scrolls out of the list.
func DeclareBasics(st *state.Store) {
	st.DeclareFlag(KeyShowOnboarding, true, state.Durable)
	for _, name := range GreetingNames() {
		st.DeclareFlag(ExpandedKey(name), false, state.Durable)
	}
}

// BasicsApp switches between onboarding and the greetings list.
type BasicsApp struct {
	core.StatefulBase
}

func (BasicsApp) CreateState() core.State { return &basicsAppState{} }

type basicsAppState struct {
	core.StateBase
	store *state.Store
}

func (s *basicsAppState) InitState() {
	s.store = core.UseStore(s, BasicsScope, DeclareBasics)
}

func (s *basicsAppState) Build(ctx core.BuildContext) core.Widget {
	store := s.store
	onboarding := store.Flag(KeyShowOnboarding)
	if onboarding.Value() {
		return Onboarding{OnContinue: func() { onboarding.Set(false) }}
	}
	names := GreetingNames()
	expanded := make(map[string]bool, len(names))
	for _, name := range names {
		expanded[name] = store.Flag(ExpandedKey(name)).Value()
	}
	return Greetings{
		Names:    names,
		Expanded: expanded,
		OnToggle: func(name string) { store.Flag(ExpandedKey(name)).Toggle() },
	}
}

// Onboarding is the welcome screen.
type Onboarding struct {
	core.StatelessBase
	OnContinue func()
}

func (o Onboarding) Build(ctx core.BuildContext) core.Widget {
	return widgets.Column{
		MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
		CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		Children: []core.Widget{
			widgets.Text{Content: LabelWelcome},
			widgets.Padded(layout.EdgeInsets{Top: 24}, widgets.ButtonOf(LabelContinue, o.OnContinue)),
		},
	}
}

// Greetings lists one card per name.
type Greetings struct {
	core.StatelessBase
	Names    []string
	Expanded map[string]bool
	OnToggle func(name string)
}

func (g Greetings) Build(ctx core.BuildContext) core.Widget {
	return widgets.Padded(layout.EdgeInsetsSymmetric(8, 4), widgets.ListView{
		ItemCount: len(g.Names),
		ItemBuilder: func(ctx core.BuildContext, i int) core.Widget {
			name := g.Names[i]
			return Greeting{
				Name:     name,
				Expanded: g.Expanded[name],
				OnToggle: func() {
					if g.OnToggle != nil {
						g.OnToggle(name)
					}
				},
			}
		},
	})
}

// Greeting is a card with a name and a show more/less toggle. Its only
// local state is the padding animation, which never feeds back into the
// store.
type Greeting struct {
	core.StatefulBase
	Name     string
	Expanded bool
	OnToggle func()
}

// Key is the name, so each card keeps its animation when the list changes.
func (g Greeting) Key() any { return g.Name }

func (Greeting) CreateState() core.State { return &greetingState{} }

type greetingState struct {
	core.StateBase
	padding *animation.Controller
}

func (s *greetingState) InitState() {
	s.padding = core.UseController(s, func() *animation.Controller {
		c := animation.NewController(300 * time.Millisecond)
		c.Curve = animation.EaseOut
		return c
	})
	core.UseListenable(s, s.padding)
	s.padding.Snap(s.widget().Expanded)
}

func (s *greetingState) DidUpdateWidget(old core.StatefulWidget) {
	if w := s.widget(); old.(Greeting).Expanded != w.Expanded {
		s.padding.Toward(w.Expanded)
	}
}

func (s *greetingState) widget() Greeting {
	return s.Element().Widget().(Greeting)
}

func (s *greetingState) Build(ctx core.BuildContext) core.Widget {
	return GreetingCard{
		Name:         s.widget().Name,
		Expanded:     s.widget().Expanded,
		ExtraPadding: animation.LerpFloat64(0, greetingExtraPadding, s.padding.Value),
		OnToggle:     s.widget().OnToggle,
	}
}

// GreetingCard is the stateless body of a greeting.
type GreetingCard struct {
	core.StatelessBase
	Name         string
	Expanded     bool
	ExtraPadding float64
	OnToggle     func()
}

func (c GreetingCard) Build(ctx core.BuildContext) core.Widget {
	label := LabelShowMore
	if c.Expanded {
		label = LabelShowLess
	}
	white := graphics.TextStyle{Color: graphics.ColorWhite}
	content := []core.Widget{
		widgets.Row{
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			Children: []core.Widget{
				widgets.Expanded{Child: widgets.Column{Children: []core.Widget{
					widgets.Text{Content: LabelHello, Style: white},
					widgets.Text{Content: c.Name, Style: graphics.TextStyle{Color: graphics.ColorWhite, Bold: true}},
				}}},
				widgets.Button{Label: label, OnTap: c.OnToggle, Color: graphics.ColorLavender},
			},
		},
	}
	if c.Expanded {
		content = append(content, widgets.Padded(layout.EdgeInsets{Top: 4}, widgets.Text{Content: LoremText, Style: white, Wrap: true}))
	}
	return widgets.Padded(layout.EdgeInsets{Top: 4, Bottom: 4}, widgets.DecoratedBox{
		Color: graphics.ColorPurple,
		Child: widgets.Padded(layout.EdgeInsets{Left: 24, Top: 24, Right: 24, Bottom: 24 + c.ExtraPadding},
			widgets.Column{Children: content}),
	})
}
