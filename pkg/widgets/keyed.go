package widgets

import "github.com/go-drift/hoisting/pkg/core"

// KeyedSubtree gives Child a stable identity among its siblings, so
// reconciliation follows the key instead of the position.
type KeyedSubtree struct {
	ID    any
	Child core.Widget
}

func (k KeyedSubtree) CreateElement() core.Element { return core.NewStatelessElement() }

func (k KeyedSubtree) Key() any { return k.ID }

func (k KeyedSubtree) Build(ctx core.BuildContext) core.Widget { return k.Child }
