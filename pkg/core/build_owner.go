package core

import (
	"slices"
	"sync"

	"github.com/go-drift/hoisting/pkg/layout"
	"github.com/go-drift/hoisting/pkg/state"
)

// BuildOwner tracks dirty elements that need rebuilding.
type BuildOwner struct {
	dirty       []Element
	dirtySet    map[Element]bool
	refresh     []*RenderObjectElement
	refreshSet  map[*RenderObjectElement]bool
	pipeline    *layout.PipelineOwner
	restoration *state.Registry
	mu          sync.Mutex
}

// NewBuildOwner creates a new BuildOwner with an empty restoration registry.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{
		pipeline:    &layout.PipelineOwner{},
		restoration: state.NewRegistry(),
	}
}

// Pipeline returns the PipelineOwner for render object scheduling.
func (b *BuildOwner) Pipeline() *layout.PipelineOwner {
	return b.pipeline
}

// Restoration returns the registry that carries durable store values across
// reconstruction of the tree.
func (b *BuildOwner) Restoration() *state.Registry {
	return b.restoration
}

// ScheduleBuild marks an element as needing rebuild.
func (b *BuildOwner) ScheduleBuild(element Element) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dirtySet[element] {
		return
	}
	if b.dirtySet == nil {
		b.dirtySet = make(map[Element]bool)
	}
	b.dirtySet[element] = true
	b.dirty = append(b.dirty, element)
}

// NeedsWork returns true if there are dirty elements or pending layout/paint.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	hasDirty := len(b.dirty) > 0
	b.mu.Unlock()
	if hasDirty {
		return true
	}
	return b.pipeline.NeedsLayout() || b.pipeline.NeedsPaint()
}

// HasDirtyElements reports whether any element is waiting to rebuild.
func (b *BuildOwner) HasDirtyElements() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.dirty) > 0
}

// FlushBuild rebuilds all dirty elements in depth order.
func (b *BuildOwner) FlushBuild() {
	for {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			break
		}

		slices.SortFunc(b.dirty, func(a, b Element) int {
			return a.Depth() - b.Depth()
		})

		dirty := b.dirty
		b.dirty = nil
		clear(b.dirtySet)
		b.mu.Unlock()

		for _, element := range dirty {
			if mountable, ok := element.(interface{ isMounted() bool }); ok && !mountable.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
	b.flushRenderListRefresh()
}

func (b *BuildOwner) scheduleRenderListRefresh(element *RenderObjectElement) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.refreshSet[element] {
		return
	}
	if b.refreshSet == nil {
		b.refreshSet = make(map[*RenderObjectElement]bool)
	}
	b.refreshSet[element] = true
	b.refresh = append(b.refresh, element)
}

// flushRenderListRefresh resyncs the render children of multi-child elements
// whose descendants swapped render objects during the build.
func (b *BuildOwner) flushRenderListRefresh() {
	b.mu.Lock()
	pending := b.refresh
	b.refresh = nil
	clear(b.refreshSet)
	b.mu.Unlock()

	for _, element := range pending {
		if element.mounted {
			element.rebuildChildrenRenderList()
		}
	}
}
