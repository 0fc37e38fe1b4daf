package engine

import (
	"fmt"
	"image/png"
	"io"

	"github.com/go-drift/hoisting/pkg/animation"
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/errors"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
	"github.com/go-drift/hoisting/pkg/state"
	"github.com/go-drift/hoisting/pkg/widgets"
)

// maxSettlePasses bounds the build/layout passes in one frame. Layout may
// dirty elements again (a list learning its viewport), which needs another
// build.
const maxSettlePasses = 4

// Host runs one presentation tree.
type Host struct {
	buildOwner      *core.BuildOwner
	app             core.Widget
	root            core.Element
	rootRender      layout.RenderObject
	size            graphics.Size
	background      graphics.Color
	pointers        map[int64][]layout.PointerHandler
	positions       map[int64]graphics.Offset
	recorder        *graphics.PictureRecorder
	last            *graphics.DisplayList
	reconstructions int
}

// NewHost creates a host for a surface of the given logical size.
func NewHost(size graphics.Size) *Host {
	return &Host{
		buildOwner: core.NewBuildOwner(),
		size:       size,
		background: graphics.ColorWhite,
		pointers:   make(map[int64][]layout.PointerHandler),
		positions:  make(map[int64]graphics.Offset),
		recorder:   &graphics.PictureRecorder{},
	}
}

// Registry returns the restoration registry shared by every store in the
// tree.
func (h *Host) Registry() *state.Registry {
	return h.buildOwner.Restoration()
}

// BuildOwner returns the host's build owner.
func (h *Host) BuildOwner() *core.BuildOwner {
	return h.buildOwner
}

// Root returns the root element, or nil before Mount.
func (h *Host) Root() core.Element {
	return h.root
}

// RootRender returns the root render object, or nil before Mount.
func (h *Host) RootRender() layout.RenderObject {
	return h.rootRender
}

// Size returns the logical surface size.
func (h *Host) Size() graphics.Size {
	return h.size
}

// SetBackground sets the surface fill color.
func (h *Host) SetBackground(color graphics.Color) {
	h.background = color
}

// Reconstructions counts completed Reconstruct calls.
func (h *Host) Reconstructions() int {
	return h.reconstructions
}

// Mount replaces the tree with app. Any previous tree is unmounted without
// saving its state.
func (h *Host) Mount(app core.Widget) {
	h.unmount()
	h.app = app
	h.mount()
}

func (h *Host) mount() {
	if h.app == nil {
		return
	}
	h.root = core.MountRoot(widgets.DecoratedBox{Color: h.background, Child: h.app}, h.buildOwner)
	if provider, ok := h.root.(interface{ RenderObject() layout.RenderObject }); ok {
		h.rootRender = provider.RenderObject()
	}
	if h.rootRender != nil {
		pipeline := h.buildOwner.Pipeline()
		pipeline.ScheduleLayout(h.rootRender)
		pipeline.SchedulePaint(h.rootRender)
	}
}

func (h *Host) unmount() {
	if h.root != nil {
		h.root.Unmount()
	}
	h.root = nil
	h.rootRender = nil
	clear(h.pointers)
	clear(h.positions)
}

// Unmount tears the tree down and drops it.
func (h *Host) Unmount() {
	h.unmount()
	h.app = nil
}

// NeedsFrame reports whether a frame would change anything.
func (h *Host) NeedsFrame() bool {
	return h.buildOwner.NeedsWork() || animation.HasActiveTickers()
}

// Frame runs one frame and returns its recording. A panic during the frame
// is reported and the previous recording is returned.
func (h *Host) Frame() (list *graphics.DisplayList) {
	defer errors.RecoverWithCallback("engine.Frame", func(any) {
		list = h.last
	})

	animation.StepTickers()
	pipeline := h.buildOwner.Pipeline()
	for range maxSettlePasses {
		h.buildOwner.FlushBuild()
		if h.rootRender == nil {
			break
		}
		pipeline.FlushLayoutForRoot(h.rootRender, layout.Tight(h.size))
		if !h.buildOwner.HasDirtyElements() {
			break
		}
	}

	canvas := h.recorder.BeginRecording(h.size)
	if h.rootRender != nil {
		ctx := &layout.PaintContext{Canvas: canvas}
		ctx.PaintChild(h.rootRender.(layout.RenderBox), graphics.Offset{})
	}
	pipeline.FlushPaint()
	h.last = h.recorder.EndRecording()
	return h.last
}

// LastFrame returns the most recent recording without running a frame.
func (h *Host) LastFrame() *graphics.DisplayList {
	return h.last
}

// Reconstruct simulates an environment-triggered teardown, such as a
// rotation: live stores are snapshotted, the snapshot is serialized and read
// back, the tree is unmounted and mounted again, and durable values are
// restored as the new stores attach. Ephemeral values and presentation-local
// state start over.
func (h *Host) Reconstruct(reason string) *graphics.DisplayList {
	registry := h.Registry()
	registry.SaveAll()
	data, err := registry.Encode()
	if err != nil {
		errors.Report(&errors.HoistError{
			Op:   "engine.Reconstruct",
			Kind: errors.KindRestore,
			Key:  reason,
			Err:  fmt.Errorf("encode bundle: %w", err),
		})
	}

	h.unmount()
	if err == nil {
		registry.Clear()
		// Decode reports its own failures.
		_ = registry.Decode(data)
	}
	h.mount()
	h.reconstructions++
	return h.Frame()
}

// Resize changes the surface size. Like a rotation, a size change
// reconstructs a mounted tree.
func (h *Host) Resize(size graphics.Size) *graphics.DisplayList {
	if size == h.size {
		return h.Frame()
	}
	h.size = size
	if h.root == nil {
		return h.Frame()
	}
	return h.Reconstruct("resize")
}

// RenderPNG runs a frame and writes it as a PNG image.
func (h *Host) RenderPNG(w io.Writer) error {
	img := graphics.Rasterize(h.Frame(), h.background)
	if err := png.Encode(w, img); err != nil {
		errors.Report(&errors.HoistError{Op: "engine.RenderPNG", Kind: errors.KindRender, Err: err})
		return err
	}
	return nil
}
