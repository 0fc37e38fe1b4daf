// Package engine hosts a widget tree on a headless surface.
//
// A Host owns the build owner, the root element and the restoration registry
// of one presentation tree. It drives the frame pipeline (animate, build,
// layout, paint), routes pointer events through hit testing to gesture
// handlers, and simulates environment-triggered reconstruction: the whole
// tree is torn down and rebuilt while durable store values are carried over
// in a serialized bundle.
//
//	host := engine.NewHost(graphics.Size{Width: 360, Height: 640})
//	host.Mount(samples.WellnessScreen{})
//	frame := host.Frame()
//	host.Tap(graphics.Offset{X: 40, Y: 60})
//	host.Reconstruct("rotation")
//	fmt.Print(host.Frame())
package engine
