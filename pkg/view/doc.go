// Package view defines the retained-mode view contract shared by every widget
// in this module, together with the geometry, event and printing primitives the
// contract is expressed in.
//
// # Overview
//
// A View is a rectangular widget that knows how to:
//
//   - report the size it wants for a given constraint (RequiredSize)
//   - accept the size it was finally given (Layout)
//   - draw itself through a Printer clipped to that size (Draw)
//   - react to input (OnEvent) and accept keyboard focus (TakeFocus)
//   - locate named descendants (CallOnAny, FocusView)
//
// Hosts drive views in passes. A layout pass calls RequiredSize and then Layout
// on the root; a draw pass calls Draw with a Printer backed by a Screen; each
// input message becomes one Event delivered with OnEvent. Containers forward
// events to children after relativizing the pointer coordinates to the child's
// origin.
//
// # Embedding Base
//
// Base supplies the conventional defaults (1x1 size, ignores input, refuses
// focus). Embed it and override what the widget needs:
//
//	type Clock struct {
//		view.Base
//		now time.Time
//	}
//
//	func (c *Clock) Draw(p *view.Printer) {
//		p.Print(view.Vec2{}, c.now.Format(time.Kitchen))
//	}
//
// # Event results
//
// OnEvent returns an EventResult. A consumed result may carry callbacks which
// the host runs with a Runner after the event has been dispatched, which is how
// widgets reach outside of their own subtree without holding references to it.
package view
