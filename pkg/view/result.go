package view

// Runner is the host capability handed to callbacks.
type Runner interface {
	// Quit asks the host to stop after the current event.
	Quit()
	// CallOn runs fn on the first view matching sel and reports whether one was found.
	CallOn(sel Selector, fn func(View)) bool
	// Focus moves focus to the view matching sel.
	Focus(sel Selector) error
}

// Callback is deferred work produced by an event and run by the host.
type Callback func(Runner)

// EventResult reports whether a view consumed an event.
type EventResult struct {
	consumed  bool
	callbacks []Callback
}

// Ignored is the result of a view that did not use the event.
func Ignored() EventResult {
	return EventResult{}
}

// Consumed is the result of a view that used the event without side effects.
func Consumed() EventResult {
	return EventResult{consumed: true}
}

// ConsumedWith consumes the event and schedules cb. A nil cb is dropped.
func ConsumedWith(cb Callback) EventResult {
	r := EventResult{consumed: true}
	if cb != nil {
		r.callbacks = []Callback{cb}
	}
	return r
}

// IsConsumed reports whether the event was used.
func (r EventResult) IsConsumed() bool {
	return r.consumed
}

// HasCallback reports whether processing r would run anything.
func (r EventResult) HasCallback() bool {
	return len(r.callbacks) > 0
}

// And merges two results: consumed if either was, callbacks in order.
func (r EventResult) And(o EventResult) EventResult {
	out := EventResult{consumed: r.consumed || o.consumed}
	if n := len(r.callbacks) + len(o.callbacks); n > 0 {
		out.callbacks = make([]Callback, 0, n)
		out.callbacks = append(out.callbacks, r.callbacks...)
		out.callbacks = append(out.callbacks, o.callbacks...)
	}
	return out
}

// Process runs the scheduled callbacks with run.
func (r EventResult) Process(run Runner) {
	for _, cb := range r.callbacks {
		cb(run)
	}
}
