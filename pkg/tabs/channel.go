package tabs

import "sync/atomic"

// DefaultChannelCapacity is the buffer size of the channels a TabPanel creates.
const DefaultChannelCapacity = 256

type channel[K comparable] struct {
	ch     chan K
	closed atomic.Bool
}

// Sender is the producing end of a channel. Clones share the same channel.
type Sender[K comparable] struct {
	c *channel[K]
}

// Receiver is the single consuming end of a channel.
type Receiver[K comparable] struct {
	c *channel[K]
}

// NewChannel returns the two ends of a buffered, non-blocking channel. A
// capacity below one is raised to one.
func NewChannel[K comparable](capacity int) (*Sender[K], *Receiver[K]) {
	c := &channel[K]{ch: make(chan K, max(capacity, 1))}
	return &Sender[K]{c: c}, &Receiver[K]{c: c}
}

// Send queues v without blocking. A full buffer gives up its oldest value so
// the newest one is always kept.
func (s *Sender[K]) Send(v K) error {
	if s == nil || s.c.closed.Load() {
		return ErrDisconnected
	}
	select {
	case s.c.ch <- v:
		return nil
	default:
	}
	select {
	case <-s.c.ch:
	default:
	}
	select {
	case s.c.ch <- v:
		return nil
	default:
		return ErrChannelFull
	}
}

// Clone returns another sender for the same channel.
func (s *Sender[K]) Clone() *Sender[K] {
	if s == nil {
		return nil
	}
	return &Sender[K]{c: s.c}
}

// TryRecv takes the oldest pending value, if any.
func (r *Receiver[K]) TryRecv() (K, bool) {
	var zero K
	if r == nil {
		return zero, false
	}
	select {
	case v := <-r.c.ch:
		return v, true
	default:
		return zero, false
	}
}

// Latest drains every pending value and returns the newest.
func (r *Receiver[K]) Latest() (K, bool) {
	var (
		last K
		ok   bool
	)
	for {
		v, more := r.TryRecv()
		if !more {
			return last, ok
		}
		last, ok = v, true
	}
}

// Len returns the number of pending values.
func (r *Receiver[K]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.c.ch)
}

// Close disconnects the channel. Later sends fail with ErrDisconnected;
// values already queued can still be received.
func (r *Receiver[K]) Close() {
	if r == nil {
		return
	}
	r.c.closed.Store(true)
}

// Closed reports whether Close was called.
func (r *Receiver[K]) Closed() bool {
	return r == nil || r.c.closed.Load()
}
