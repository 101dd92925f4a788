package tabs

import (
	"errors"
	"fmt"
)

var (
	// ErrDisconnected is returned by Sender.Send once the receiver is closed.
	ErrDisconnected = errors.New("channel receiver closed")
	// ErrChannelFull is returned by Sender.Send when other senders refill the
	// buffer before the value fits.
	ErrChannelFull = errors.New("channel full")
)

// ErrKeyNotFound reports an operation on a key that is not registered.
type ErrKeyNotFound struct {
	Key string
}

// NewErrKeyNotFound formats key with fmt.Sprint.
func NewErrKeyNotFound(key any) *ErrKeyNotFound {
	return &ErrKeyNotFound{Key: fmt.Sprint(key)}
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("tab %q not found", e.Key)
}
