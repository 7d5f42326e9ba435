package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storefront/internal/client/client"
)

var (
	// ErrBusy rejects a session operation while another one is in flight.
	ErrBusy = errors.New("session operation already in progress")
	// ErrStore marks failures of the persistent session store.
	ErrStore = errors.New("session store")
)

// Kind groups errors for logging.
type Kind int

const (
	KindUnknown Kind = iota
	KindTransport
	KindProtocol
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Classify maps err to its Kind. Store wins over the client kinds since a
// store failure may wrap a cancelled context.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrStore):
		return KindStore
	case client.IsProtocol(err):
		return KindProtocol
	case client.IsTransport(err),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return KindTransport
	default:
		return KindUnknown
	}
}
