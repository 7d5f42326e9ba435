package models

// Status is the lifecycle state of the session.
type Status int

const (
	StatusIdle Status = iota
	StatusAuthenticating
	StatusAuthenticated
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Busy reports whether an operation is in flight.
func (s Status) Busy() bool {
	return s == StatusAuthenticating
}

// Snapshot is a read-only copy of the session state handed to readers.
// User is never shared with the session that produced it.
type Snapshot struct {
	User      *User
	Token     string
	Status    Status
	LastError string
}

// LoggedIn reports whether the snapshot carries an authenticated user.
func (s Snapshot) LoggedIn() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}
