package realtime

// Session is one realtime connection as seen by the hub: an identity plus a
// best-effort outbound send. The hub never reads from a session; inbound
// traffic is dispatched by the transport layer that owns the connection.
type Session interface {
	// ID uniquely identifies the connection for its lifetime.
	ID() string

	// UserID is the authenticated principal bound at connection-accept time.
	UserID() string

	// Send enqueues payload for delivery. Errors mean the peer is gone or
	// too slow; callers treat them as a no-op, never as fatal.
	Send(payload []byte) error
}
