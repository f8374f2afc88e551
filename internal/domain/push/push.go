// Package push defines the outbound notification boundary. Delivery is
// best-effort: callers log failures and never propagate them.
package push

import "context"

// Message is a single push notification addressed to a device token.
type Message struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound,omitempty"`
}

// Sender delivers push messages to a registered destination.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
