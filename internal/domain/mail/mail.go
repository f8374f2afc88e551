// Package mail defines the outbound one-time-code delivery boundary.
// Actual SMTP delivery is an external collaborator.
package mail

import "context"

// OtpSender delivers a one-time code to an email address.
type OtpSender interface {
	SendOtp(ctx context.Context, email, code string) error
}
