// Package mail holds the in-scope stand-in for the external email
// collaborator: codes are logged, never actually delivered.
package mail

import (
	"context"

	"go.uber.org/zap"
	"complainthub.backend/pkg/logger"
)

// LogMailer writes the one-time code to the application log.
type LogMailer struct{}

// NewLogMailer creates a logging mailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendOtp implements mail.OtpSender.
func (m *LogMailer) SendOtp(ctx context.Context, email, code string) error {
	logger.Info(ctx, "OTP issued",
		zap.String("email", email),
		zap.String("code", code),
	)
	return nil
}
