package sms

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var ErrEmptyRecipient = errors.New("empty recipient phone")

// Sender delivers a text message to a phone number.
type Sender interface {
	Send(ctx context.Context, phone string, message string) error
}

// LogSender writes messages to the log instead of a gateway.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, phone string, message string) error {
	if phone == "" {
		return ErrEmptyRecipient
	}

	s.log.Info("sending sms", zap.String("phone", phone), zap.String("message", message))

	return nil
}
