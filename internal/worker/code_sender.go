package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/pkg/sms"
)

type codeSender struct {
	sender  sms.Sender
	config  config.SMSConfig
	codeTTL time.Duration
}

func newCodeSender(
	sender sms.Sender,
	config config.SMSConfig,
	codeTTL time.Duration,
) *codeSender {
	return &codeSender{
		sender:  sender,
		config:  config,
		codeTTL: codeTTL,
	}
}

func (s *codeSender) SendVerificationCode(ctx context.Context, phone string, code string) error {
	message := fmt.Sprintf(s.config.MessageTemplate, code, int(s.codeTTL.Minutes()))

	if err := s.sender.Send(ctx, phone, message); err != nil {
		return fmt.Errorf("send sms failed: %w", err)
	}

	return nil
}
