package worker

import (
	"context"

	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/pkg/sms"
)

type Workers struct {
	CodeSender CodeSender
}

type Deps struct {
	SMSSender sms.Sender
	Config    *config.Config
}

// CodeSender turns a verification code into a text message for the phone owner.
type CodeSender interface {
	SendVerificationCode(ctx context.Context, phone string, code string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		CodeSender: newCodeSender(deps.SMSSender, deps.Config.SMS, deps.Config.Auth.VerificationCodeTTL),
	}
}
