package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shared-city/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSMSSender struct {
	mock.Mock
}

func (m *mockSMSSender) Send(ctx context.Context, phone string, message string) error {
	return m.Called(ctx, phone, message).Error(0)
}

func TestCodeSender_SendVerificationCode(t *testing.T) {
	sender := new(mockSMSSender)
	sender.On("Send", mock.Anything, "13800001234", "Your verification code is 000007, valid for 5 minutes.").Return(nil)

	workers := NewWorkers(Deps{
		SMSSender: sender,
		Config: &config.Config{
			Auth: config.AuthConfig{VerificationCodeTTL: 5 * time.Minute},
			SMS:  config.SMSConfig{MessageTemplate: "Your verification code is %s, valid for %d minutes."},
		},
	})

	assert.NoError(t, workers.CodeSender.SendVerificationCode(context.Background(), "13800001234", "000007"))
	sender.AssertExpectations(t)
}

func TestCodeSender_SendFailure(t *testing.T) {
	gatewayErr := errors.New("gateway down")
	sender := new(mockSMSSender)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(gatewayErr)

	s := newCodeSender(sender, config.SMSConfig{MessageTemplate: "%s %d"}, time.Minute)

	err := s.SendVerificationCode(context.Background(), "13800001234", "123456")
	assert.ErrorIs(t, err, gatewayErr)
}
