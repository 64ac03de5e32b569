package worker

import (
	"context"
	"fmt"

	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/pkg/sms"
	"github.com/shared-city/backend/pkg/sms/sns"

	"go.uber.org/zap"
)

// NewSMSSender picks the text message provider configured for the deployment.
func NewSMSSender(ctx context.Context, cfg config.SMSConfig, log *zap.Logger) (sms.Sender, error) {
	switch cfg.Provider {
	case config.SMSProviderLog, "":
		return sms.NewLogSender(log), nil
	case config.SMSProviderSNS:
		sender, err := sns.NewSender(ctx, cfg.SNSRegion)
		if err != nil {
			return nil, fmt.Errorf("sns sender: %w", err)
		}
		return sender, nil
	}

	return nil, fmt.Errorf("unknown sms provider %q", cfg.Provider)
}
