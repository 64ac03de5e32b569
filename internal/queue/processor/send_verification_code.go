package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shared-city/backend/internal/queue/task"
	"github.com/shared-city/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendVerificationCodeProcessor struct {
	workers *worker.Workers
	now     func() time.Time
}

func NewSendVerificationCodeProcessor(workers *worker.Workers) *sendVerificationCodeProcessor {
	return &sendVerificationCodeProcessor{
		workers: workers,
		now:     time.Now,
	}
}

func (p *sendVerificationCodeProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendVerificationCode
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process send verification code task json unmarshal failed: %w: %w", err, asynq.SkipRetry)
	}

	if !data.ExpiresAt.IsZero() && p.now().After(data.ExpiresAt) {
		return fmt.Errorf("verification code expired before delivery: %w", asynq.SkipRetry)
	}

	if err = p.workers.CodeSender.SendVerificationCode(ctx, data.Phone, data.VerificationCode); err != nil {
		return fmt.Errorf("send verification code failed: %w", err)
	}

	return nil
}
