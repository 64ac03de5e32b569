package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shared-city/backend/internal/queue/task"
	"github.com/shared-city/backend/pkg/logger"

	"go.uber.org/zap"
)

var ErrNoClient = errors.New("asynq client is not configured")

// CodeSender hands verification codes to the worker through the delivery queue.
type CodeSender struct {
	codeTTL time.Duration
}

func NewCodeSender(codeTTL time.Duration) *CodeSender {
	return &CodeSender{codeTTL: codeTTL}
}

func (s *CodeSender) SendVerificationCode(ctx context.Context, phone string, code string) error {
	c := GetClient(ctx)
	if c == nil {
		return ErrNoClient
	}

	t, err := task.NewSendVerificationCodeTask(phone, code, time.Now().Add(s.codeTTL))
	if err != nil {
		return fmt.Errorf("create send verification code task failed: %w", err)
	}

	info, err := c.EnqueueContext(ctx, t)
	if err != nil {
		return fmt.Errorf("enqueue send verification code task failed: %w", err)
	}

	logger.Debug("verification code task enqueued", zap.String("task_id", info.ID), zap.String("queue", info.Queue))

	return nil
}
