package client

import (
	"context"
	"testing"
	"time"

	"github.com/shared-city/backend/internal/queue/task"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeSender_NoClient(t *testing.T) {
	restore := SetClient(nil)
	defer restore()

	err := NewCodeSender(time.Minute).SendVerificationCode(context.Background(), "13800001234", "000007")
	assert.ErrorIs(t, err, ErrNoClient)
}

func TestCodeSender_Enqueues(t *testing.T) {
	mr := miniredis.RunT(t)
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: mr.Addr()})
	defer c.Close()

	restore := SetClient(c)
	defer restore()

	require.NoError(t, NewCodeSender(5*time.Minute).SendVerificationCode(context.Background(), "13800001234", "000007"))

	assert.True(t, mr.Exists("asynq:{"+task.SendVerificationCodeQueueName+"}:pending"))
}

func TestSetClient_Restores(t *testing.T) {
	first := asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:0"})
	defer first.Close()
	second := asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:0"})
	defer second.Close()

	restoreFirst := SetClient(first)
	defer restoreFirst()
	assert.Same(t, first, GetClient(context.Background()))

	restoreSecond := SetClient(second)
	assert.Same(t, second, GetClient(context.Background()))

	restoreSecond()
	assert.Same(t, first, GetClient(context.Background()))
}
