package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/oklog/ulid/v2"
)

const (
	SendVerificationCodeTaskName  = "sendVerificationCodeTask"
	SendVerificationCodeQueueName = "sendVerificationCodeQueue"
)

type SendVerificationCode struct {
	Phone            string    `json:"phone"`
	VerificationCode string    `json:"verification_code"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// NewSendVerificationCodeTask builds a delivery task that is dropped once the code has expired.
func NewSendVerificationCodeTask(phone string, verificationCode string, expiresAt time.Time) (*asynq.Task, error) {
	var data SendVerificationCode
	data.Phone = phone
	data.VerificationCode = verificationCode
	data.ExpiresAt = expiresAt

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendVerificationCodeTaskName,
		payload,
		asynq.TaskID(ulid.Make().String()),
		asynq.MaxRetry(5),
		asynq.Deadline(expiresAt),
		asynq.Queue(SendVerificationCodeQueueName),
	), nil
}
