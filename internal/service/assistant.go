package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shared-city/backend/internal/cache"
	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/internal/service/llm"
	"github.com/shared-city/backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	chatMemoryKeyPrefix   = "chat:memory:"
	defaultConversationID = "default"
)

// ChatClient completes a conversation with a language model.
type ChatClient interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

type assistantService struct {
	client  ChatClient
	history cache.History
	config  config.AssistantConfig
}

func newAssistantService(client ChatClient, history cache.History, config config.AssistantConfig) *assistantService {
	return &assistantService{
		client:  client,
		history: history,
		config:  config,
	}
}

func (s *assistantService) Enabled() bool {
	return s.config.Enabled && s.client != nil && s.history != nil
}

// Chat answers message within the conversation, replaying its remembered turns to the model.
func (s *assistantService) Chat(ctx context.Context, conversationID string, message string) (string, error) {
	if !s.Enabled() {
		return "", ErrAssistantDisabled
	}

	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		conversationID = defaultConversationID
	}
	memoryKey := chatMemoryKeyPrefix + conversationID

	remembered, err := s.history.Range(ctx, memoryKey)
	if err != nil {
		return "", fmt.Errorf("%w: load chat memory: %w", ErrStoreUnavailable, err)
	}

	messages := make([]llm.Message, 0, len(remembered)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: s.config.SystemPrompt})
	for _, raw := range remembered {
		var m llm.Message
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			logger.Warn("skip malformed chat memory entry", zap.String("conversation_id", conversationID), zap.Error(err))
			continue
		}
		messages = append(messages, m)
	}
	userMessage := llm.Message{Role: llm.RoleUser, Content: message}
	messages = append(messages, userMessage)

	logger.Debug("assistant request",
		zap.String("conversation_id", conversationID),
		zap.Int("messages", len(messages)),
		zap.Int("message_length", len(message)),
	)

	reply, err := s.client.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("assistant completion failed: %w", err)
	}

	logger.Debug("assistant response",
		zap.String("conversation_id", conversationID),
		zap.Int("reply_length", len(reply)),
	)

	userRaw, err := json.Marshal(userMessage)
	if err != nil {
		return "", fmt.Errorf("marshal chat memory failed: %w", err)
	}
	replyRaw, err := json.Marshal(llm.Message{Role: llm.RoleAssistant, Content: reply})
	if err != nil {
		return "", fmt.Errorf("marshal chat memory failed: %w", err)
	}

	if err := s.history.Append(ctx, memoryKey, s.config.MemorySize, s.config.MemoryTTL, string(userRaw), string(replyRaw)); err != nil {
		logger.Error("save chat memory failed", zap.String("conversation_id", conversationID), zap.Error(err))
	}

	return reply, nil
}
