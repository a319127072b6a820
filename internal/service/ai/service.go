package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/campusmind/mindmate/backend/internal/config"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// Service encapsulates the model-backed completion pipeline.
type Service struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates a new AI service instance for the configured provider.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage(userTemplate),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{chain: runnable}, nil
}

// Complete runs one user message through the chain and returns the reply text.
func (s *Service) Complete(ctx context.Context, message string) (string, error) {
	response, err := s.chain.Invoke(ctx, map[string]any{
		"system":  systemPrompt,
		"message": message,
	})
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}

	log.Printf("[ai] generated reply, length=%d", len(response.Content))
	return response.Content, nil
}
