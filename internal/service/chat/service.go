package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/campusmind/mindmate/backend/internal/analysis/distress"
	"github.com/campusmind/mindmate/backend/internal/config"
	"github.com/campusmind/mindmate/backend/internal/model/chat"
)

var (
	ErrMessageMissing       = errors.New("message is required")
	ErrMessageEmpty         = errors.New("message is empty")
	ErrMessageTooLong       = errors.New("message exceeds maximum length")
	ErrCompleterUnavailable = errors.New("completion service is not configured")
	ErrCompletionFailed     = errors.New("completion service failed")
)

// Completer produces the assistant reply for one user message.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

// fallbackReply is returned whenever no completion can be produced.
const fallbackReply = "I'm having trouble responding right now. Please try again later 💙"

// Service runs the support-chat pipeline: validate, classify, complete,
// compose.
type Service struct {
	completer       Completer
	maxMessageChars int
}

// NewService wires the chat pipeline. A nil completer is allowed; every
// exchange then falls back to the canned reply.
func NewService(completer Completer, cfg config.ChatConfig) *Service {
	return &Service{
		completer:       completer,
		maxMessageChars: cfg.MaxMessageChars,
	}
}

// Respond handles one exchange. On validation failure it returns the
// matching sentinel error and never calls the completer. When the
// completer is missing or fails, the returned response still carries the
// fallback reply and any distress fields, alongside the sentinel error.
func (s *Service) Respond(ctx context.Context, req chat.Request) (chat.Response, error) {
	if req.Message == nil {
		return chat.Response{}, ErrMessageMissing
	}

	message := strings.TrimSpace(*req.Message)
	if message == "" {
		return chat.Response{}, ErrMessageEmpty
	}

	if s.maxMessageChars > 0 && utf8.RuneCountInString(message) > s.maxMessageChars {
		return chat.Response{}, ErrMessageTooLong
	}

	result := distress.Classify(message)

	// The caller's id is opaque and echoed back untouched; trimming is
	// only for deciding absence.
	userID := req.UserID
	if strings.TrimSpace(userID) == "" {
		userID = "anon-" + uuid.NewString()
	}

	resp := chat.Response{
		Warning: result.IsDistress,
		UserID:  userID,
	}
	if result.IsDistress {
		resp.SafetyMessage = result.SafetyMessage
		resp.Resources = result.Resources
	}

	var replyErr error
	switch {
	case s.completer == nil:
		resp.Reply = fallbackReply
		replyErr = ErrCompleterUnavailable
	default:
		reply, err := s.completer.Complete(ctx, message)
		if err != nil {
			log.Printf("[chat] completion failed: %v", err)
			resp.Reply = fallbackReply
			replyErr = ErrCompletionFailed
		} else {
			resp.Reply = strings.TrimSpace(reply)
		}
	}

	resp.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return resp, replyErr
}
