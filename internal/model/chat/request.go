package chat

// Request is the inbound payload for one support-chat exchange.
// Message is a pointer so an absent field can be told apart from an
// empty string.
type Request struct {
	Message *string `json:"message"`
	UserID  string  `json:"userId,omitempty"`
}
