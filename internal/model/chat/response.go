package chat

// Response carries the assistant reply plus the optional safety payload.
// SafetyMessage and Resources are present only when Warning is true.
type Response struct {
	Reply         string   `json:"reply"`
	Warning       bool     `json:"warning"`
	SafetyMessage string   `json:"safetyMessage,omitempty"`
	Resources     []string `json:"resources,omitempty"`
	Timestamp     string   `json:"timestamp"`
	UserID        string   `json:"userId"`
}
