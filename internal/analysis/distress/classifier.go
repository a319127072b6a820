package distress

import "strings"

// Result reports whether a message contains crisis language and, when it
// does, carries the fixed safety payload to attach to the response.
type Result struct {
	IsDistress    bool
	SafetyMessage string
	Resources     []string
}

// keywords is the static table of lowercase phrases matched as substrings
// of the normalized message. Fixed at process start; no mutation API.
var keywords = []string{
	"suicide", "self-harm", "kill myself", "end it all", "no point",
	"hopeless", "worthless", "can't take it", "nobody cares", "alone forever",
	"scared", "panic", "terrified", "panic attack", "anxiety attack",
	"abusive", "abuse", "assault", "harassed", "bullied",
	"drug", "drugs", "alcohol", "drinking", "high", "drunk",
	"depressed", "depression", "suicidal", "die",
}

const safetyMessage = "I'm concerned about what you're sharing. Please reach out to a trusted adult, school counselor, or a mental health professional. Your wellbeing truly matters. 💙"

var resources = []string{
	"Talk to your college counseling center",
	"National Suicide Prevention Lifeline: 988 (US)",
	"Crisis Text Line: Text HOME to 741741",
	"International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/",
}

// Classify scans the message for any configured crisis phrase,
// case-insensitively. Which phrase matched is not reported; the result is
// a single OR across the table. Empty input simply fails every match.
func Classify(message string) Result {
	normalized := strings.ToLower(message)
	for _, phrase := range keywords {
		if strings.Contains(normalized, phrase) {
			return Result{
				IsDistress:    true,
				SafetyMessage: safetyMessage,
				Resources:     append([]string(nil), resources...),
			}
		}
	}
	return Result{}
}
