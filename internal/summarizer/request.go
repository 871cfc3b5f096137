package summarizer

const (
	roleSystem = "system"
	roleUser   = "user"

	userTextOpenTag  = "<text>"
	userTextCloseTag = "</text>"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// newChatRequest builds the two-message completion payload: the system prompt
// verbatim, then the user text wrapped in the delimiting tag.
func newChatRequest(model string, prompt string, text string) chatRequest {
	return chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: roleSystem, Content: prompt},
			{Role: roleUser, Content: wrapUserText(text)},
		},
	}
}

// wrapUserText performs a literal string substitution, not XML construction.
// Input containing "</text>" corrupts the delimiter; known limitation of the
// wire contract.
func wrapUserText(text string) string {
	return userTextOpenTag + text + userTextCloseTag
}
