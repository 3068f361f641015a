package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// ApologyReply is returned whenever the message pipeline fails in a way
	// the caller cannot act on. The real error goes to the log, never the
	// client.
	ApologyReply = "I apologize, but I encountered an error while processing your message. Please try again."
)
