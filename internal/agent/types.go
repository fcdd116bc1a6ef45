package agent

// Message is one incoming chat message with the context the agent needs
// to process it.
type Message struct {
	// Content is the user's text with any @-mentions stripped.
	Content string
	// SenderID identifies the sending user.
	SenderID string
	// SenderNick is the sender's display name.
	SenderNick string
	// ConversationID identifies the chat the message arrived in.
	ConversationID string
	// PoolKey selects which MCP server pool serves this message. Empty
	// selects the manager's default pool.
	PoolKey string
}
