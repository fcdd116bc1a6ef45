package dingtalk

import (
	"context"
	"fmt"
	"strings"

	"github.com/open-dingtalk/dingtalk-stream-sdk-go/chatbot"
	"github.com/open-dingtalk/dingtalk-stream-sdk-go/client"

	"github.com/darrenyao/dingtalk-agent-sdk/internal/agent"
	"github.com/darrenyao/dingtalk-agent-sdk/internal/config"
	"github.com/darrenyao/dingtalk-agent-sdk/pkg/logging"
)

// failureReply is sent to the user when processing failed entirely.
// The real cause lands in the logs, not in the chat.
const failureReply = "Sorry, I could not process that message. Please try again later."

// Processor handles one incoming chat message and produces the reply
// text. agent.Manager satisfies it.
type Processor interface {
	ProcessMessage(ctx context.Context, msg agent.Message) (string, error)
}

// StreamManager owns the DingTalk stream connection. It registers a
// chatbot callback that forwards every message to the Processor and
// replies through the session webhook.
type StreamManager struct {
	cfg       config.DingTalkConfig
	processor Processor
	cli       *client.StreamClient
	replier   *chatbot.ChatbotReplier
}

// NewStreamManager builds a stream manager; Start establishes the
// connection.
func NewStreamManager(cfg config.DingTalkConfig, processor Processor) *StreamManager {
	return &StreamManager{
		cfg:       cfg,
		processor: processor,
		replier:   chatbot.NewChatbotReplier(),
	}
}

// Start opens the stream connection and registers the chatbot callback
// router. It returns once the connection is established; callbacks then
// arrive on the SDK's goroutines.
func (m *StreamManager) Start(ctx context.Context) error {
	cli := client.NewStreamClient(
		client.WithAppCredential(client.NewAppCredentialConfig(m.cfg.ClientID, m.cfg.ClientSecret)),
	)
	cli.RegisterChatBotCallbackRouter(m.onChatBotMessageReceived)

	if err := cli.Start(ctx); err != nil {
		return fmt.Errorf("starting DingTalk stream client: %w", err)
	}

	m.cli = cli
	logging.Info("DingTalk", "Stream client connected")
	return nil
}

// Stop closes the stream connection. Safe to call when Start never
// succeeded.
func (m *StreamManager) Stop() {
	if m.cli == nil {
		return
	}
	m.cli.Close()
	m.cli = nil
	logging.Info("DingTalk", "Stream client stopped")
}

// onChatBotMessageReceived handles one chatbot callback frame.
func (m *StreamManager) onChatBotMessageReceived(ctx context.Context, data *chatbot.BotCallbackDataModel) ([]byte, error) {
	msg := buildMessage(data)
	logging.Info("DingTalk", "Message from %s in conversation %s", msg.SenderNick, msg.ConversationID)

	reply, err := m.processor.ProcessMessage(ctx, msg)
	if err != nil {
		logging.Error("DingTalk", err, "Processing message from %s failed", msg.SenderNick)
	}

	if sendErr := m.replier.SimpleReplyText(ctx, data.SessionWebhook, []byte(replyText(reply, err))); sendErr != nil {
		logging.Error("DingTalk", sendErr, "Sending reply to %s failed", msg.SenderNick)
	}
	return []byte(""), nil
}

// buildMessage converts a callback frame into the agent's message type.
func buildMessage(data *chatbot.BotCallbackDataModel) agent.Message {
	return agent.Message{
		Content:        strings.TrimSpace(data.Text.Content),
		SenderID:       data.SenderStaffId,
		SenderNick:     data.SenderNick,
		ConversationID: data.ConversationId,
	}
}

// replyText picks the outgoing text: the agent's reply on success, the
// generic failure text otherwise.
func replyText(reply string, err error) string {
	if err != nil || strings.TrimSpace(reply) == "" {
		return failureReply
	}
	return reply
}
