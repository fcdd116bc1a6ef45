package dingtalk

import (
	"errors"
	"testing"

	"github.com/open-dingtalk/dingtalk-stream-sdk-go/chatbot"
	"github.com/stretchr/testify/assert"

	"github.com/darrenyao/dingtalk-agent-sdk/internal/config"
)

func TestBuildMessage(t *testing.T) {
	data := &chatbot.BotCallbackDataModel{
		ConversationId: "conv-1",
		SenderStaffId:  "staff-42",
		SenderNick:     "bob",
	}
	data.Text.Content = "  who is on call?  "

	msg := buildMessage(data)
	assert.Equal(t, "who is on call?", msg.Content)
	assert.Equal(t, "staff-42", msg.SenderID)
	assert.Equal(t, "bob", msg.SenderNick)
	assert.Equal(t, "conv-1", msg.ConversationID)
}

func TestReplyText(t *testing.T) {
	assert.Equal(t, "all good", replyText("all good", nil))
	assert.Equal(t, failureReply, replyText("", nil))
	assert.Equal(t, failureReply, replyText("   ", nil))
	assert.Equal(t, failureReply, replyText("ignored", errors.New("boom")))
}

func TestStop_WithoutStart(t *testing.T) {
	m := NewStreamManager(config.DingTalkConfig{ClientID: "id", ClientSecret: "secret"}, nil)
	// Must not panic when the connection was never established.
	m.Stop()
}
