package push

import (
	"mall-bidding/internal/models"
	"mall-bidding/utils"
)

// Sender delivers a push notification to an agent's device. Delivery
// is fire-and-forget: callers log failures and never surface them on
// the shopper-facing path.
type Sender interface {
	Send(agent models.Agent, title, body string, payload map[string]string) error
}

// LogSender is the demo Sender; it logs the notification instead of
// calling a real delivery provider.
type LogSender struct{}

// NewLogSender creates a LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the notification and always succeeds.
func (s *LogSender) Send(agent models.Agent, title, body string, payload map[string]string) error {
	utils.Info("push notification", map[string]any{
		"agent_id": agent.AgentID,
		"store":    agent.StoreName,
		"title":    title,
		"body":     body,
		"payload":  payload,
	})
	return nil
}
