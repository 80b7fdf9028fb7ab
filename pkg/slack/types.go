package slack

import "time"

// TaskNotice is one scheduled task announced to a channel.
type TaskNotice struct {
	Title          string
	Owner          string
	DueDate        *time.Time
	ScheduledStart *time.Time
}

// Message is the incoming-webhook payload.
type Message struct {
	Text   string  `json:"text,omitempty"`
	Blocks []Block `json:"blocks"`
}

// Block is a Slack Block Kit block.
type Block struct {
	Type string `json:"type"`
	Text *Text  `json:"text,omitempty"`
}

// Text is a Block Kit text object.
type Text struct {
	Type string `json:"type"` // "plain_text" or "mrkdwn"
	Text string `json:"text"`
}
