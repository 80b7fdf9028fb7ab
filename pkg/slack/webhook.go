package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoWebhookURL is returned when a notification is sent without a webhook URL.
var ErrNoWebhookURL = errors.New("slack webhook URL not configured")

const (
	headerText     = "📋 New Tasks from Meeting"
	dueFormat      = "Jan 2, 2006"
	scheduleFormat = "Jan 2, 2006 3:04 PM"
)

// Client posts messages to Slack incoming webhooks.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Slack webhook client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendTaskNotification posts a header and one section per task to webhookURL.
func (c *Client) SendTaskNotification(ctx context.Context, webhookURL string, tasks []TaskNotice) error {
	if webhookURL == "" {
		return ErrNoWebhookURL
	}
	return c.Post(ctx, webhookURL, c.BuildTaskMessage(tasks))
}

// BuildTaskMessage renders tasks as Block Kit blocks. Times are printed in the zone they carry.
func (c *Client) BuildTaskMessage(tasks []TaskNotice) Message {
	blocks := []Block{
		{Type: "header", Text: &Text{Type: "plain_text", Text: headerText}},
		{Type: "divider"},
	}
	for _, t := range tasks {
		blocks = append(blocks, Block{
			Type: "section",
			Text: &Text{Type: "mrkdwn", Text: c.taskLine(t)},
		})
	}
	return Message{Text: headerText, Blocks: blocks}
}

func (c *Client) taskLine(t TaskNotice) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n", t.Title))

	owner := t.Owner
	if owner == "" {
		owner = "Unassigned"
	}
	sb.WriteString(fmt.Sprintf("👤 %s\n", owner))

	if t.DueDate != nil {
		sb.WriteString(fmt.Sprintf("📅 %s\n", t.DueDate.Format(dueFormat)))
	} else {
		sb.WriteString("📅 No deadline\n")
	}

	if t.ScheduledStart != nil {
		sb.WriteString(fmt.Sprintf("⏰ Scheduled: %s", t.ScheduledStart.Format(scheduleFormat)))
	} else {
		sb.WriteString("⏰ Not scheduled yet")
	}
	return sb.String()
}

// Post sends msg to webhookURL.
func (c *Client) Post(ctx context.Context, webhookURL string, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack webhook error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
