package slack_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meeting-scheduler/pkg/slack"
)

func TestSendTaskNotification(t *testing.T) {
	due := time.Date(2024, 5, 3, 17, 0, 0, 0, time.UTC)
	start := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		var got slack.Message
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
			}
			json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		c := slack.NewClient(time.Second)
		err := c.SendTaskNotification(context.Background(), ts.URL, []slack.TaskNotice{
			{Title: "Send deck", Owner: "Dana", DueDate: &due, ScheduledStart: &start},
			{Title: "Book room"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(got.Blocks) != 4 {
			t.Fatalf("expected 4 blocks, got %d", len(got.Blocks))
		}
		first := got.Blocks[2].Text.Text
		if !strings.Contains(first, "*Send deck*") || !strings.Contains(first, "May 3, 2024") || !strings.Contains(first, "May 2, 2024 9:30 AM") {
			t.Errorf("unexpected section: %q", first)
		}
		second := got.Blocks[3].Text.Text
		if !strings.Contains(second, "Unassigned") || !strings.Contains(second, "No deadline") || !strings.Contains(second, "Not scheduled yet") {
			t.Errorf("unexpected section: %q", second)
		}
	})

	t.Run("No webhook", func(t *testing.T) {
		c := slack.NewClient(time.Second)
		err := c.SendTaskNotification(context.Background(), "", nil)
		if !errors.Is(err, slack.ErrNoWebhookURL) {
			t.Errorf("expected ErrNoWebhookURL, got %v", err)
		}
	})

	t.Run("Webhook error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("invalid_token"))
		}))
		defer ts.Close()

		c := slack.NewClient(time.Second)
		err := c.SendTaskNotification(context.Background(), ts.URL, []slack.TaskNotice{{Title: "x"}})
		if err == nil || !strings.Contains(err.Error(), "invalid_token") {
			t.Errorf("expected webhook error, got %v", err)
		}
	})
}
