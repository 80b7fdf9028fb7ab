package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"meeting-scheduler/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("got %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	tm := time.Date(2024, 5, 1, 9, 0, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T09:00:00-04:00"` {
		t.Errorf("got %s", b)
	}
}
