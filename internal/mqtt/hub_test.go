package mqtt

import "testing"

func TestParseUtterance(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		wantText      string
		wantRequestID string
	}{
		{name: "json object", payload: `{"request_id":"r1","text":"hello"}`, wantText: "hello", wantRequestID: "r1"},
		{name: "bare json string", payload: `"hello"`, wantText: "hello"},
		{name: "plain text", payload: "hello", wantText: "hello"},
		{name: "invalid json object", payload: `{"text":`, wantText: `{"text":`},
		{name: "empty object", payload: `{}`, wantText: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseUtterance([]byte(tt.payload))
			if got.Text != tt.wantText {
				t.Fatalf("parseUtterance(%q).Text = %q, want %q", tt.payload, got.Text, tt.wantText)
			}
			if got.RequestID != tt.wantRequestID {
				t.Fatalf("parseUtterance(%q).RequestID = %q, want %q", tt.payload, got.RequestID, tt.wantRequestID)
			}
		})
	}
}
