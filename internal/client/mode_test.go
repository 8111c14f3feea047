package client

import (
	"testing"

	"cinema-manager/pkg/utils"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		value   string
		want    Mode
		wantErr bool
	}{
		{"", ModeRest, false},
		{"rest", ModeRest, false},
		{"readonly", ModeReadOnly, false},
		{"serverless", ModeRest, true},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.value)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseMode(%q): expected error", tt.value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.value, err)
		}
		if mode != tt.want {
			t.Fatalf("ParseMode(%q) = %v, want %v", tt.value, mode, tt.want)
		}
	}
}

func TestFromConfig(t *testing.T) {
	transport, err := FromConfig(utils.ClientConfig{BaseURL: "http://localhost:3000", Mode: "rest"}, nil)
	if err != nil {
		t.Fatalf("rest: %v", err)
	}
	if _, ok := transport.(*restTransport); !ok {
		t.Fatalf("expected rest transport, got %T", transport)
	}

	transport, err = FromConfig(utils.ClientConfig{BaseURL: "http://example.test", Mode: "readonly"}, nil)
	if err != nil {
		t.Fatalf("readonly: %v", err)
	}
	if _, ok := transport.(*readonlyTransport); !ok {
		t.Fatalf("expected readonly transport, got %T", transport)
	}

	if _, err := FromConfig(utils.ClientConfig{Mode: "bogus"}, nil); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
