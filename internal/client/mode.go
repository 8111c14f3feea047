package client

import (
	"fmt"
	"net/http"

	"cinema-manager/pkg/utils"
)

// Mode selects the transport implementation. It is resolved once from
// configuration at startup; nothing sniffs hostnames at call time.
type Mode int

const (
	// ModeRest targets a full CRUD mock REST store.
	ModeRest Mode = iota
	// ModeReadOnly targets the hosted list-read endpoints.
	ModeReadOnly
)

func (m Mode) String() string {
	if m == ModeReadOnly {
		return "readonly"
	}
	return "rest"
}

// ParseMode parses the TRANSPORT_MODE configuration value.
func ParseMode(value string) (Mode, error) {
	switch value {
	case "", "rest":
		return ModeRest, nil
	case "readonly":
		return ModeReadOnly, nil
	default:
		return ModeRest, fmt.Errorf("unknown transport mode %q", value)
	}
}

// FromConfig builds the transport the configuration names.
func FromConfig(config utils.ClientConfig, httpClient *http.Client) (Transport, error) {
	mode, err := ParseMode(config.Mode)
	if err != nil {
		return nil, err
	}

	if mode == ModeReadOnly {
		return NewReadOnly(config.BaseURL, httpClient), nil
	}
	return NewRest(config.BaseURL, httpClient), nil
}
