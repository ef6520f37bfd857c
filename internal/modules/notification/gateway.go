package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WhatsAppGateway posts templated messages to a WhatsApp Cloud style API.
// It is best-effort: callers log the returned error and move on.
type WhatsAppGateway struct {
	baseURL       string
	token         string
	phoneNumberID string
	client        *http.Client
}

func NewWhatsAppGateway(baseURL, token, phoneNumberID string) *WhatsAppGateway {
	return &WhatsAppGateway{
		baseURL:       baseURL,
		token:         token,
		phoneNumberID: phoneNumberID,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the gateway has credentials. Without them
// Send is a silent no-op so local setups run without the external API.
func (g *WhatsAppGateway) Configured() bool {
	return g.token != "" && g.phoneNumberID != ""
}

func (g *WhatsAppGateway) Send(ctx context.Context, recipient, message string) error {
	if !g.Configured() {
		return nil
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                recipient,
		"type":              "text",
		"text": map[string]string{
			"body": message,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", g.baseURL, g.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}
