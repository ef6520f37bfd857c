package subscribers

import "context"

// Subscriber is one PPPoE secret on the access router.
type Subscriber struct {
	Username    string `json:"username"`
	Service     string `json:"service"`
	Profile     string `json:"profile"`
	Disabled    bool   `json:"disabled"`
	ContactHint string `json:"contact_hint,omitempty"`
}

// SecretSource lists the PPP secrets of the access router.
type SecretSource interface {
	ListSecrets(ctx context.Context) ([]Subscriber, error)
}
