package subscribers

import (
	"context"
	"fmt"

	"github.com/go-routeros/routeros/v3"
)

// MikroTikClient reads PPP secrets over the RouterOS API. It dials per
// call: the API port drops idle sessions and the directory is only hit
// from the admin panel, so a pooled connection buys nothing.
type MikroTikClient struct {
	address  string
	user     string
	password string
}

func NewMikroTikClient(address, user, password string) *MikroTikClient {
	return &MikroTikClient{address: address, user: user, password: password}
}

func (c *MikroTikClient) ListSecrets(ctx context.Context) ([]Subscriber, error) {
	conn, err := routeros.DialContext(ctx, c.address, c.user, c.password)
	if err != nil {
		return nil, fmt.Errorf("dial routeros %s: %w", c.address, err)
	}
	defer conn.Close()

	reply, err := conn.RunContext(ctx, "/ppp/secret/print",
		"=.proplist=name,service,profile,comment,disabled")
	if err != nil {
		return nil, fmt.Errorf("ppp secret print: %w", err)
	}

	subs := make([]Subscriber, 0, len(reply.Re))
	for _, re := range reply.Re {
		subs = append(subs, Subscriber{
			Username:    re.Map["name"],
			Service:     re.Map["service"],
			Profile:     re.Map["profile"],
			Disabled:    re.Map["disabled"] == "true",
			ContactHint: re.Map["comment"],
		})
	}
	return subs, nil
}
