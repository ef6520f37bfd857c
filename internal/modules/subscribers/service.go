package subscribers

import (
	"context"
	"log"
	"strings"
)

// Service exposes the router's PPPoE directory to the admin panel. The
// router is best-effort infrastructure: when it is unreachable the rest
// of the system must keep working, so lookups degrade to an empty list.
type Service struct {
	source SecretSource
}

func NewService(source SecretSource) *Service {
	return &Service{source: source}
}

// Search returns subscribers whose username or contact hint contains q
// (case-insensitive). Empty q returns the full directory.
func (s *Service) Search(ctx context.Context, q string) []Subscriber {
	all, err := s.source.ListSecrets(ctx)
	if err != nil {
		log.Printf("subscriber_directory_unavailable error=%q", err)
		return []Subscriber{}
	}

	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return all
	}

	matched := make([]Subscriber, 0, len(all))
	for _, sub := range all {
		if strings.Contains(strings.ToLower(sub.Username), q) ||
			strings.Contains(strings.ToLower(sub.ContactHint), q) {
			matched = append(matched, sub)
		}
	}
	return matched
}
