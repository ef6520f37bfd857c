package subscribers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSecretSource struct {
	mock.Mock
}

func (m *MockSecretSource) ListSecrets(ctx context.Context) ([]Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Subscriber), args.Error(1)
}

func directory() []Subscriber {
	return []Subscriber{
		{Username: "cliente-garcia", Service: "pppoe", Profile: "plan-20m", ContactHint: "Av. Central 12"},
		{Username: "cliente-lopez", Service: "pppoe", Profile: "plan-50m", ContactHint: "Barrio Norte"},
		{Username: "antena-repetidora", Service: "pppoe", Profile: "infra", Disabled: true},
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	source := new(MockSecretSource)
	source.On("ListSecrets", mock.Anything).Return(directory(), nil)

	service := NewService(source)

	subs := service.Search(context.Background(), "")

	assert.Len(t, subs, 3)
}

func TestSearch_MatchesUsernameAndContactHint(t *testing.T) {
	source := new(MockSecretSource)
	source.On("ListSecrets", mock.Anything).Return(directory(), nil)

	service := NewService(source)

	assert.Len(t, service.Search(context.Background(), "GARCIA"), 1)
	assert.Len(t, service.Search(context.Background(), "barrio"), 1)
	assert.Empty(t, service.Search(context.Background(), "no-such"), "unmatched query")
}

func TestSearch_RouterUnreachableDegradesToEmpty(t *testing.T) {
	source := new(MockSecretSource)
	source.On("ListSecrets", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	service := NewService(source)

	subs := service.Search(context.Background(), "garcia")

	assert.NotNil(t, subs)
	assert.Empty(t, subs)
}
