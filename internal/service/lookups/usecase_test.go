package lookups

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/domain"
	"carrier-bridge/internal/gateway/carrier"
)

type stubJSONGateway struct {
	path    string
	payload map[string]any
	creds   domain.Credentials
	res     carrier.Result
}

func (s *stubJSONGateway) CallJSON(_ context.Context, path string, payload any, creds domain.Credentials) (carrier.Result, error) {
	s.path = path
	s.payload = payload.(map[string]any)
	s.creds = creds
	return s.res, nil
}

var fallbackCreds = domain.Credentials{Username: "svc-user", Password: "svc-pass"}

func TestLookups_PathPerOperation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(s *Service, body map[string]any) (carrier.Result, error)
		path string
	}{
		{"sites", func(s *Service, b map[string]any) (carrier.Result, error) { return s.Sites(context.Background(), b) }, carrier.SitePath},
		{"offices", func(s *Service, b map[string]any) (carrier.Result, error) { return s.Offices(context.Background(), b) }, carrier.OfficePath},
		{"contract clients", func(s *Service, b map[string]any) (carrier.Result, error) { return s.ContractClients(context.Background(), b) }, carrier.ContractPath},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gw := &stubJSONGateway{res: carrier.Result{Status: 200, OK: true}}
			svc := NewService(gw, fallbackCreds)

			body := map[string]any{"name": "Ямбол", "countryId": float64(100)}
			res, err := tc.call(svc, body)
			require.NoError(t, err)

			require.True(t, res.OK)
			require.Equal(t, tc.path, gw.path)
			require.Equal(t, body, gw.payload, "lookup bodies pass through unreshaped")
			require.Equal(t, fallbackCreds, gw.creds)
		})
	}
}

func TestLookups_BodyCredentialsWin(t *testing.T) {
	t.Parallel()

	gw := &stubJSONGateway{res: carrier.Result{Status: 200, OK: true}}
	svc := NewService(gw, fallbackCreds)

	_, err := svc.Sites(context.Background(), map[string]any{
		"username": "req-user",
		"password": "req-pass",
	})
	require.NoError(t, err)
	require.Equal(t, domain.Credentials{Username: "req-user", Password: "req-pass"}, gw.creds)
}

func TestLookups_NilBody(t *testing.T) {
	t.Parallel()

	gw := &stubJSONGateway{res: carrier.Result{Status: 200, OK: true}}
	svc := NewService(gw, fallbackCreds)

	_, err := svc.Offices(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, gw.payload)
	require.Empty(t, gw.payload)
}

func TestLookups_MissingCredentials(t *testing.T) {
	t.Parallel()

	gw := &stubJSONGateway{}
	svc := NewService(gw, domain.Credentials{})

	_, err := svc.ContractClients(context.Background(), map[string]any{})
	require.ErrorIs(t, err, apperr.ErrInvalid)
	require.Empty(t, gw.path)
}

func TestNewService_NilGateway(t *testing.T) {
	t.Parallel()
	require.Nil(t, NewService(nil, fallbackCreds))
}
