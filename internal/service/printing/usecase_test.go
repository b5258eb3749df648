package printing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/domain"
	"carrier-bridge/internal/gateway/carrier"
	"carrier-bridge/internal/logx"
	"carrier-bridge/internal/normalize"
)

type stubBinaryGateway struct {
	path    string
	payload domain.PrintRequest
	creds   domain.Credentials
	res     carrier.BinaryResult
	err     error
}

func (s *stubBinaryGateway) CallBinary(_ context.Context, path string, payload any, creds domain.Credentials) (carrier.BinaryResult, error) {
	s.path = path
	s.payload = payload.(domain.PrintRequest)
	s.creds = creds
	return s.res, s.err
}

var fallbackCreds = domain.Credentials{Username: "svc-user", Password: "svc-pass"}

func TestPrint_ReturnsPDF(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.4 fake")
	gw := &stubBinaryGateway{res: carrier.BinaryResult{Status: 200, OK: true, PDF: pdf}}
	svc := NewService(normalize.New(normalize.Defaults{}), gw, fallbackCreds, logx.Nop())

	got, err := svc.Print(context.Background(), map[string]any{
		"shipments": []any{"299101", "299102"},
	})
	require.NoError(t, err)

	require.Equal(t, pdf, got)
	require.Equal(t, carrier.PrintPath, gw.path)
	require.Equal(t, fallbackCreds, gw.creds)
	require.Len(t, gw.payload.Parcels, 2)
	require.Equal(t, "A6", gw.payload.PaperSize)
	require.Equal(t, "NONE", gw.payload.AdditionalWaybillSenderCopy)
}

func TestPrint_RequestCredentialsWin(t *testing.T) {
	t.Parallel()

	gw := &stubBinaryGateway{res: carrier.BinaryResult{Status: 200, OK: true, PDF: []byte("x")}}
	svc := NewService(normalize.New(normalize.Defaults{}), gw, fallbackCreds, logx.Nop())

	_, err := svc.Print(context.Background(), map[string]any{
		"username":  "req-user",
		"password":  "req-pass",
		"shipments": []any{"299101"},
	})
	require.NoError(t, err)
	require.Equal(t, domain.Credentials{Username: "req-user", Password: "req-pass"}, gw.creds)
}

func TestPrint_NonBinaryResponse(t *testing.T) {
	t.Parallel()

	gw := &stubBinaryGateway{res: carrier.BinaryResult{
		Status:     200,
		OK:         false,
		Diagnostic: `{"error": "unknown parcel"}`,
	}}
	svc := NewService(normalize.New(normalize.Defaults{}), gw, fallbackCreds, logx.Nop())

	_, err := svc.Print(context.Background(), map[string]any{"shipments": []any{"299101"}})

	var ue *apperr.UpstreamError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, 200, ue.Status)
	require.Contains(t, ue.Body, "unknown parcel")
}

func TestPrint_NoIdentifiers(t *testing.T) {
	t.Parallel()

	gw := &stubBinaryGateway{}
	svc := NewService(normalize.New(normalize.Defaults{}), gw, fallbackCreds, logx.Nop())

	_, err := svc.Print(context.Background(), map[string]any{})
	require.ErrorIs(t, err, apperr.ErrInvalid)
	require.Empty(t, gw.path, "the carrier must not be called for an invalid request")
}

func TestPrint_MissingCredentials(t *testing.T) {
	t.Parallel()

	gw := &stubBinaryGateway{}
	svc := NewService(normalize.New(normalize.Defaults{}), gw, domain.Credentials{}, logx.Nop())

	_, err := svc.Print(context.Background(), map[string]any{"shipments": []any{"299101"}})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestPrint_TransportError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("connection refused")
	gw := &stubBinaryGateway{err: wantErr}
	svc := NewService(normalize.New(normalize.Defaults{}), gw, fallbackCreds, logx.Nop())

	_, err := svc.Print(context.Background(), map[string]any{"shipments": []any{"299101"}})
	require.ErrorIs(t, err, wantErr)
}
