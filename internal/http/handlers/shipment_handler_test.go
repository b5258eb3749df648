package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/domain"
	"carrier-bridge/internal/logx"
	"carrier-bridge/internal/service/shipments"
)

type stubShipmentUsecase struct {
	gotBody map[string]any
	res     shipments.CreateResult
	err     error
}

func (s *stubShipmentUsecase) Create(_ context.Context, body map[string]any) (shipments.CreateResult, error) {
	s.gotBody = body
	return s.res, s.err
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/shipment", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestShipmentCreate_Success(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{res: shipments.CreateResult{
		CarrierBody: map[string]any{"id": "299101234567", "deliveryDeadline": "2026-09-02"},
	}}
	h := NewShipmentHandler(logx.Nop(), uc)

	rec := postJSON(t, h.Create, `{"recipient": {"pickupOfficeId": 101}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "299101234567", resp["id"])
	assert.NotContains(t, resp, "siteResolution")
	require.Equal(t, float64(101), uc.gotBody["recipient"].(map[string]any)["pickupOfficeId"])
}

func TestShipmentCreate_SuccessWithResolution(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{res: shipments.CreateResult{
		CarrierBody: map[string]any{"id": "299101234567"},
		Resolution: &domain.SiteResolution{
			SiteID:         42,
			CandidateCount: 1,
			Attempts:       []map[string]any{{"name": "Ямбол", "postCode": "8600"}},
		},
	}}
	h := NewShipmentHandler(logx.Nop(), uc)

	rec := postJSON(t, h.Create, `{"recipient": {"city": "гр. Ямбол"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	sr, ok := resp["siteResolution"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), sr["siteId"])
	assert.Equal(t, float64(1), sr["candidateCount"])
}

func TestShipmentCreate_InvalidInput(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{err: fmt.Errorf("carrier credentials missing: %w", apperr.ErrInvalid)}
	h := NewShipmentHandler(logx.Nop(), uc)

	rec := postJSON(t, h.Create, `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Error, "carrier credentials missing")
}

func TestShipmentCreate_BadJSON(t *testing.T) {
	t.Parallel()

	h := NewShipmentHandler(logx.Nop(), &stubShipmentUsecase{})
	rec := postJSON(t, h.Create, `{"recipient":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "invalid json", resp.Error)
}

func TestShipmentCreate_ResolutionFailure(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{err: &apperr.ResolutionError{
		Attempts:     []map[string]any{{"name": "Нямаград", "postCode": ""}},
		LastResponse: "[]",
	}}
	h := NewShipmentHandler(logx.Nop(), uc)

	rec := postJSON(t, h.Create, `{"recipient": {"city": "Нямаград"}}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp resolutionErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "site not found", resp.Error)
	assert.Len(t, resp.Attempts, 1)
	assert.Equal(t, "[]", resp.LastResponse)
}

func TestShipmentCreate_UpstreamRelay(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{err: &apperr.UpstreamError{
		Status: http.StatusUnprocessableEntity,
		Body:   `{"error": {"message": "invalid siteId"}}`,
	}}
	h := NewShipmentHandler(logx.Nop(), uc)

	rec := postJSON(t, h.Create, `{}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"error": {"message": "invalid siteId"}}`, rec.Body.String())
}

func TestShipmentCreate_UpstreamRelayPlainText(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{err: &apperr.UpstreamError{
		Status: http.StatusServiceUnavailable,
		Body:   "maintenance window",
	}}
	h := NewShipmentHandler(logx.Nop(), uc)

	rec := postJSON(t, h.Create, `{}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "maintenance window", rec.Body.String())
}

func TestShipmentCreate_TransportFailure(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{err: errors.New("carrier gateway: post shipment/: connection refused")}
	h := NewShipmentHandler(logx.Nop(), uc)

	rec := postJSON(t, h.Create, `{}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "carrier unreachable", resp.Error)
}

func TestShipmentCreate_EmptyBodyReachesUsecase(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{err: fmt.Errorf("empty payload: %w", apperr.ErrInvalid)}
	h := NewShipmentHandler(logx.Nop(), uc)

	rec := postJSON(t, h.Create, ``)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, uc.gotBody)
}
