package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/logx"
)

type stubPrintUsecase struct {
	gotBody map[string]any
	pdf     []byte
	err     error
}

func (s *stubPrintUsecase) Print(_ context.Context, body map[string]any) ([]byte, error) {
	s.gotBody = body
	return s.pdf, s.err
}

func TestPrint_PDFResponse(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.4 fake")
	uc := &stubPrintUsecase{pdf: pdf}
	h := NewPrintHandler(logx.Nop(), uc)

	req := httptest.NewRequest(http.MethodPost, "/print", strings.NewReader(`{"shipments": ["299101"]}`))
	rec := httptest.NewRecorder()
	h.Print(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="labels.pdf"`, rec.Header().Get("Content-Disposition"))
	require.Equal(t, pdf, rec.Body.Bytes())
	require.Equal(t, []any{"299101"}, uc.gotBody["shipments"])
}

func TestPrint_InvalidRequest(t *testing.T) {
	t.Parallel()

	uc := &stubPrintUsecase{err: fmt.Errorf("no parcel identifiers: %w", apperr.ErrInvalid)}
	h := NewPrintHandler(logx.Nop(), uc)

	req := httptest.NewRequest(http.MethodPost, "/print", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Print(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Error, "no parcel identifiers")
}

func TestPrint_UpstreamRelay(t *testing.T) {
	t.Parallel()

	uc := &stubPrintUsecase{err: &apperr.UpstreamError{
		Status: http.StatusOK,
		Body:   `{"error": "unknown parcel"}`,
	}}
	h := NewPrintHandler(logx.Nop(), uc)

	req := httptest.NewRequest(http.MethodPost, "/print", strings.NewReader(`{"shipments": ["x"]}`))
	rec := httptest.NewRecorder()
	h.Print(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"error": "unknown parcel"}`, rec.Body.String())
}

func TestPrint_TransportFailure(t *testing.T) {
	t.Parallel()

	uc := &stubPrintUsecase{err: fmt.Errorf("carrier gateway: post print/: connection refused")}
	h := NewPrintHandler(logx.Nop(), uc)

	req := httptest.NewRequest(http.MethodPost, "/print", strings.NewReader(`{"shipments": ["x"]}`))
	rec := httptest.NewRecorder()
	h.Print(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "carrier unreachable", resp.Error)
}
