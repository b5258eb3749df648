package handlers

import (
	"context"
	"errors"
	"net/http"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/gateway/carrier"
	"carrier-bridge/internal/logx"
)

// LookupHandler relays carrier lookup endpoints.
type LookupHandler struct {
	usecase lookupUsecase
	logger  logx.Logger
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(logger logx.Logger, uc lookupUsecase) *LookupHandler {
	return &LookupHandler{usecase: uc, logger: logger}
}

// Sites handles POST /location/site.
func (h *LookupHandler) Sites(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, h.usecase.Sites)
}

// Offices handles POST /location/office.
func (h *LookupHandler) Offices(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, h.usecase.Offices)
}

// ContractClients handles POST /client/contract.
func (h *LookupHandler) ContractClients(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, h.usecase.ContractClients)
}

func (h *LookupHandler) relay(w http.ResponseWriter, r *http.Request, call func(context.Context, map[string]any) (carrier.Result, error)) {
	body, ok := decodeBody(h.logger, w, r)
	if !ok {
		return
	}

	res, err := call(r.Context(), body)
	switch {
	case err == nil:
		if res.Body != nil {
			w.Header().Set("Content-Type", "application/json")
		} else {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		w.WriteHeader(res.Status)
		_, _ = w.Write(res.Raw)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
	default:
		writeError(h.logger, w, r, http.StatusBadGateway, "carrier unreachable")
	}
}
