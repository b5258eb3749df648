package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/logx"
)

// ShipmentHandler handles shipment creation requests.
type ShipmentHandler struct {
	usecase shipmentUsecase
	logger  logx.Logger
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(logger logx.Logger, uc shipmentUsecase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc, logger: logger}
}

// Create handles POST /shipment.
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(h.logger, w, r)
	if !ok {
		return
	}

	res, err := h.usecase.Create(r.Context(), body)

	var upstream *apperr.UpstreamError
	var resolution *apperr.ResolutionError
	switch {
	case err == nil:
		resp := make(map[string]any, len(res.CarrierBody)+1)
		for k, v := range res.CarrierBody {
			resp[k] = v
		}
		if res.Resolution != nil {
			resp["siteResolution"] = resolutionToDTO(res.Resolution)
		}
		writeJSON(h.logger, w, r, http.StatusOK, resp)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &resolution):
		writeJSON(h.logger, w, r, http.StatusBadGateway, resolutionErrorResponse{
			Error:        "site not found",
			Attempts:     resolution.Attempts,
			LastResponse: resolution.LastResponse,
		})
	case errors.As(err, &upstream):
		relayUpstream(h.logger, w, r, upstream)
	default:
		writeError(h.logger, w, r, http.StatusBadGateway, "carrier unreachable")
	}
}

// relayUpstream forwards the carrier's status and body verbatim so the
// caller can inspect carrier-specific error codes.
func relayUpstream(logger logx.Logger, w http.ResponseWriter, r *http.Request, e *apperr.UpstreamError) {
	logger.Warn("relaying carrier error",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", e.Status),
	)
	body := []byte(e.Body)
	if json.Valid(body) {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(e.Status)
	_, _ = w.Write(body)
}
