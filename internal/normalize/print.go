package normalize

import (
	"fmt"
	"strconv"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/domain"
)

// parcelListKeys are the legacy key names a list of shipment/parcel
// identifiers may arrive under.
var parcelListKeys = [...]string{"parcels", "shipments", "shipmentIds", "barcodes"}

// parcelSingleKeys name a lone identifier.
var parcelSingleKeys = [...]string{"shipmentId", "barcode"}

// Print reshapes a legacy print request into the carrier's parcel-array
// shape, preserving input order. Fails when no identifiers can be derived.
func (n *Normalizer) Print(body map[string]any) (domain.PrintRequest, domain.Credentials, error) {
	if len(body) == 0 {
		return domain.PrintRequest{}, domain.Credentials{}, fmt.Errorf("empty print payload: %w", apperr.ErrInvalid)
	}

	ids := parcelIDs(body)
	if len(ids) == 0 {
		return domain.PrintRequest{}, domain.Credentials{}, fmt.Errorf("no parcel identifiers in print payload: %w", apperr.ErrInvalid)
	}

	req := domain.PrintRequest{
		Parcels:                     make([]domain.ParcelRef, 0, len(ids)),
		PaperSize:                   str(body, "paperSize"),
		AdditionalWaybillSenderCopy: str(body, "additionalWaybillSenderCopy"),
	}
	for _, id := range ids {
		req.Parcels = append(req.Parcels, domain.ParcelRef{Parcel: domain.ParcelID{ID: id}})
	}
	if req.PaperSize == "" {
		req.PaperSize = domain.DefaultPaperSize
	}
	if req.AdditionalWaybillSenderCopy == "" {
		req.AdditionalWaybillSenderCopy = domain.DefaultSenderCopy
	}

	return req, decodeCredentials(body), nil
}

func parcelIDs(m map[string]any) []string {
	for _, key := range parcelListKeys {
		list, ok := m[key].([]any)
		if !ok {
			continue
		}
		ids := make([]string, 0, len(list))
		for _, item := range list {
			if id := parcelID(item); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			return ids
		}
	}
	for _, key := range parcelSingleKeys {
		if v, ok := m[key]; ok {
			if id := parcelID(v); id != "" {
				return []string{id}
			}
		}
	}
	return nil
}

// parcelID extracts an identifier from a bare string/number or from the
// already-normalized {parcel:{id}} and {id} wrapper shapes.
func parcelID(v any) string {
	switch item := v.(type) {
	case string:
		return item
	case float64:
		return strconv.FormatInt(int64(item), 10)
	case map[string]any:
		if wrapped, ok := asMap(item["parcel"]); ok {
			return idField(wrapped)
		}
		return idField(item)
	}
	if n, ok := toInt64(v); ok {
		return strconv.FormatInt(n, 10)
	}
	return ""
}

func idField(m map[string]any) string {
	if s := str(m, "id"); s != "" {
		return s
	}
	if n, ok := toInt64(m["id"]); ok && n != 0 {
		return strconv.FormatInt(n, 10)
	}
	return ""
}
