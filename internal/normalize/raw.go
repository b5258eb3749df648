package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"carrier-bridge/internal/domain"
)

// rawShipment is the typed intermediate that every legacy request shape
// decodes into. All alias-key guessing happens here, in one place; the rule
// pipeline in shipment.go only ever sees these fields.
type rawShipment struct {
	creds     domain.Credentials
	sender    rawSender
	recipient rawRecipient
	service   rawService
	content   rawContent
	payer     string
	ref1      string
	ref2      string
	// dropoffOverride is a request-level override for the default
	// drop-off office (takes precedence over the configured default).
	dropoffOverride int64
}

type rawSender struct {
	clientID int64
	// aliasClientID is a contract-client id found under a legacy alias key.
	aliasClientID   int64
	dropoffOfficeID int64
	clientName      string
	contactName     string
	privatePerson   *bool
	phone           string
	phoneNumber     string
	email           string
}

type rawRecipient struct {
	pickupOfficeID int64
	clientName     string
	contactName    string
	firstName      string
	lastName       string
	privatePerson  *bool
	phone          string
	phoneNumber    string
	email          string
	siteID         int64
	cityName       string
	postCode       string
	addressNote    string
}

type rawService struct {
	serviceID        int64
	pickUpDate       string
	pickupDateLegacy string
	autoAdjust       *bool
}

type rawContent struct {
	parcelsCount int
	contents     string
	pack         string
	totalWeight  float64
}

// unwrapEnvelope flattens the legacy "wrapped" call shape: a nested
// "shipment" sub-object is merged over its siblings (sub-object wins on
// key conflicts), recursively.
func unwrapEnvelope(m map[string]any) map[string]any {
	nested, ok := asMap(m["shipment"])
	if !ok {
		return m
	}
	merged := make(map[string]any, len(m)+len(nested))
	for k, v := range m {
		if k == "shipment" {
			continue
		}
		merged[k] = v
	}
	for k, v := range nested {
		merged[k] = v
	}
	return unwrapEnvelope(merged)
}

func decodeShipment(body map[string]any) rawShipment {
	m := unwrapEnvelope(body)

	var raw rawShipment
	raw.creds = decodeCredentials(m)

	sm, _ := asMap(m["sender"])
	raw.sender = rawSender{
		clientID:        num(sm, "clientId"),
		aliasClientID:   firstNonZero(num(sm, "senderClientId", "contractClientId"), num(m, "clientId", "senderClientId", "contractClientId")),
		dropoffOfficeID: num(sm, "dropoffOfficeId", "dropoffPointId"),
		clientName:      str(sm, "clientName", "name"),
		contactName:     str(sm, "contactName"),
		privatePerson:   boolPtr(sm, "privatePerson"),
		phone:           str(sm, "phone"),
		phoneNumber:     str(subMap(sm, "phone1"), "number"),
		email:           str(sm, "email"),
	}
	raw.dropoffOverride = firstNonZero(num(m, "defaultDropoffOfficeId"), num(sm, "defaultDropoffOfficeId"))

	rm, _ := asMap(m["recipient"])
	am, _ := asMap(rm["address"])
	raw.recipient = rawRecipient{
		pickupOfficeID: num(rm, "pickupOfficeId", "officeId"),
		clientName:     str(rm, "clientName", "name"),
		contactName:    str(rm, "contactName"),
		firstName:      str(rm, "firstName"),
		lastName:       str(rm, "lastName"),
		privatePerson:  boolPtr(rm, "privatePerson"),
		phone:          str(rm, "phone"),
		phoneNumber:    str(subMap(rm, "phone1"), "number"),
		email:          str(rm, "email"),
		siteID:         firstNonZero(num(am, "siteId"), num(rm, "siteId")),
		cityName:       firstNonEmpty(str(am, "city", "cityName", "siteName"), str(rm, "city", "cityName", "siteName")),
		postCode:       firstNonEmpty(str(am, "postCode", "postalCode", "zip"), str(rm, "postCode", "postalCode", "zip")),
		addressNote:    firstNonEmpty(str(am, "addressNote", "street", "fullAddress"), str(rm, "addressNote", "street", "fullAddress")),
	}

	sv, _ := asMap(m["service"])
	raw.service = rawService{
		serviceID:        num(sv, "serviceId"),
		pickUpDate:       str(sv, "pickUpDate"),
		pickupDateLegacy: str(sv, "pickupDate"),
		autoAdjust:       boolPtr(sv, "autoAdjustPickUpDate"),
	}

	cm, _ := asMap(m["content"])
	raw.content = rawContent{
		parcelsCount: int(num(cm, "parcelsCount", "count")),
		contents:     str(cm, "contents", "description"),
		pack:         str(cm, "package", "packing"),
		totalWeight:  flo(cm, "totalWeight", "weight"),
	}

	pm, _ := asMap(m["payment"])
	raw.payer = firstNonEmpty(str(pm, "courierServicePayer", "payer"), str(m, "courierServicePayer", "payer"))

	raw.ref1 = str(m, "ref1")
	raw.ref2 = str(m, "ref2")
	return raw
}

func decodeCredentials(m map[string]any) domain.Credentials {
	return domain.Credentials{
		Username: str(m, "username", "userName"),
		Password: str(m, "password"),
	}
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func subMap(m map[string]any, key string) map[string]any {
	sub, _ := asMap(m[key])
	return sub
}

// str returns the first non-empty string value among the keys.
func str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// num returns the first value among the keys that can be read as an
// integer. JSON numbers, json.Number and numeric strings all count.
func num(m map[string]any, keys ...string) int64 {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if n, ok := toInt64(v); ok && n != 0 {
				return n
			}
		}
	}
	return 0
}

func flo(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			if v != 0 {
				return v
			}
		case json.Number:
			if f, err := v.Float64(); err == nil && f != 0 {
				return f
			}
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f != 0 {
				return f
			}
		}
	}
	return 0
}

func boolPtr(m map[string]any, key string) *bool {
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

func firstNonZero(vals ...int64) int64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
