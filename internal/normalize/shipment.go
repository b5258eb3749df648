// Package normalize repairs and reshapes legacy shipment payloads into the
// carrier-valid shape. Decoding (alias keys, envelope unwrap) lives in
// raw.go; this file holds the ordered rule pipeline. Rule order matters:
// later rules depend on the effect of earlier ones.
package normalize

import (
	"fmt"
	"math"
	"strings"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/domain"
)

const (
	// FallbackDropoffOfficeID is the literal last-resort drop-off office,
	// used when neither the request nor the configuration names one.
	FallbackDropoffOfficeID int64 = 55

	// maxOfficeID is the largest value the carrier accepts as an office
	// id. A larger number in the drop-off field is a contract-client id
	// that a legacy caller put into the wrong field.
	maxOfficeID int64 = math.MaxInt32

	defaultPackage = "BOX"

	// placeholderRecipientName is sent when no recipient name can be
	// derived from any alias.
	placeholderRecipientName = "N/A"

	legacyContractPayer = "CONTRACT_CLIENT"
)

// Defaults carries the process-wide fallbacks injected at construction.
type Defaults struct {
	DropoffOfficeID int64
}

// Normalizer turns loosely-structured client payloads into carrier-valid
// ones. It is pure: no network calls, no shared state.
type Normalizer struct {
	defaults Defaults
}

// New creates a Normalizer with the given process-wide defaults.
func New(defaults Defaults) *Normalizer {
	return &Normalizer{defaults: defaults}
}

type rule func(domain.Shipment, rawShipment) domain.Shipment

// Shipment normalizes an arbitrary mapping into a carrier-valid shipment.
// Credentials found in the payload are returned separately; their presence
// is the caller's concern.
func (n *Normalizer) Shipment(body map[string]any) (domain.Shipment, domain.Credentials, error) {
	if len(body) == 0 {
		return domain.Shipment{}, domain.Credentials{}, fmt.Errorf("empty shipment payload: %w", apperr.ErrInvalid)
	}

	raw := decodeShipment(body)
	s := baseShipment(raw)

	for _, apply := range []rule{
		n.adoptSenderAlias,
		n.relocateOversizedDropoff,
		n.defaultDropoff,
		n.enforceSenderExclusivity,
		n.normalizePayer,
		n.pickUpDateKey,
		n.defaultContentPackage,
		n.normalizeRecipient,
		n.stageDoorAddress,
	} {
		s = apply(s, raw)
	}

	return s, raw.creds, nil
}

// baseShipment maps decoded fields one-to-one, before any rule runs.
func baseShipment(raw rawShipment) domain.Shipment {
	s := domain.Shipment{
		Sender: &domain.Sender{
			ClientID:        raw.sender.clientID,
			DropoffOfficeID: raw.sender.dropoffOfficeID,
			ClientName:      raw.sender.clientName,
			ContactName:     raw.sender.contactName,
			PrivatePerson:   raw.sender.privatePerson,
			Email:           raw.sender.email,
		},
		Recipient: domain.Recipient{
			ClientName:     raw.recipient.clientName,
			ContactName:    raw.recipient.contactName,
			PrivatePerson:  raw.recipient.privatePerson,
			Email:          raw.recipient.email,
			PickupOfficeID: raw.recipient.pickupOfficeID,
		},
		Service: domain.ShipmentService{
			ServiceID:            raw.service.serviceID,
			PickUpDate:           raw.service.pickUpDate,
			AutoAdjustPickUpDate: raw.service.autoAdjust,
		},
		Content: domain.Content{
			ParcelsCount: raw.content.parcelsCount,
			Contents:     raw.content.contents,
			Package:      raw.content.pack,
			TotalWeight:  raw.content.totalWeight,
		},
		Payment: domain.Payment{
			CourierServicePayer: domain.Payer(raw.payer),
		},
		Ref1: raw.ref1,
		Ref2: raw.ref2,
	}
	if raw.sender.phoneNumber != "" {
		s.Sender.Phone = &domain.Phone{Number: raw.sender.phoneNumber}
	}
	if raw.recipient.phoneNumber != "" {
		s.Recipient.Phone = &domain.Phone{Number: raw.recipient.phoneNumber}
	}
	return s
}

// adoptSenderAlias adopts a contract-client id found under a legacy alias
// key when no explicit one is present.
func (n *Normalizer) adoptSenderAlias(s domain.Shipment, raw rawShipment) domain.Shipment {
	if s.Sender.ClientID == 0 && raw.sender.aliasClientID != 0 {
		s.Sender.ClientID = raw.sender.aliasClientID
	}
	return s
}

// relocateOversizedDropoff repairs the overloaded drop-off field: a value
// beyond the office id range is a contract-client id and is moved there,
// leaving the drop-off field empty for defaulting.
func (n *Normalizer) relocateOversizedDropoff(s domain.Shipment, _ rawShipment) domain.Shipment {
	if s.Sender.DropoffOfficeID <= maxOfficeID {
		return s
	}
	if s.Sender.ClientID == 0 {
		s.Sender.ClientID = s.Sender.DropoffOfficeID
	}
	s.Sender.DropoffOfficeID = 0
	return s
}

// defaultDropoff fills an empty drop-off office: request override, then
// the configured default, then the literal fallback.
func (n *Normalizer) defaultDropoff(s domain.Shipment, raw rawShipment) domain.Shipment {
	if s.Sender.DropoffOfficeID != 0 {
		return s
	}
	switch {
	case raw.dropoffOverride > 0 && raw.dropoffOverride <= maxOfficeID:
		s.Sender.DropoffOfficeID = raw.dropoffOverride
	case n.defaults.DropoffOfficeID > 0:
		s.Sender.DropoffOfficeID = n.defaults.DropoffOfficeID
	default:
		s.Sender.DropoffOfficeID = FallbackDropoffOfficeID
	}
	return s
}

// enforceSenderExclusivity strips sender identity fields once a
// contract-client id is set; the carrier rejects both at once.
func (n *Normalizer) enforceSenderExclusivity(s domain.Shipment, _ rawShipment) domain.Shipment {
	if s.Sender.ClientID == 0 {
		return s
	}
	s.Sender.ClientName = ""
	s.Sender.ContactName = ""
	s.Sender.PrivatePerson = nil
	return s
}

// normalizePayer maps the legacy CONTRACT_CLIENT value to SENDER and
// forces anything outside the three-value enum to SENDER.
func (n *Normalizer) normalizePayer(s domain.Shipment, _ rawShipment) domain.Shipment {
	v := strings.ToUpper(strings.TrimSpace(string(s.Payment.CourierServicePayer)))
	if v == legacyContractPayer {
		v = string(domain.PayerSender)
	}
	payer := domain.Payer(v)
	if !payer.Valid() {
		payer = domain.PayerSender
	}
	s.Payment.CourierServicePayer = payer
	return s
}

// pickUpDateKey carries the legacy pickupDate key over to the carrier's
// pickUpDate casing when the latter is absent.
func (n *Normalizer) pickUpDateKey(s domain.Shipment, raw rawShipment) domain.Shipment {
	if s.Service.PickUpDate == "" && raw.service.pickupDateLegacy != "" {
		s.Service.PickUpDate = raw.service.pickupDateLegacy
	}
	return s
}

func (n *Normalizer) defaultContentPackage(s domain.Shipment, _ rawShipment) domain.Shipment {
	if s.Content.Package == "" {
		s.Content.Package = defaultPackage
	}
	return s
}

// normalizeRecipient strips name fields for office deliveries (the carrier
// rejects them in that mode), synthesizes a display name for door
// deliveries, and wraps a bare phone string into the structured field.
func (n *Normalizer) normalizeRecipient(s domain.Shipment, raw rawShipment) domain.Shipment {
	if s.Recipient.PickupOfficeID > 0 {
		s.Recipient.ClientName = ""
		s.Recipient.ContactName = ""
	} else if s.Recipient.ClientName == "" {
		name := strings.TrimSpace(raw.recipient.firstName + " " + raw.recipient.lastName)
		if name == "" {
			name = placeholderRecipientName
		}
		s.Recipient.ClientName = name
	}

	if s.Recipient.Phone == nil && raw.recipient.phone != "" {
		s.Recipient.Phone = &domain.Phone{Number: raw.recipient.phone}
	}
	return s
}

// stageDoorAddress builds the address sub-object for door deliveries and
// stashes the raw locality inputs when the site id is still unknown.
// Resolution itself is the caller's job. Office deliveries carry no
// address at all.
func (n *Normalizer) stageDoorAddress(s domain.Shipment, raw rawShipment) domain.Shipment {
	if s.Recipient.PickupOfficeID > 0 {
		s.Recipient.Address = nil
		return s
	}

	addr := &domain.Address{
		SiteID:      raw.recipient.siteID,
		PostCode:    raw.recipient.postCode,
		AddressNote: raw.recipient.addressNote,
	}
	s.Recipient.Address = addr

	if addr.SiteID == 0 {
		s.Staging.CityName = raw.recipient.cityName
		s.Staging.PostCode = raw.recipient.postCode
	}
	return s
}
