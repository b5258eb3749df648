package domain

// Payer identifies who pays the courier service fee.
type Payer string

// List of payer values accepted by the carrier.
const (
	PayerSender     Payer = "SENDER"
	PayerRecipient  Payer = "RECIPIENT"
	PayerThirdParty Payer = "THIRD_PARTY"
)

var allowedPayers = [...]Payer{
	PayerSender, PayerRecipient, PayerThirdParty,
}

// Valid checks if the Payer is one of the values the carrier accepts.
func (p Payer) Valid() bool {
	for _, v := range allowedPayers {
		if p == v {
			return true
		}
	}
	return false
}

// Credentials is the carrier account pair sent with every outbound call.
type Credentials struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// Present reports whether both parts of the pair are set.
func (c Credentials) Present() bool {
	return c.Username != "" && c.Password != ""
}

// Or returns c if present, otherwise the fallback pair.
func (c Credentials) Or(fallback Credentials) Credentials {
	if c.Present() {
		return c
	}
	return fallback
}

// Phone is the carrier's structured phone-number field.
type Phone struct {
	Number string `json:"number"`
}

// Sender identifies the shipping party. The carrier accepts either a
// contract-client id or free-text identity fields, never both.
type Sender struct {
	ClientID        int64  `json:"clientId,omitempty"`
	DropoffOfficeID int64  `json:"dropoffOfficeId,omitempty"`
	ClientName      string `json:"clientName,omitempty"`
	ContactName     string `json:"contactName,omitempty"`
	PrivatePerson   *bool  `json:"privatePerson,omitempty"`
	Phone           *Phone `json:"phone1,omitempty"`
	Email           string `json:"email,omitempty"`
}

// Address is a door-delivery destination. SiteID must be resolved to a
// positive value before the shipment is submitted.
type Address struct {
	SiteID      int64  `json:"siteId,omitempty"`
	PostCode    string `json:"postCode,omitempty"`
	AddressNote string `json:"addressNote,omitempty"`
}

// Recipient is the receiving party: either a pickup office or an address.
type Recipient struct {
	ClientName    string   `json:"clientName,omitempty"`
	ContactName   string   `json:"contactName,omitempty"`
	PrivatePerson *bool    `json:"privatePerson,omitempty"`
	Phone         *Phone   `json:"phone1,omitempty"`
	Email         string   `json:"email,omitempty"`
	PickupOfficeID int64   `json:"pickupOfficeId,omitempty"`
	Address       *Address `json:"address,omitempty"`
}

// ShipmentService selects the carrier service and pickup date.
type ShipmentService struct {
	ServiceID            int64  `json:"serviceId,omitempty"`
	PickUpDate           string `json:"pickUpDate,omitempty"`
	AutoAdjustPickUpDate *bool  `json:"autoAdjustPickUpDate,omitempty"`
}

// Content describes the parcels being shipped.
type Content struct {
	ParcelsCount int     `json:"parcelsCount,omitempty"`
	Contents     string  `json:"contents,omitempty"`
	Package      string  `json:"package,omitempty"`
	TotalWeight  float64 `json:"totalWeight,omitempty"`
}

// Payment carries the payer selection.
type Payment struct {
	CourierServicePayer Payer `json:"courierServicePayer,omitempty"`
}

// Shipment is the carrier-valid shipment shape produced by normalization.
type Shipment struct {
	Sender    *Sender         `json:"sender,omitempty"`
	Recipient Recipient       `json:"recipient"`
	Service   ShipmentService `json:"service"`
	Content   Content         `json:"content"`
	Payment   Payment         `json:"payment"`
	Ref1      string          `json:"ref1,omitempty"`
	Ref2      string          `json:"ref2,omitempty"`

	// Staging holds request-scoped resolution inputs and diagnostics.
	// Excluded from marshaling so it can never reach the carrier.
	Staging ResolutionStaging `json:"-"`
}

// ResolutionStaging stashes the raw locality inputs for door deliveries
// whose site id is not yet known, plus the resolution outcome once the
// resolver has run.
type ResolutionStaging struct {
	CityName   string
	PostCode   string
	Resolution *SiteResolution
}

// DoorDelivery reports whether the shipment is addressed to a street
// address rather than a carrier pickup office.
func (s *Shipment) DoorDelivery() bool {
	return s.Recipient.PickupOfficeID == 0
}

// SiteResolved reports whether a positive site id is already attached.
func (s *Shipment) SiteResolved() bool {
	return s.Recipient.Address != nil && s.Recipient.Address.SiteID > 0
}
