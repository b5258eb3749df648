package domain

// List of print request defaults.
const (
	DefaultPaperSize  = "A6"
	DefaultSenderCopy = "NONE"
)

// ParcelID wraps a single parcel identifier.
type ParcelID struct {
	ID string `json:"id"`
}

// ParcelRef is the carrier's wrapper record for one parcel to print.
type ParcelRef struct {
	Parcel ParcelID `json:"parcel"`
}

// PrintRequest is the carrier-valid label request shape.
type PrintRequest struct {
	Parcels                     []ParcelRef `json:"parcels"`
	PaperSize                   string      `json:"paperSize"`
	AdditionalWaybillSenderCopy string      `json:"additionalWaybillSenderCopy"`
}
