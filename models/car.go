package models

// Transmission is either automatic or manual.
type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

// CarRental is one bookable rental option. Price covers the whole
// rental period.
type CarRental struct {
	ID           string       `json:"id"`
	Company      string       `json:"company"`
	CarType      string       `json:"car_type"`
	Category     string       `json:"category"`
	Price        Price        `json:"price"`
	Passengers   int          `json:"passengers"`
	Doors        int          `json:"doors"`
	Transmission Transmission `json:"transmission"`
	FuelPolicy   string       `json:"fuel_policy,omitempty"`
	DeepLink     string       `json:"deep_link"`
}
