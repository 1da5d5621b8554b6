package models

// CabinClass mirrors the classes the flight search upstream accepts.
type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// ValidCabinClass reports whether s is one of the four known classes.
func ValidCabinClass(s CabinClass) bool {
	switch s {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	}
	return false
}

// TripCriteria holds the user's current search parameters. Dates are ISO
// dates (YYYY-MM-DD); the empty string means "not set".
type TripCriteria struct {
	Origin        *Airport   `json:"origin"`
	Destination   *Airport   `json:"destination"`
	DepartureDate string     `json:"departure_date"`
	ReturnDate    string     `json:"return_date"`
	Adults        int        `json:"adults"`
	CabinClass    CabinClass `json:"cabin_class"`
	DirectOnly    bool       `json:"direct_only"`
	IncludeHotel  bool       `json:"include_hotel"`
	IncludeCar    bool       `json:"include_car"`
}

// DefaultCriteria returns the session-start defaults: one adult, economy,
// hotel included, car excluded.
func DefaultCriteria() TripCriteria {
	return TripCriteria{
		Adults:       1,
		CabinClass:   CabinEconomy,
		IncludeHotel: true,
	}
}

// CriteriaUpdate is a partial update of TripCriteria. Nil fields are left
// untouched by Merge.
type CriteriaUpdate struct {
	Origin        *Airport    `json:"origin,omitempty"`
	Destination   *Airport    `json:"destination,omitempty"`
	DepartureDate *string     `json:"departure_date,omitempty"`
	ReturnDate    *string     `json:"return_date,omitempty"`
	Adults        *int        `json:"adults,omitempty"`
	CabinClass    *CabinClass `json:"cabin_class,omitempty"`
	DirectOnly    *bool       `json:"direct_only,omitempty"`
	IncludeHotel  *bool       `json:"include_hotel,omitempty"`
	IncludeCar    *bool       `json:"include_car,omitempty"`
}

// Merge applies the provided fields of u onto c, leaving the rest as-is.
func (c *TripCriteria) Merge(u CriteriaUpdate) {
	if u.Origin != nil {
		c.Origin = u.Origin
	}
	if u.Destination != nil {
		c.Destination = u.Destination
	}
	if u.DepartureDate != nil {
		c.DepartureDate = *u.DepartureDate
	}
	if u.ReturnDate != nil {
		c.ReturnDate = *u.ReturnDate
	}
	if u.Adults != nil {
		c.Adults = *u.Adults
	}
	if u.CabinClass != nil {
		c.CabinClass = *u.CabinClass
	}
	if u.DirectOnly != nil {
		c.DirectOnly = *u.DirectOnly
	}
	if u.IncludeHotel != nil {
		c.IncludeHotel = *u.IncludeHotel
	}
	if u.IncludeCar != nil {
		c.IncludeCar = *u.IncludeCar
	}
}

// ReadyToSearch reports whether a search may be executed: origin,
// destination and departure date must all be present.
func (c TripCriteria) ReadyToSearch() bool {
	return c.Origin != nil && c.Destination != nil && c.DepartureDate != ""
}

// HasStayRange reports whether both departure and return dates are set.
// Hotel and car searches require a full stay range.
func (c TripCriteria) HasStayRange() bool {
	return c.DepartureDate != "" && c.ReturnDate != ""
}

// TripStep is one enabled step of the booking flow, in display order.
type TripStep struct {
	Number   int    `json:"number"`
	Category string `json:"category"`
	Label    string `json:"label"`
}

// EnabledSteps derives the booking steps from the inclusion flags:
// flights always, hotel and car only when requested.
func (c TripCriteria) EnabledSteps() []TripStep {
	steps := []TripStep{{Number: 1, Category: "flight", Label: "Choose Your Flight"}}
	if c.IncludeHotel {
		steps = append(steps, TripStep{Number: len(steps) + 1, Category: "hotel", Label: "Choose Your Hotel"})
	}
	if c.IncludeCar {
		steps = append(steps, TripStep{Number: len(steps) + 1, Category: "car", Label: "Choose Your Car"})
	}
	return steps
}
