package models

// maxRecentSearches bounds the persisted search history.
const maxRecentSearches = 5

// SavedPreferences is the only state that persists across sessions.
// Everything else (criteria, results, selections) is in-memory only.
type SavedPreferences struct {
	HomeAirport       *Airport       `json:"home_airport,omitempty"`
	PreferredAirlines []string       `json:"preferred_airlines,omitempty"`
	PreferredCabin    CabinClass     `json:"preferred_cabin_class,omitempty"`
	DirectOnly        bool           `json:"direct_only,omitempty"`
	RecentSearches    []TripCriteria `json:"recent_searches,omitempty"`
}

// AddRecentSearch front-inserts c and evicts the oldest entry past five,
// keeping the history newest-first.
func (p *SavedPreferences) AddRecentSearch(c TripCriteria) {
	recent := append([]TripCriteria{c}, p.RecentSearches...)
	if len(recent) > maxRecentSearches {
		recent = recent[:maxRecentSearches]
	}
	p.RecentSearches = recent
}
