package services

import "time"

// DateSuggestion is one quick pick for the search form. Selecting it
// overwrites the criteria's departure/return dates only.
type DateSuggestion struct {
	Label         string `json:"label"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
}

const isoDate = "2006-01-02"

// QuickDateSuggestions derives three labeled date ranges from today.
// "This Weekend" picks the upcoming Friday-Sunday; when today already is
// Friday, Saturday or Sunday the zero offset maps to seven, pushing the
// pick a week out.
func QuickDateSuggestions(today time.Time) []DateSuggestion {
	weekday := int(today.Weekday()) // Sunday = 0

	fridayOffset := (5 - weekday + 7) % 7
	if fridayOffset == 0 {
		fridayOffset = 7
	}
	sundayOffset := (7 - weekday + 7) % 7
	if sundayOffset == 0 {
		sundayOffset = 7
	}

	// Monday starting the next full calendar week.
	nextWeek := today.AddDate(0, 0, 7)
	nextMonday := nextWeek.AddDate(0, 0, -((int(nextWeek.Weekday()) + 6) % 7))

	return []DateSuggestion{
		{
			Label:         "This Weekend",
			DepartureDate: today.AddDate(0, 0, fridayOffset).Format(isoDate),
			ReturnDate:    today.AddDate(0, 0, sundayOffset).Format(isoDate),
		},
		{
			Label:         "Next Week (Mon-Fri)",
			DepartureDate: nextMonday.Format(isoDate),
			ReturnDate:    nextMonday.AddDate(0, 0, 4).Format(isoDate),
		},
		{
			Label:         "In 2 Weeks",
			DepartureDate: nextMonday.AddDate(0, 0, 7).Format(isoDate),
			ReturnDate:    nextMonday.AddDate(0, 0, 11).Format(isoDate),
		},
	}
}
