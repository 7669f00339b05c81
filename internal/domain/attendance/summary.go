package attendance

// Pair is one worked shift assembled by the history pairer: a check-in and
// the check-out that closes it. Either side may be missing: a check-in with
// no later check-out is an open shift, a trailing check-out with no earlier
// check-in is an orphan.
type Pair struct {
	CheckIn  *Event `json:"check_in,omitempty"`
	CheckOut *Event `json:"check_out,omitempty"`
	IsLate   bool   `json:"is_late"`
	// Worked duration for complete pairs; Invalid when the checkout
	// time-of-day precedes the checkin time-of-day.
	Minutes int    `json:"minutes"`
	Invalid bool   `json:"invalid"`
	Display string `json:"display"`
}

// Complete reports whether both sides of the pair are present.
func (p Pair) Complete() bool {
	return p.CheckIn != nil && p.CheckOut != nil
}

// HoursBreakdown decomposes a minute total for display.
type HoursBreakdown struct {
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	TotalMinutes int    `json:"total_minutes"`
	Display      string `json:"display"`
}

type SummaryStatus string

const (
	StatusComplete   SummaryStatus = "COMPLETE"
	StatusIncomplete SummaryStatus = "INCOMPLETE"
)

// DailySummary aggregates one day's pairs into regular/late/total worked
// time. Status is INCOMPLETE when any check-in lacks a matching check-out
// or the day's check-in and check-out counts differ.
type DailySummary struct {
	Date         string         `json:"date"`
	Pairs        []Pair         `json:"pairs"`
	RegularHours HoursBreakdown `json:"regular_hours"`
	LateHours    HoursBreakdown `json:"late_hours"`
	TotalHours   HoursBreakdown `json:"total_hours"`
	Status       SummaryStatus  `json:"status"`
}
