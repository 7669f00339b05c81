package attendance

import (
	"sort"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/timeutil"
)

// invalidRangeDisplay marks a pair whose checkout time-of-day precedes its
// checkin time-of-day. Aggregation excludes such pairs instead of summing a
// wrapped negative duration.
const invalidRangeDisplay = "Error: Invalid time range"

// CalculateWorkingMinutes returns the minute-of-day difference between a
// check-in and check-out time. ok is false when the difference is negative
// (bad data or an overnight shift, which the day-scoped model rejects).
func CalculateWorkingMinutes(checkInTime, checkOutTime string) (int, bool) {
	diff := timeutil.ToMinutes(checkOutTime) - timeutil.ToMinutes(checkInTime)
	if diff < 0 {
		return 0, false
	}
	return diff, true
}

// PairEvents assembles shift pairs for display: greedy earliest-available
// matching of each check-in with the first unconsumed check-out strictly
// later in the day. This is deliberately different from the slot-index
// matching the validators use to gate new check-ins; unifying the two
// would change which slots count as consumed.
func PairEvents(events []attendance.Event) []attendance.Pair {
	ins := checkIns(events)
	outs := checkOuts(events)
	sortByEventTime(ins)
	sortByEventTime(outs)

	consumed := make([]bool, len(outs))
	pairs := make([]attendance.Pair, 0, len(ins))

	for i := range ins {
		ciMin := timeutil.ToMinutes(ins[i].CheckInTime)
		var out *attendance.Event
		for j := range outs {
			if consumed[j] {
				continue
			}
			if timeutil.ToMinutes(outs[j].CheckOutTime) > ciMin {
				consumed[j] = true
				out = &outs[j]
				break
			}
		}
		pairs = append(pairs, buildPair(&ins[i], out))
	}

	// Trailing unmatched check-outs become check-out-only orphans.
	for j := range outs {
		if !consumed[j] {
			pairs = append(pairs, buildPair(nil, &outs[j]))
		}
	}

	return pairs
}

func buildPair(in, out *attendance.Event) attendance.Pair {
	p := attendance.Pair{CheckIn: in, CheckOut: out}
	if in != nil && in.IsLate {
		p.IsLate = true
	}
	if out != nil && out.IsLate {
		p.IsLate = true
	}
	if in == nil || out == nil {
		return p
	}

	minutes, ok := CalculateWorkingMinutes(in.CheckInTime, out.CheckOutTime)
	if !ok {
		p.Invalid = true
		p.Display = invalidRangeDisplay
		return p
	}
	p.Minutes = minutes
	p.Display = timeutil.FormatDuration(minutes)
	return p
}

// SummarizeDay aggregates one day's events into regular/late/total worked
// time. Only complete, valid pairs contribute minutes; the late split
// follows the pair-level flag.
func SummarizeDay(date string, events []attendance.Event) attendance.DailySummary {
	pairs := PairEvents(events)

	var regular, late int
	incomplete := false
	for _, p := range pairs {
		if !p.Complete() {
			incomplete = true
			continue
		}
		if p.Invalid {
			continue
		}
		if p.IsLate {
			late += p.Minutes
		} else {
			regular += p.Minutes
		}
	}

	status := attendance.StatusComplete
	if incomplete || len(checkIns(events)) != len(checkOuts(events)) {
		status = attendance.StatusIncomplete
	}

	return attendance.DailySummary{
		Date:         date,
		Pairs:        pairs,
		RegularHours: breakdown(regular),
		LateHours:    breakdown(late),
		TotalHours:   breakdown(regular + late),
		Status:       status,
	}
}

// SummarizeHistory groups events by date and summarizes each day, newest
// date first.
func SummarizeHistory(events []attendance.Event) []attendance.DailySummary {
	byDate := make(map[string][]attendance.Event)
	var dates []string
	for _, e := range events {
		if _, seen := byDate[e.Date]; !seen {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	summaries := make([]attendance.DailySummary, 0, len(dates))
	for _, d := range dates {
		summaries = append(summaries, SummarizeDay(d, byDate[d]))
	}
	return summaries
}

func breakdown(totalMinutes int) attendance.HoursBreakdown {
	return attendance.HoursBreakdown{
		Hours:        totalMinutes / 60,
		Minutes:      totalMinutes % 60,
		TotalMinutes: totalMinutes,
		Display:      timeutil.FormatDuration(totalMinutes),
	}
}

func sortByEventTime(events []attendance.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a := timeutil.ToMinutes(events[i].EventTime())
		b := timeutil.ToMinutes(events[j].EventTime())
		if a != b {
			return a < b
		}
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}
