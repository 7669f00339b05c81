package attendance

import (
	"strings"
	"testing"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateWorkingMinutes(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		out    string
		want   int
		wantOK bool
	}{
		{"full day", "09:00:00", "17:00:00", 480, true},
		{"seven hours", "09:00:00", "16:00:00", 420, true},
		{"zero", "09:00:00", "09:00:00", 0, true},
		{"negative range rejected", "17:00:00", "09:00:00", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := CalculateWorkingMinutes(c.in, c.out)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.wantOK, ok)
		})
	}
}

func TestPairEvents_GreedyEarliestMatch(t *testing.T) {
	// Check-ins at 09:00 and 13:00, check-outs at 12:00 and 17:00. Greedy
	// matching pairs 09:00 with the first later checkout (12:00) and 13:00
	// with 17:00, for 3h + 4h.
	slot := slotAt("09:00", "17:00")
	events := []attendance.Event{
		checkInEvent("09:00:00", 0, slot, false),
		checkInEvent("13:00:00", 1, slot, false),
		checkOutEvent("09:00:00", "12:00:00", 0),
		checkOutEvent("13:00:00", "17:00:00", 1),
	}

	pairs := PairEvents(events)
	require.Len(t, pairs, 2)

	assert.Equal(t, "09:00:00", pairs[0].CheckIn.CheckInTime)
	assert.Equal(t, "12:00:00", pairs[0].CheckOut.CheckOutTime)
	assert.Equal(t, 180, pairs[0].Minutes)
	assert.Equal(t, "3h 0m", pairs[0].Display)

	assert.Equal(t, "13:00:00", pairs[1].CheckIn.CheckInTime)
	assert.Equal(t, "17:00:00", pairs[1].CheckOut.CheckOutTime)
	assert.Equal(t, 240, pairs[1].Minutes)
	assert.Equal(t, "4h 0m", pairs[1].Display)
}

func TestPairEvents_CrossedTimes(t *testing.T) {
	// Check-ins at 09:00 and 13:00 with check-outs at 12:00 and 17:00 total
	// 7h regardless of which slot each checkout was recorded against.
	slot := slotAt("09:00", "17:00")
	events := []attendance.Event{
		checkInEvent("09:00:00", 0, slot, false),
		checkOutEvent("", "17:00:00", 1),
		checkInEvent("13:00:00", 1, slot, false),
		checkOutEvent("", "12:00:00", 0),
	}

	summary := SummarizeDay("2025-06-02", events)
	assert.Equal(t, 420, summary.TotalHours.TotalMinutes)
	assert.Equal(t, "7h 0m", summary.TotalHours.Display)
	assert.Equal(t, attendance.StatusComplete, summary.Status)
}

func TestPairEvents_TrailingOrphanCheckout(t *testing.T) {
	slot := slotAt("09:00", "17:00")
	events := []attendance.Event{
		checkInEvent("09:00:00", 0, slot, false),
		checkOutEvent("09:00:00", "12:00:00", 0),
		checkOutEvent("", "17:00:00", 0),
	}

	pairs := PairEvents(events)
	require.Len(t, pairs, 2)
	assert.Equal(t, "12:00:00", pairs[0].CheckOut.CheckOutTime)
	assert.True(t, pairs[0].Complete())
	assert.Nil(t, pairs[1].CheckIn)
	assert.Equal(t, "17:00:00", pairs[1].CheckOut.CheckOutTime)
}

func TestPairEvents_EarlyOrphanCheckout(t *testing.T) {
	events := []attendance.Event{
		checkOutEvent("", "08:00:00", 0),
		checkInEvent("09:00:00", 0, slotAt("09:00", "17:00"), false),
	}

	pairs := PairEvents(events)
	require.Len(t, pairs, 2)

	// The 08:00 checkout precedes the only check-in, so it cannot pair.
	assert.Nil(t, pairs[0].CheckOut)
	assert.Equal(t, "09:00:00", pairs[0].CheckIn.CheckInTime)
	assert.Nil(t, pairs[1].CheckIn)
	assert.Equal(t, "08:00:00", pairs[1].CheckOut.CheckOutTime)
	assert.False(t, pairs[0].Complete())
	assert.False(t, pairs[1].Complete())
}

func TestSummarizeDay_RegularAndLateSplit(t *testing.T) {
	// 4h regular morning, 2h late afternoon.
	slot := slotAt("09:00", "13:00")
	afternoon := slotAt("14:00", "16:00")
	events := []attendance.Event{
		checkInEvent("09:00:00", 0, slot, false),
		checkOutEvent("09:00:00", "13:00:00", 0),
		checkInEvent("14:45:00", 1, afternoon, true),
		checkOutEvent("14:45:00", "16:45:00", 1),
	}

	summary := SummarizeDay("2025-06-02", events)
	assert.Equal(t, 240, summary.RegularHours.TotalMinutes)
	assert.Equal(t, "4h 0m", summary.RegularHours.Display)
	assert.Equal(t, 120, summary.LateHours.TotalMinutes)
	assert.Equal(t, "2h 0m", summary.LateHours.Display)
	assert.Equal(t, 360, summary.TotalHours.TotalMinutes)
	assert.Equal(t, 6, summary.TotalHours.Hours)
	assert.Equal(t, 0, summary.TotalHours.Minutes)
	assert.Equal(t, attendance.StatusComplete, summary.Status)
}

func TestBuildPair_InvertedRangeMarker(t *testing.T) {
	// An inverted pair carries the explicit marker instead of a wrapped
	// negative duration, and contributes zero minutes.
	in := checkInEvent("09:00:00", 0, slotAt("09:00", "17:00"), false)
	out := checkOutEvent("09:00:00", "08:00:00", 0)

	p := buildPair(&in, &out)
	assert.True(t, p.Invalid)
	assert.Equal(t, "Error: Invalid time range", p.Display)
	assert.Equal(t, 0, p.Minutes)
	assert.True(t, p.Complete())
}

func TestSummarizeDay_IncompleteStatus(t *testing.T) {
	slot := slotAt("09:00", "17:00")
	events := []attendance.Event{checkInEvent("09:00:00", 0, slot, false)}

	summary := SummarizeDay("2025-06-02", events)
	assert.Equal(t, attendance.StatusIncomplete, summary.Status)
	require.Len(t, summary.Pairs, 1)
	assert.Nil(t, summary.Pairs[0].CheckOut)
}

func TestSummarizeHistory_NewestFirst(t *testing.T) {
	slot := slotAt("09:00", "17:00")
	older := checkInEvent("09:00:00", 0, slot, false)
	older.Date = "2025-06-02"
	newer := checkInEvent("09:00:00", 0, slot, false)
	newer.Date = "2025-06-03"

	summaries := SummarizeHistory([]attendance.Event{older, newer})
	require.Len(t, summaries, 2)
	assert.Equal(t, "2025-06-03", summaries[0].Date)
	assert.Equal(t, "2025-06-02", summaries[1].Date)
}

func TestRenderCSV(t *testing.T) {
	name := `Dana "DJ" Jones`
	reason := "traffic, heavy"
	slot := slotAt("09:00", "17:00")
	e := checkInEvent("09:45:00", 0, slot, true)
	e.EmployeeName = &name
	e.LateReason = &reason

	out := string(renderCSV([]attendance.Event{e}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `"Employee Name","Employee ID","Date","Day","Type","Time","Scheduled Time","Late Reason","Status"`, lines[0])
	assert.Contains(t, lines[1], `"Dana ""DJ"" Jones"`)
	assert.Contains(t, lines[1], `"traffic, heavy"`)
	assert.Contains(t, lines[1], `"09:45:00"`)
	assert.Contains(t, lines[1], `"Late"`)
	assert.Contains(t, lines[1], `"checkin"`)
}

func TestRenderCSV_OnTimeStatus(t *testing.T) {
	e := checkOutEvent("09:00:00", "17:00:00", 0)
	out := string(renderCSV([]attendance.Event{e}))
	assert.Contains(t, out, `"On Time"`)
	assert.Contains(t, out, `"checkout"`)
}
