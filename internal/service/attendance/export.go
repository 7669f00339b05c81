package attendance

import (
	"strings"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
)

var csvHeader = []string{
	"Employee Name", "Employee ID", "Date", "Day", "Type",
	"Time", "Scheduled Time", "Late Reason", "Status",
}

// renderCSV writes attendance events in the export format: header row
// first, one row per event, every value double-quoted. encoding/csv quotes
// only when it must, so rows are joined by hand.
func renderCSV(events []attendance.Event) []byte {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)

	for _, e := range events {
		name := ""
		if e.EmployeeName != nil {
			name = *e.EmployeeName
		}
		reason := ""
		if e.LateReason != nil {
			reason = *e.LateReason
		}
		status := "On Time"
		if e.IsLate {
			status = "Late"
		}
		writeCSVRow(&b, []string{
			name,
			e.UserID,
			e.Date,
			e.Day,
			string(e.Type),
			e.EventTime(),
			e.ScheduledTime(),
			reason,
			status,
		})
	}

	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(v, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
