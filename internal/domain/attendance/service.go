package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Status evaluates all four gates against one snapshot of today's
	// schedule and events
	Status(ctx context.Context) (StatusResponse, error)

	// CheckIn records a regular or late check-in after validation
	CheckIn(ctx context.Context, req CheckInRequest) (EventResponse, error)

	// CheckOut records a regular or late check-out after validation
	CheckOut(ctx context.Context, req CheckOutRequest) (EventResponse, error)

	// MyHistory returns the caller's paired history with daily summaries
	MyHistory(ctx context.Context, filter HistoryFilter) (HistoryResponse, error)

	// History returns any employee's paired history (admin)
	History(ctx context.Context, filter HistoryFilter) (HistoryResponse, error)

	// ExportCSV renders attendance events as CSV (admin)
	ExportCSV(ctx context.Context, filter ExportFilter) ([]byte, error)
}
