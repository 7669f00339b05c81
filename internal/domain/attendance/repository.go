package attendance

import (
	"context"
)

// EventRepository stores attendance events. Events are append-only: the
// core never updates or deletes one.
type EventRepository interface {
	// Append persists a new event and returns it with its generated fields.
	Append(ctx context.Context, e Event) (Event, error)

	// GetForUserAndDate retrieves a user's events for one date, ordered by
	// timestamp ascending. This is the validator's snapshot read.
	GetForUserAndDate(ctx context.Context, userID string, date string) ([]Event, error)

	// GetForUser retrieves a user's events in a date range (inclusive,
	// either bound optional), ordered by timestamp ascending.
	GetForUser(ctx context.Context, userID string, startDate, endDate *string) ([]Event, error)

	// List retrieves events across users for the admin table and CSV
	// export, joined with employee names, ordered by date then timestamp.
	List(ctx context.Context, filter ExportFilter) ([]Event, error)

	// CountForUser counts a user's events in a date range.
	CountForUser(ctx context.Context, userID string, startDate, endDate *string) (int64, error)
}
