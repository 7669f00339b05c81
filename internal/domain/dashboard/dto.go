package dashboard

import "context"

// AdminDashboardResponse is the admin landing view: today's attendance
// counts plus pending work across the request domains.
type AdminDashboardResponse struct {
	Date                string           `json:"date"`
	TotalEmployees      int64            `json:"total_employees"`
	CheckedInToday      int64            `json:"checked_in_today"`
	LateToday           int64            `json:"late_today"`
	AbsentToday         int64            `json:"absent_today"`
	PendingHolidays     int64            `json:"pending_holidays"`
	PendingCompensation int64            `json:"pending_compensation"`
	TasksByStatus       map[string]int64 `json:"tasks_by_status"`
}

type WeekHours struct {
	RegularDisplay string `json:"regular_display"`
	LateDisplay    string `json:"late_display"`
	TotalDisplay   string `json:"total_display"`
	TotalMinutes   int    `json:"total_minutes"`
}

// SelfDashboardResponse is the employee self-view: this week's worked time
// plus open items.
type SelfDashboardResponse struct {
	Date                string    `json:"date"`
	WeekStart           string    `json:"week_start"`
	Week                WeekHours `json:"week"`
	OpenTasks           int64     `json:"open_tasks"`
	PendingHolidays     int64     `json:"pending_holidays"`
	PendingCompensation int64     `json:"pending_compensation"`
}

type DashboardService interface {
	Admin(ctx context.Context) (AdminDashboardResponse, error)
	Self(ctx context.Context) (SelfDashboardResponse, error)
}
