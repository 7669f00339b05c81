package progress

import "context"

type ReportRepository interface {
	Create(ctx context.Context, r Report) (Report, error)
	ListForUser(ctx context.Context, userID string) ([]Report, error)
	List(ctx context.Context, filter ListFilter) ([]Report, error)
}

type ProgressService interface {
	Create(ctx context.Context, req CreateReportRequest) (ReportResponse, error)
	ListMine(ctx context.Context) (ListReportsResponse, error)
	ListAll(ctx context.Context, filter ListFilter) (ListReportsResponse, error)
}
