package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/progress"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type ProgressServiceImpl struct {
	progress.ReportRepository
}

func NewProgressService(reportRepository progress.ReportRepository) progress.ProgressService {
	return &ProgressServiceImpl{
		ReportRepository: reportRepository,
	}
}

// Create implements progress.ProgressService.
func (s *ProgressServiceImpl) Create(ctx context.Context, req progress.CreateReportRequest) (progress.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return progress.ReportResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return progress.ReportResponse{}, err
	}

	created, err := s.ReportRepository.Create(ctx, progress.Report{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        req.Date,
		TaskID:      req.TaskID,
		Description: req.Description,
		HoursWorked: req.HoursWorked,
	})
	if err != nil {
		return progress.ReportResponse{}, fmt.Errorf("failed to create progress report: %w", err)
	}
	return mapToResponse(created), nil
}

// ListMine implements progress.ProgressService.
func (s *ProgressServiceImpl) ListMine(ctx context.Context) (progress.ListReportsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return progress.ListReportsResponse{}, err
	}

	reports, err := s.ReportRepository.ListForUser(ctx, userID)
	if err != nil {
		return progress.ListReportsResponse{}, fmt.Errorf("failed to list progress reports: %w", err)
	}
	return mapToListResponse(reports), nil
}

// ListAll implements progress.ProgressService (admin, filterable).
func (s *ProgressServiceImpl) ListAll(ctx context.Context, filter progress.ListFilter) (progress.ListReportsResponse, error) {
	if err := filter.Validate(); err != nil {
		return progress.ListReportsResponse{}, err
	}

	reports, err := s.ReportRepository.List(ctx, filter)
	if err != nil {
		return progress.ListReportsResponse{}, fmt.Errorf("failed to list progress reports: %w", err)
	}
	return mapToListResponse(reports), nil
}

func mapToResponse(r progress.Report) progress.ReportResponse {
	return progress.ReportResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		TaskID:       r.TaskID,
		TaskTitle:    r.TaskTitle,
		Description:  r.Description,
		HoursWorked:  r.HoursWorked,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(reports []progress.Report) progress.ListReportsResponse {
	resp := progress.ListReportsResponse{
		Reports: make([]progress.ReportResponse, 0, len(reports)),
		Total:   int64(len(reports)),
	}
	for _, r := range reports {
		resp.Reports = append(resp.Reports, mapToResponse(r))
	}
	return resp
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim missing")
	}
	return userID, nil
}
