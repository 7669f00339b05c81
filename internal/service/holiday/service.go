package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/holiday"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/notification"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HolidayServiceImpl struct {
	holiday.RequestRepository
	notifier notification.Publisher
}

func NewHolidayService(requestRepository holiday.RequestRepository, notifier notification.Publisher) holiday.HolidayService {
	return &HolidayServiceImpl{
		RequestRepository: requestRepository,
		notifier:          notifier,
	}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateRequestRequest) (holiday.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.RequestResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return holiday.RequestResponse{}, err
	}

	created, err := s.RequestRepository.Create(ctx, holiday.Request{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    holiday.StatusPending,
	})
	if err != nil {
		return holiday.RequestResponse{}, fmt.Errorf("failed to create holiday request: %w", err)
	}

	s.notifier.NotifyAdmins(ctx, notification.KindHolidayRequested,
		"Holiday requested",
		fmt.Sprintf("A holiday request for %s to %s is waiting for review.", created.StartDate, created.EndDate),
		&created.ID)

	return mapToResponse(created), nil
}

// ListMine implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListMine(ctx context.Context) (holiday.ListRequestsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return holiday.ListRequestsResponse{}, err
	}

	requests, err := s.RequestRepository.ListForUser(ctx, userID)
	if err != nil {
		return holiday.ListRequestsResponse{}, fmt.Errorf("failed to list holiday requests: %w", err)
	}
	return mapToListResponse(requests), nil
}

// ListAll implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListAll(ctx context.Context, status *holiday.Status) (holiday.ListRequestsResponse, error) {
	requests, err := s.RequestRepository.List(ctx, status)
	if err != nil {
		return holiday.ListRequestsResponse{}, fmt.Errorf("failed to list holiday requests: %w", err)
	}
	return mapToListResponse(requests), nil
}

// Decide implements holiday.HolidayService. A decided request cannot be
// decided again.
func (s *HolidayServiceImpl) Decide(ctx context.Context, id string, req holiday.DecideRequestRequest) (holiday.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.RequestResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return holiday.RequestResponse{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.RequestResponse{}, holiday.ErrRequestNotFound
		}
		return holiday.RequestResponse{}, fmt.Errorf("failed to get holiday request: %w", err)
	}
	if !request.Pending() {
		return holiday.RequestResponse{}, holiday.ErrAlreadyDecided
	}

	now := time.Now()
	request.Status = holiday.StatusRejected
	if req.Approve {
		request.Status = holiday.StatusApproved
	}
	if req.Note != "" {
		note := req.Note
		request.DecisionNote = &note
	}
	request.DecidedBy = &adminID
	request.DecidedAt = &now

	updated, err := s.RequestRepository.Update(ctx, request)
	if err != nil {
		return holiday.RequestResponse{}, fmt.Errorf("failed to update holiday request: %w", err)
	}

	verdict := "rejected"
	if req.Approve {
		verdict = "approved"
	}
	s.notifier.Notify(ctx, updated.UserID, notification.KindHolidayDecision,
		"Holiday request "+verdict,
		fmt.Sprintf("Your holiday request for %s to %s was %s.", updated.StartDate, updated.EndDate, verdict),
		&updated.ID)

	return mapToResponse(updated), nil
}

func mapToResponse(r holiday.Request) holiday.RequestResponse {
	resp := holiday.RequestResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		EmployeeName: r.EmployeeName,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Reason:       r.Reason,
		Status:       string(r.Status),
		DecisionNote: r.DecisionNote,
		DecidedBy:    r.DecidedBy,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		decidedAt := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}

func mapToListResponse(requests []holiday.Request) holiday.ListRequestsResponse {
	resp := holiday.ListRequestsResponse{
		Requests: make([]holiday.RequestResponse, 0, len(requests)),
		Total:    int64(len(requests)),
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, mapToResponse(r))
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
