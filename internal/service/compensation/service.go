package compensation

import (
	"context"
	"fmt"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/compensation"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/notification"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CompensationServiceImpl struct {
	compensation.RequestRepository
	notifier notification.Publisher
}

func NewCompensationService(requestRepository compensation.RequestRepository, notifier notification.Publisher) compensation.CompensationService {
	return &CompensationServiceImpl{
		RequestRepository: requestRepository,
		notifier:          notifier,
	}
}

// Create implements compensation.CompensationService.
func (s *CompensationServiceImpl) Create(ctx context.Context, req compensation.CreateRequestRequest) (compensation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.RequestResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return compensation.RequestResponse{}, err
	}

	created, err := s.RequestRepository.Create(ctx, compensation.Request{
		ID:     uuid.NewString(),
		UserID: userID,
		Date:   req.Date,
		Hours:  req.Hours,
		Reason: req.Reason,
		Status: compensation.StatusPending,
	})
	if err != nil {
		return compensation.RequestResponse{}, fmt.Errorf("failed to create compensation request: %w", err)
	}

	s.notifier.NotifyAdmins(ctx, notification.KindCompensationRequested,
		"Compensation requested",
		fmt.Sprintf("A compensation request for %.1f hours on %s is waiting for review.", created.Hours, created.Date),
		&created.ID)

	return mapToResponse(created), nil
}

// ListMine implements compensation.CompensationService.
func (s *CompensationServiceImpl) ListMine(ctx context.Context) (compensation.ListRequestsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return compensation.ListRequestsResponse{}, err
	}

	requests, err := s.RequestRepository.ListForUser(ctx, userID)
	if err != nil {
		return compensation.ListRequestsResponse{}, fmt.Errorf("failed to list compensation requests: %w", err)
	}
	return mapToListResponse(requests), nil
}

// ListAll implements compensation.CompensationService.
func (s *CompensationServiceImpl) ListAll(ctx context.Context, status *compensation.Status) (compensation.ListRequestsResponse, error) {
	requests, err := s.RequestRepository.List(ctx, status)
	if err != nil {
		return compensation.ListRequestsResponse{}, fmt.Errorf("failed to list compensation requests: %w", err)
	}
	return mapToListResponse(requests), nil
}

// Decide implements compensation.CompensationService.
func (s *CompensationServiceImpl) Decide(ctx context.Context, id string, req compensation.DecideRequestRequest) (compensation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.RequestResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return compensation.RequestResponse{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return compensation.RequestResponse{}, compensation.ErrRequestNotFound
		}
		return compensation.RequestResponse{}, fmt.Errorf("failed to get compensation request: %w", err)
	}
	if !request.Pending() {
		return compensation.RequestResponse{}, compensation.ErrAlreadyDecided
	}

	now := time.Now()
	request.Status = compensation.StatusRejected
	if req.Approve {
		request.Status = compensation.StatusApproved
	}
	if req.Note != "" {
		note := req.Note
		request.DecisionNote = &note
	}
	request.DecidedBy = &adminID
	request.DecidedAt = &now

	updated, err := s.RequestRepository.Update(ctx, request)
	if err != nil {
		return compensation.RequestResponse{}, fmt.Errorf("failed to update compensation request: %w", err)
	}

	verdict := "rejected"
	if req.Approve {
		verdict = "approved"
	}
	s.notifier.Notify(ctx, updated.UserID, notification.KindCompensationDecision,
		"Compensation request "+verdict,
		fmt.Sprintf("Your compensation request for %.1f hours on %s was %s.", updated.Hours, updated.Date, verdict),
		&updated.ID)

	return mapToResponse(updated), nil
}

func mapToResponse(r compensation.Request) compensation.RequestResponse {
	resp := compensation.RequestResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		Hours:        r.Hours,
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

func mapToListResponse(requests []compensation.Request) compensation.ListRequestsResponse {
	resp := compensation.ListRequestsResponse{
		Requests: make([]compensation.RequestResponse, 0, len(requests)),
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
