package compensation

import "context"

type RequestRepository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListForUser(ctx context.Context, userID string) ([]Request, error)
	List(ctx context.Context, status *Status) ([]Request, error)
	Update(ctx context.Context, r Request) (Request, error)
	CountPending(ctx context.Context) (int64, error)
	CountPendingForUser(ctx context.Context, userID string) (int64, error)
}

type CompensationService interface {
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	ListMine(ctx context.Context) (ListRequestsResponse, error)
	ListAll(ctx context.Context, status *Status) (ListRequestsResponse, error)
	Decide(ctx context.Context, id string, req DecideRequestRequest) (RequestResponse, error)
}
