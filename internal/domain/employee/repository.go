package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	GetSelf(ctx context.Context) (EmployeeResponse, error)
	List(ctx context.Context) (ListEmployeesResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
