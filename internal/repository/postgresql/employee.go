package postgresql

import (
	"context"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/employee"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
)

const employeeColumns = `id, user_id, name, email, role, position, department, phone, join_date, active, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row interface{ Scan(...any) error }) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Name,
		&e.Email,
		&e.Role,
		&e.Position,
		&e.Department,
		&e.Phone,
		&e.JoinDate,
		&e.Active,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, user_id, name, email, role, position, department, phone, join_date, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		e.ID, e.UserID, e.Name, e.Email, e.Role, e.Position, e.Department, e.Phone, e.JoinDate, e.Active))
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`
	return scanEmployee(q.QueryRow(ctx, query, userID))
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, position = $2, department = $3, phone = $4, join_date = $5, active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		e.Name, e.Position, e.Department, e.Phone, e.JoinDate, e.Active, e.ID))
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE active = TRUE`).Scan(&count)
	return count, err
}
