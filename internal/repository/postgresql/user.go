package postgresql

import (
	"context"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/user"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
)

const userColumns = `id, email, password_hash, role, oauth_provider, oauth_provider_id, active, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, oauth_provider, oauth_provider_id, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query, u.ID, u.Email, u.PasswordHash, u.Role, u.OAuthProvider, u.OAuthProviderID, u.Active))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.QueryRow(ctx, query, email))
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1, password_hash = $2, role = $3, active = $4, updated_at = NOW()
		WHERE id = $5
	`
	_, err := q.Exec(ctx, query, u.Email, u.PasswordHash, u.Role, u.Active, u.ID)
	return err
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, providerID string, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET oauth_provider = $1, oauth_provider_id = $2, updated_at = NOW()
		WHERE email = $3
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query, "google", providerID, email))
}

// ListAdminIDs implements user.UserRepository.
func (r *userRepositoryImpl) ListAdminIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM users WHERE role = 'admin' AND active = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
