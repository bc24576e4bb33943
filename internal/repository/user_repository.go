package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/HITENDRAS940/turf-booking-api/internal/model"
	"github.com/HITENDRAS940/turf-booking-api/internal/utils"
)

// ErrEmailExists is returned when a user insert hits the unique email key.
var ErrEmailExists = errors.New("email already exists")

// UserRepo provides access to the users table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,name,email,phone,password_hash,role,created_by,is_active,created_at,updated_at"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.Role, &u.CreatedBy, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create inserts a user and returns its ID.  createdBy is nil for
// self-registered users and carries the manager's ID for admin
// accounts created through the manager API.
func (r *UserRepo) Create(ctx context.Context, name, email, phone, password, role string, createdBy *uint64, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	var phonePtr *string
	if p := strings.TrimSpace(phone); p != "" {
		phonePtr = &p
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, phone, password_hash, role, created_by) VALUES (?,?,?,?,?,?)",
		name, email, phonePtr, hash, role, createdBy)
	if err != nil {
		// MySQL duplicate-key error code
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// ListAdminsByManager returns the active admin accounts created by the
// given manager, newest first.
func (r *UserRepo) ListAdminsByManager(ctx context.Context, managerID uint64) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE role=? AND created_by=? AND is_active=1 ORDER BY created_at DESC",
		model.RoleAdmin, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
			&u.Role, &u.CreatedBy, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetAdminForManager fetches an admin account while enforcing that it
// was created by the given manager.  Returns sql.ErrNoRows when the
// account does not exist and ErrForbidden when it belongs to a
// different manager.
func (r *UserRepo) GetAdminForManager(ctx context.Context, adminID, managerID uint64) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? AND role=? AND is_active=1 LIMIT 1",
		adminID, model.RoleAdmin))
	if err != nil {
		return model.User{}, err
	}
	if u.CreatedBy == nil || *u.CreatedBy != managerID {
		return model.User{}, ErrForbidden
	}
	return u, nil
}

// DeactivateAdmin soft-deletes an admin account created by the given
// manager.  The row is kept so historical bookings stay attributable.
// Returns sql.ErrNoRows when no matching active admin exists.
func (r *UserRepo) DeactivateAdmin(ctx context.Context, adminID, managerID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET is_active=0 WHERE id=? AND role=? AND created_by=? AND is_active=1",
		adminID, model.RoleAdmin, managerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
