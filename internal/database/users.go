package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fullnessapp/fullness-server/internal/auth"
	"github.com/fullnessapp/fullness-server/models"
)

// NewUser carries registration/creation input. The plaintext password never
// reaches a table or a response; it is hashed here and discarded.
type NewUser struct {
	Name     string
	Email    string
	Password string
	RoleID   int
}

const userColumns = "id, name, email, role_id"

// RegisterUser checks email uniqueness, hashes the password and inserts the
// row. Returns ErrEmailTaken when the email is already registered.
func RegisterUser(ctx context.Context, q Querier, nu NewUser) (*models.User, error) {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, nu.Email).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}
	return CreateUser(ctx, q, nu)
}

// CreateUser hashes the password and inserts the row without a prior email
// check; a duplicate email surfaces as the unique-constraint error.
func CreateUser(ctx context.Context, q Querier, nu NewUser) (*models.User, error) {
	hash, err := auth.HashPassword(nu.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user := models.User{Name: nu.Name, Email: nu.Email, RoleID: nu.RoleID}
	err = q.QueryRow(ctx,
		`INSERT INTO users (name, email, password, role_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		nu.Name, nu.Email, hash, nu.RoleID).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return &user, nil
}

// AuthenticateUser returns the user for valid credentials. Unknown email and
// wrong password both yield ErrInvalidCredentials so callers cannot be used
// to enumerate accounts.
func AuthenticateUser(ctx context.Context, q Querier, email, password string) (*models.User, error) {
	var user models.User
	var hash string
	err := q.QueryRow(ctx,
		`SELECT id, name, email, password, role_id FROM users WHERE email = $1`, email).
		Scan(&user.ID, &user.Name, &user.Email, &hash, &user.RoleID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if !auth.CheckPassword(password, hash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func ListUsers(ctx context.Context, q Querier) ([]models.User, error) {
	rows, err := q.Query(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func GetUser(ctx context.Context, q Querier, id int) (*models.User, error) {
	rows, err := q.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("fetching user %d: %w", id, err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user %d: %w", id, err)
	}
	return &user, nil
}

// UpdateUser replaces name, email and password for the given id.
func UpdateUser(ctx context.Context, q Querier, id int, nu NewUser) (*models.User, error) {
	hash, err := auth.HashPassword(nu.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	rows, err := q.Query(ctx,
		`UPDATE users SET name = $1, email = $2, password = $3 WHERE id = $4 RETURNING `+userColumns,
		nu.Name, nu.Email, hash, id)
	if err != nil {
		return nil, fmt.Errorf("updating user %d: %w", id, err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating user %d: %w", id, err)
	}
	return &user, nil
}

// DeleteUser removes the user; deleting a missing id is not an error.
func DeleteUser(ctx context.Context, q Querier, id int) error {
	if _, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting user %d: %w", id, err)
	}
	return nil
}
