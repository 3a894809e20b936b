package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors the service layer maps onto its error codes.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("active record with this external id already exists")
	ErrAlreadyActive = errors.New("record is already active")
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{db: pool}
}

// isUniqueViolation reports whether err is a violation of one of the
// partial unique indexes on (external id) WHERE is_active.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
