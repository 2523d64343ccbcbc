package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrAirportNotFound      = errors.New("airport not found")
	ErrAirportNameExists    = errors.New("airport with this name already exists")
	ErrRouteNotFound        = errors.New("route not found")
	ErrRouteExists          = errors.New("route with this source and destination already exists")
	ErrAirplaneTypeNotFound = errors.New("airplane type not found")
	ErrAirplaneTypeExists   = errors.New("airplane type with this name already exists")
	ErrAirplaneNotFound     = errors.New("airplane not found")
	ErrCrewNotFound         = errors.New("crew not found")
	ErrFlightNotFound       = errors.New("flight not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrTicketTaken          = errors.New("ticket already sold")
	ErrReferenceNotFound    = errors.New("referenced record does not exist")
)

// isUniqueViolation recognises unique violations from postgres and from
// dialects opened with gorm's TranslateError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// translate maps driver errors onto the DAO sentinels.
func translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && isUniqueViolation(err):
		return duplicate
	case isForeignKeyViolation(err):
		return ErrReferenceNotFound
	default:
		return err
	}
}
