package dao

import (
	"strings"

	"gorm.io/gorm"
)

// Page is an offset/limit window over an ordered result set.
type Page struct {
	Offset int
	Limit  int
}

func paginate(p Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Limit <= 0 {
			return db
		}

		return db.Offset(p.Offset).Limit(p.Limit)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains builds a case-insensitive substring pattern for `LOWER(col) LIKE LOWER(?) ESCAPE '\'`.
func contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

const ilike = `LIKE LOWER(?) ESCAPE '\'`
