package repository

import (
	"strings"

	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere in the column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func applyDirectoryFilter(db *gorm.DB, filter entity.DirectoryFilter) *gorm.DB {
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.Name != "" {
		db = db.Where("name ILIKE ?", containsPattern(filter.Name))
	}
	return db
}

func applySessionFilter(db *gorm.DB, filter entity.SessionFilter) *gorm.DB {
	if filter.Type != "" {
		db = db.Where("sessions.type = ?", filter.Type)
	}
	if filter.From != nil {
		db = db.Where(`sessions."time" >= ?`, *filter.From)
	}
	if filter.To != nil {
		db = db.Where(`sessions."time" <= ?`, *filter.To)
	}
	return db
}
