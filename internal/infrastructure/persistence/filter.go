package persistence

import (
	"fmt"
	"strings"

	"github.com/zapateria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies ordering and equality filters to a query
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for field, value := range filter.Filters {
		query = query.Where(fmt.Sprintf("%s = ?", field), value)
	}

	if filter.OrderBy != "" {
		dir := "asc"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "desc"
		}
		query = query.Order(fmt.Sprintf("%s %s", filter.OrderBy, dir))
	}

	return query
}
