package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// orderableColumns is the whitelist of columns clients may order by.
// Ordering input reaches SQL verbatim, so anything else falls back to
// created_at.
var orderableColumns = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"name":        true,
	"price_cents": true,
	"status":      true,
	"email":       true,
}

// applyFilter applies search, key filters, ordering and pagination
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	query = applySearchAndFilters(query, filter, searchColumns...)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := filter.OrderBy
	if !orderableColumns[orderBy] {
		orderBy = "created_at"
	}
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// applySearchAndFilters applies search and key filters without pagination,
// for use by Count
func applySearchAndFilters(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		conditions := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			conditions[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(conditions, " OR "), args...)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "category_id":
			query = query.Where("category_id = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "role":
			query = query.Where("role = ?", value)
		}
	}

	return query
}
