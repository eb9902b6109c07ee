package v1

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// like returns the LIKE pattern for a substring search.
func like(s string) string {
	return fmt.Sprintf("%%%s%%", strings.TrimSpace(s))
}

// stringFilter filters the column by a substring. If the parameter is
// set in the query string, but empty, it matches resources where the
// column is empty.
func stringFilter(q *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return q.Where(column+" LIKE ?", like(value))
	}

	if slices.Contains(setFields, field) {
		return q.Where(column + " = ''")
	}

	return q
}

// searchFilter matches resources where any of the columns contains the search string.
func searchFilter(db, q *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return q
	}

	condition := db.Where(columns[0]+" LIKE ?", like(search))
	for _, column := range columns[1:] {
		condition = condition.Or(column+" LIKE ?", like(search))
	}

	return q.Where(condition)
}
