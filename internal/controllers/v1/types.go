package v1

import (
	"time"

	ez_uuid "github.com/contract-ledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// defaultLimit is the number of resources returned by list endpoints
// if no limit is specified.
const defaultLimit = 50

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// DateRange filters bookings by their date.
type DateRange struct {
	FromDate  time.Time `form:"from_date" time_format:"2006-01-02" time_utc:"1" filterField:"false"`  // Bookings on or after this date
	UntilDate time.Time `form:"until_date" time_format:"2006-01-02" time_utc:"1" filterField:"false"` // Bookings on or before this date
}

// where applies the date range to the column.
func (r DateRange) where(q *gorm.DB, column string) *gorm.DB {
	if !r.FromDate.IsZero() {
		q = q.Where(column+" >= ?", r.FromDate)
	}

	if !r.UntilDate.IsZero() {
		q = q.Where(column+" < ?", r.UntilDate.AddDate(0, 0, 1))
	}

	return q
}

// paginate sets offset and limit on the query. The limit defaults
// to 50 if it is not set in the query string.
func paginate(q *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	if !slices.Contains(setFields, "Limit") {
		limit = defaultLimit
	}

	return q.Offset(int(offset)).Limit(limit), limit
}

// bindURI binds the resource ID from the URI.
func bindURI(c *gin.Context) (URIID, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	return uri, err
}
