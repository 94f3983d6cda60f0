package query

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// PageRequest carries raw listing parameters as parsed from the request.
type PageRequest struct {
	Page     int
	PageSize int
	Search   string
	Sort     string
	SortDir  string
}

// Spec holds the per-entity listing defaults and the sort allow-list.
type Spec struct {
	DefaultPageSize int
	DefaultSort     string
	DefaultDir      string
	SortColumns     []string
}

// Normalize clamps page/pageSize and resolves sort column and direction
// against the allow-list. Unrecognized sort values fall back to the default
// column, unrecognized directions to the default direction.
func (s Spec) Normalize(req PageRequest) PageRequest {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = s.DefaultPageSize
	}

	allowed := false
	for _, col := range s.SortColumns {
		if req.Sort == col {
			allowed = true
			break
		}
	}
	if !allowed {
		req.Sort = s.DefaultSort
	}

	if req.SortDir != SortAsc && req.SortDir != SortDesc {
		req.SortDir = s.DefaultDir
	}
	return req
}

// Offset returns the row offset for the (1-based) page.
func (req PageRequest) Offset() int {
	return (req.Page - 1) * req.PageSize
}

// Order returns the ORDER BY expression for the normalized request. The
// primary key is always appended as a secondary sort key so pagination stays
// stable under concurrent inserts.
func (req PageRequest) Order() string {
	return fmt.Sprintf("%s %s, id %s", req.Sort, req.SortDir, req.SortDir)
}

// Run counts all rows matching the filter, then fetches one page of them into
// dest. The count ignores pagination so callers can build pagination UIs.
func Run(db *gorm.DB, model interface{}, filter Filter, req PageRequest, dest interface{}) (int64, error) {
	var total int64

	counted := filter.Apply(db.Model(model))
	if err := counted.Count(&total).Error; err != nil {
		return 0, err
	}

	fetched := filter.Apply(db.Model(model)).
		Order(req.Order()).
		Offset(req.Offset()).
		Limit(req.PageSize)
	if err := fetched.Find(dest).Error; err != nil {
		return 0, err
	}

	return total, nil
}
