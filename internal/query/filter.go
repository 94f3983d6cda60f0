package query

import (
	"gorm.io/gorm"
)

// Filter is a predicate over a listing query. The supported variants are a
// closed set; repositories compose them and apply the result to a gorm query.
type Filter interface {
	Apply(db *gorm.DB) *gorm.DB
}

// TextContains matches rows where any of Columns contains Term,
// case-insensitively. An empty term matches everything.
type TextContains struct {
	Columns []string
	Term    string
}

func (f TextContains) Apply(db *gorm.DB) *gorm.DB {
	if f.Term == "" || len(f.Columns) == 0 {
		return db
	}
	pattern := "%" + f.Term + "%"
	cond := db.Session(&gorm.Session{NewDB: true}).
		Where(f.Columns[0]+" ILIKE ?", pattern)
	for _, col := range f.Columns[1:] {
		cond = cond.Or(col+" ILIKE ?", pattern)
	}
	return db.Where(cond)
}

// BoolEquals matches rows where Column equals Value.
type BoolEquals struct {
	Column string
	Value  bool
}

func (f BoolEquals) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(f.Column+" = ?", f.Value)
}

// And conjoins filters.
type And []Filter

func (f And) Apply(db *gorm.DB) *gorm.DB {
	for _, sub := range f {
		db = sub.Apply(db)
	}
	return db
}
