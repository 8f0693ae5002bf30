package specification

import "gorm.io/gorm"

// Specification is a composable query predicate applied to a GORM query.
// Repositories accept any number of them and chain the results.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
