package model

import "time"

// Stage is a named step in the operator-defined production workflow. The set
// is an open vocabulary: no ordering, no transition graph, and duplicate
// names are permitted.
type Stage struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `gorm:"type:varchar(256);not null" json:"name"`
	Remarks   string    `gorm:"type:text" json:"remarks"`
}
