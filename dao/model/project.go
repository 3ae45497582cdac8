package model

import (
	"fmt"
	"time"
)

// Project is a tracked manufacturing job.
//
// ProductionStage references Stage.Name by trimmed value, not by id. Renaming
// or deleting a stage therefore orphans projects that still carry the old
// name; readers must tolerate the dangling reference. This is a known
// limitation of the contract, not something to patch silently.
type Project struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// ProjectNo is the operator-facing business key, unique across all
	// projects (case-sensitive, trimmed).
	ProjectNo       string `gorm:"uniqueIndex;type:varchar(128);not null" json:"projectNo"`
	ProjectName     string `gorm:"type:varchar(256)" json:"projectName"`
	CustomerName    string `gorm:"type:varchar(256);not null" json:"customerName"`
	Owner           string `gorm:"type:varchar(128)" json:"owner"`
	ProjectDate     Date   `gorm:"type:date" json:"projectDate"`
	TargetDate      Date   `gorm:"type:date" json:"targetDate"`
	DispatchMonth   string `gorm:"type:varchar(32)" json:"dispatchMonth"`
	ProductionStage string `gorm:"type:varchar(256)" json:"productionStage"`
	Remarks         string `gorm:"type:text" json:"remarks"`
}

// DispatchMonth derives the denormalized display field from a target date,
// e.g. "March 2024". Empty when the target date is unset.
func DispatchMonth(targetDate Date) string {
	if targetDate.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d", targetDate.Month(), targetDate.Year())
}
