package models

import "gorm.io/gorm"

// SelectedClass is a non-binding cart entry created when a student picks
// a class before paying. It snapshots display fields so the cart renders
// without extra lookups; the Class row stays authoritative for capacity.
type SelectedClass struct {
	gorm.Model
	Email          string  `json:"email" gorm:"index;not null"`
	ClassID        uint    `json:"classId" gorm:"index;not null"`
	ClassName      string  `json:"className"`
	Image          string  `json:"image"`
	InstructorName string  `json:"instructorName"`
	Price          float64 `json:"price"`
	Seats          int     `json:"seats"`
}
