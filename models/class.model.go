package models

import "gorm.io/gorm"

// Moderation states of a class. Instructors create classes as pending;
// only an admin moves them to approved or denied.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

type Class struct {
	gorm.Model
	Name            string  `json:"name"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" gorm:"index"`
	InstructorImage string  `json:"instructorImage"`
	Image           string  `json:"image"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	// Seats is the remaining capacity; StudentsEnrolled counts consumed
	// seats. Both are mutated only by the payment workflow in a single
	// conditional update so Seats can never go below zero.
	Seats            int    `json:"seats"`
	StudentsEnrolled int    `json:"studentsEnrolled" gorm:"default:0"`
	Status           string `json:"status" gorm:"default:'pending'"`
	Feedback         string `json:"feedback"`
}
