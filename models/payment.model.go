package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is append-only. The set of payments for an email is the
// authoritative enrollment record; enrolled classes are derived from it.
// The (email, class_id) unique index backs the one-payment-per-class
// policy even when duplicate submissions race.
type Payment struct {
	gorm.Model
	Email         string    `json:"email" gorm:"not null;uniqueIndex:idx_payment_email_class"`
	ClassID       uint      `json:"classId" gorm:"not null;uniqueIndex:idx_payment_email_class"`
	ClassName     string    `json:"className"`
	TransactionID string    `json:"transactionId" gorm:"not null"`
	Price         float64   `json:"price"`
	Date          time.Time `json:"date"`
}
