package models

import "time"

const (
	BatchPendingPayment   = "pending_payment"
	BatchPartiallyPaid    = "partially_paid"
	BatchCompletedPayment = "completed_payment"
)

type BatchPayment struct {
	Amount float64   `json:"amount" bson:"amount"`
	Date   time.Time `json:"date" bson:"date"`
	Notes  string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

type DealerBatch struct {
	ID              string         `json:"id" bson:"id"`
	DealerID        string         `json:"dealerId" bson:"dealerId"`
	BatchID         string         `json:"batchId" bson:"batchId"`
	BookingIDs      []string       `json:"bookingIds" bson:"bookingIds"`
	TotalAmount     float64        `json:"totalAmount" bson:"totalAmount"`
	PaidAmount      float64        `json:"paidAmount" bson:"paidAmount"`
	RemainingAmount float64        `json:"remainingAmount" bson:"remainingAmount"`
	Status          string         `json:"status" bson:"status"`
	Payments        []BatchPayment `json:"payments" bson:"payments"`
	AssignedAt      time.Time      `json:"assignedAt" bson:"assignedAt"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt" bson:"updatedAt"`
}
