package models

import "time"

// Booking statuses follow the resale pipeline order, but transitions are not
// enforced; the timestamps below are only ever set forward.
const (
	StatusPending       = "pending"
	StatusDelivered     = "delivered"
	StatusGivenToAdmin  = "given_to_admin"
	StatusGivenToDealer = "given_to_dealer"
	StatusPaymentDone   = "payment_done"
)

func IsValidBookingStatus(s string) bool {
	switch s {
	case StatusPending, StatusDelivered, StatusGivenToAdmin, StatusGivenToDealer, StatusPaymentDone:
		return true
	}
	return false
}

type Booking struct {
	ID                    string     `json:"id" bson:"id"`
	UserID                string     `json:"userId" bson:"userId"`
	Username              string     `json:"username,omitempty" bson:"username,omitempty"`
	BookingDate           time.Time  `json:"bookingDate" bson:"bookingDate"`
	MobileModel           string     `json:"mobileModel" bson:"mobileModel"`
	BookingPrice          float64    `json:"bookingPrice" bson:"bookingPrice"`
	SellingPrice          float64    `json:"sellingPrice,omitempty" bson:"sellingPrice,omitempty"`
	Platform              string     `json:"platform" bson:"platform"`
	BookingAccount        string     `json:"bookingAccount,omitempty" bson:"bookingAccount,omitempty"`
	Card                  string     `json:"card" bson:"card"`
	Dealer                string     `json:"dealer,omitempty" bson:"dealer,omitempty"`
	BookingID             string     `json:"bookingId,omitempty" bson:"bookingId,omitempty"`
	Notes                 string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Status                string     `json:"status" bson:"status"`
	AssignedToDealerID    string     `json:"assignedToDealerId,omitempty" bson:"assignedToDealerId,omitempty"`
	DealerBatchID         string     `json:"dealerBatchId,omitempty" bson:"dealerBatchId,omitempty"`
	GivenToAdminAt        *time.Time `json:"givenToAdminAt,omitempty" bson:"givenToAdminAt,omitempty"`
	AssignedToDealerAt    *time.Time `json:"assignedToDealerAt,omitempty" bson:"assignedToDealerAt,omitempty"`
	DealerPaymentReceived bool       `json:"dealerPaymentReceived" bson:"dealerPaymentReceived"`
	UserPaymentGiven      bool       `json:"userPaymentGiven" bson:"userPaymentGiven"`
	DealerPaymentDate     *time.Time `json:"dealerPaymentDate,omitempty" bson:"dealerPaymentDate,omitempty"`
	UserPaymentDate       *time.Time `json:"userPaymentDate,omitempty" bson:"userPaymentDate,omitempty"`
	DealerAmount          float64    `json:"dealerAmount,omitempty" bson:"dealerAmount,omitempty"`
	CreatedAt             time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt" bson:"updatedAt"`
}
