package models

import "time"

// Wallet transaction types. Credit and profit_addition raise the balance,
// debit and profit_withdrawal lower it.
const (
	TxnCredit           = "credit"
	TxnDebit            = "debit"
	TxnProfitAddition   = "profit_addition"
	TxnProfitWithdrawal = "profit_withdrawal"
)

type WalletTransaction struct {
	Type             string    `json:"type" bson:"type"`
	Amount           float64   `json:"amount" bson:"amount"`
	Date             time.Time `json:"date" bson:"date"`
	Description      string    `json:"description" bson:"description"`
	RelatedBookingID string    `json:"relatedBookingId,omitempty" bson:"relatedBookingId,omitempty"`
	RelatedBatchID   string    `json:"relatedBatchId,omitempty" bson:"relatedBatchId,omitempty"`
}

type Wallet struct {
	Name         string              `json:"name" bson:"name"`
	Balance      float64             `json:"balance" bson:"balance"`
	Transactions []WalletTransaction `json:"transactions" bson:"transactions"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt" bson:"updatedAt"`
}
