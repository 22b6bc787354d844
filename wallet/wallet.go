// Package wallet maintains the single "Admin Wallet" ledger: an append-only
// transaction log plus a running balance. Each mutation goes through one
// FindOneAndUpdate ($inc balance + $push transaction), so balance and log
// stay consistent for that call even under concurrent writers.
package wallet

import (
	"context"
	"errors"
	"time"

	"mobitrack/db"
	"mobitrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const WalletName = "Admin Wallet"

var ErrInvalidAmount = errors.New("amount must be a positive number")
var ErrUnknownTxnType = errors.New("unknown transaction type")

// SignedAmount maps a transaction to its balance delta.
func SignedAmount(txnType string, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	switch txnType {
	case models.TxnCredit, models.TxnProfitAddition:
		return amount, nil
	case models.TxnDebit, models.TxnProfitWithdrawal:
		return -amount, nil
	}
	return 0, ErrUnknownTxnType
}

// GetOrCreate returns the singleton wallet, lazily creating it with a zero
// balance. The upsert hides the find-or-create race.
func GetOrCreate(ctx context.Context) (*models.Wallet, error) {
	var w models.Wallet
	err := db.WalletCollection.FindOneAndUpdate(ctx,
		bson.M{"name": WalletName},
		bson.M{"$setOnInsert": bson.M{
			"balance":      0.0,
			"transactions": []models.WalletTransaction{},
			"createdAt":    time.Now(),
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&w)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// RecordTransaction appends the transaction and adjusts the balance in a
// single atomic document update. The passed context may be a session context
// when the caller runs inside a multi-document transaction.
func RecordTransaction(ctx context.Context, txn models.WalletTransaction) (*models.Wallet, error) {
	delta, err := SignedAmount(txn.Type, txn.Amount)
	if err != nil {
		return nil, err
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now()
	}

	var w models.Wallet
	err = db.WalletCollection.FindOneAndUpdate(ctx,
		bson.M{"name": WalletName},
		bson.M{
			"$inc":  bson.M{"balance": delta},
			"$push": bson.M{"transactions": txn},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&w)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
