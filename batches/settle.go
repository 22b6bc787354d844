// Package batches groups bookings assigned to one dealer into a payable unit
// and tracks cumulative payments against the batch total.
package batches

import (
	"context"
	"errors"
	"fmt"

	"mobitrack/db"
	"mobitrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNonPositivePayment = errors.New("payment amount must be a positive number")

// ApplyPayment computes the batch's new running totals and derives its status.
// remaining is clamped at zero; status is a pure function of remaining.
func ApplyPayment(totalAmount, paidAmount, amount float64) (newPaid, remaining float64, status string, err error) {
	if amount <= 0 {
		return 0, 0, "", ErrNonPositivePayment
	}
	newPaid = paidAmount + amount
	remaining = totalAmount - newPaid
	if remaining <= 0 {
		remaining = 0
		status = models.BatchCompletedPayment
	} else {
		status = models.BatchPartiallyPaid
	}
	return newPaid, remaining, status, nil
}

// FormatBatchID renders a sequence number as the human-readable batch id,
// e.g. 7 -> "A007".
func FormatBatchID(seq int64) string {
	return fmt.Sprintf("A%03d", seq)
}

// NextBatchID allocates the next batch id through an atomic counter document,
// so concurrent batch creation can never hand out the same id twice.
func NextBatchID(ctx context.Context) (string, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := db.CountersCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": "dealer_batch"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return "", err
	}
	return FormatBatchID(counter.Seq), nil
}
