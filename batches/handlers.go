package batches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"mobitrack/db"
	"mobitrack/models"
	"mobitrack/utils"
	"mobitrack/wallet"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errNotFound = errors.New("dealer batch not found")

// GetBatches lists all dealer batches, newest assignment first.
func GetBatches(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.DealerBatchCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"assignedAt": -1}))
	if err != nil {
		log.Printf("GetBatches: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	batches := []models.DealerBatch{}
	if err := cur.All(ctx, &batches); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, batches)
}

// GetBatchesByDealer lists batches belonging to one dealer. Routed as
// /api/dealer-batches/dealer/:dealerId through the :id wildcard.
func GetBatchesByDealer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") != "dealer" {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.DealerBatchCollection.Find(ctx,
		bson.M{"dealerId": ps.ByName("dealerId")},
		options.Find().SetSort(bson.M{"assignedAt": -1}))
	if err != nil {
		log.Printf("GetBatchesByDealer: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	batches := []models.DealerBatch{}
	if err := cur.All(ctx, &batches); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, batches)
}

// GetBatch returns a single batch with its dealer and bookings embedded.
func GetBatch(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var batch models.DealerBatch
	if err := db.DealerBatchCollection.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&batch); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Dealer batch not found")
		return
	}

	var dealer models.Dealer
	if err := db.DealersCollection.FindOne(ctx, bson.M{"id": batch.DealerID}).Decode(&dealer); err != nil {
		log.Printf("GetBatch: dealer %s missing for batch %s", batch.DealerID, batch.BatchID)
	}

	bookings := []models.Booking{}
	cur, err := db.BookingsCollection.Find(ctx, bson.M{"id": bson.M{"$in": batch.BookingIDs}})
	if err == nil {
		defer cur.Close(ctx)
		if err := cur.All(ctx, &bookings); err != nil {
			log.Printf("GetBatch: booking decode: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"batch":    batch,
		"dealer":   dealer,
		"bookings": bookings,
	})
}

// AddPayment records a payment against a batch. The batch totals, the
// dealer's running paidAmount, and the wallet credit are committed in a
// single multi-document transaction.
func AddPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Amount float64 `json:"amount"`
		Notes  string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if body.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Payment amount must be a positive number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := db.Client.StartSession()
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var batch models.DealerBatch
		if err := db.DealerBatchCollection.FindOne(sc, bson.M{"id": ps.ByName("id")}).Decode(&batch); err != nil {
			return nil, errNotFound
		}

		newPaid, remaining, status, err := ApplyPayment(batch.TotalAmount, batch.PaidAmount, body.Amount)
		if err != nil {
			return nil, err
		}

		payment := models.BatchPayment{Amount: body.Amount, Date: time.Now(), Notes: body.Notes}
		if err := db.DealerBatchCollection.FindOneAndUpdate(sc,
			bson.M{"id": batch.ID},
			bson.M{
				"$set": bson.M{
					"paidAmount":      newPaid,
					"remainingAmount": remaining,
					"status":          status,
					"updatedAt":       time.Now(),
				},
				"$push": bson.M{"payments": payment},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&batch); err != nil {
			return nil, err
		}

		var dealer models.Dealer
		if err := db.DealersCollection.FindOneAndUpdate(sc,
			bson.M{"id": batch.DealerID},
			bson.M{"$inc": bson.M{"paidAmount": body.Amount}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&dealer); err != nil {
			return nil, err
		}

		if _, err := wallet.RecordTransaction(sc, models.WalletTransaction{
			Type:           models.TxnCredit,
			Amount:         body.Amount,
			Description:    fmt.Sprintf("Payment from dealer %s for batch %s", dealer.Name, batch.BatchID),
			RelatedBatchID: batch.ID,
		}); err != nil {
			return nil, err
		}

		return &batch, nil
	})
	if err != nil {
		if err == errNotFound {
			utils.RespondWithError(w, http.StatusNotFound, "Dealer batch not found")
			return
		}
		log.Printf("AddPayment: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result.(*models.DealerBatch))
}
