// Package inventory exposes the pipeline views between booking and
// settlement: mobiles a user still holds, mobiles with the admin, and the
// assignment of admin stock to a dealer batch.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"mobitrack/batches"
	"mobitrack/bookings"
	"mobitrack/db"
	"mobitrack/models"
	"mobitrack/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUserInventory lists the caller's delivered-but-not-handed-over bookings.
func GetUserInventory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx,
		bson.M{"userId": utils.GetUserIDFromRequest(r), "status": models.StatusDelivered},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Printf("GetUserInventory: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	items := []models.Booking{}
	if err := cur.All(ctx, &items); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GetAdminInventory lists bookings handed to the admin but not yet assigned.
func GetAdminInventory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx,
		bson.M{"status": models.StatusGivenToAdmin},
		options.Find().SetSort(bson.M{"givenToAdminAt": -1}))
	if err != nil {
		log.Printf("GetAdminInventory: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	items := []models.Booking{}
	if err := cur.All(ctx, &items); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// AssignToDealer groups bookings into a new dealer batch. Batch creation,
// booking updates, and dealer running totals commit in one transaction; the
// batch id comes from an atomic counter so concurrent assignments cannot
// collide.
func AssignToDealer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		DealerID   string             `json:"dealerId"`
		BookingIDs []string           `json:"bookingIds"`
		Amounts    map[string]float64 `json:"amounts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if body.DealerID == "" || len(body.BookingIDs) == 0 || body.Amounts == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Dealer ID, booking IDs, and amounts are required")
		return
	}

	totalBatchAmount := 0.0
	for _, bookingID := range body.BookingIDs {
		amount := body.Amounts[bookingID]
		if amount < 0 {
			utils.RespondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("Invalid amount for booking %s", bookingID))
			return
		}
		totalBatchAmount += amount
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var dealer models.Dealer
	if err := db.DealersCollection.FindOne(ctx, bson.M{"id": body.DealerID}).Decode(&dealer); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Dealer not found")
		return
	}

	session, err := db.Client.StartSession()
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		batchID, err := batches.NextBatchID(sc)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		batch := models.DealerBatch{
			ID:              utils.GetUUID(),
			DealerID:        body.DealerID,
			BatchID:         batchID,
			BookingIDs:      body.BookingIDs,
			TotalAmount:     totalBatchAmount,
			RemainingAmount: totalBatchAmount,
			Status:          models.BatchPendingPayment,
			Payments:        []models.BatchPayment{},
			AssignedAt:      now,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if _, err := db.DealerBatchCollection.InsertOne(sc, batch); err != nil {
			return nil, err
		}

		for _, bookingID := range body.BookingIDs {
			_, err := db.BookingsCollection.UpdateOne(sc,
				bson.M{"id": bookingID},
				bson.M{"$set": bson.M{
					"status":             models.StatusGivenToDealer,
					"assignedToDealerId": body.DealerID,
					"dealerBatchId":      batch.ID,
					"assignedToDealerAt": now,
					"dealerAmount":       body.Amounts[bookingID],
					"updatedAt":          now,
				}})
			if err != nil {
				return nil, err
			}
		}

		_, err = db.DealersCollection.UpdateOne(sc,
			bson.M{"id": body.DealerID},
			bson.M{"$inc": bson.M{
				"totalMobiles": len(body.BookingIDs),
				"totalAmount":  totalBatchAmount,
			}})
		if err != nil {
			return nil, err
		}

		return &batch, nil
	})
	if err != nil {
		log.Printf("AssignToDealer: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Mobiles assigned to dealer in a new batch successfully",
		"batch":   result.(*models.DealerBatch),
	})
}

// MarkUserPayment settles a booking's user payout from the inventory view.
func MarkUserPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booking, err := bookings.SettleUserPayment(ctx, ps.ByName("bookingId"), nil)
	if err != nil {
		bookings.RespondSettleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}
