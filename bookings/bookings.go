// Package bookings tracks a phone purchase through the resale pipeline:
// pending -> delivered -> given_to_admin -> given_to_dealer -> payment_done.
// Transitions are not enforced as a state machine; only the wallet-affecting
// settlement path is guarded.
package bookings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mobitrack/db"
	"mobitrack/models"
	"mobitrack/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ownerFilter scopes a query to the caller unless they are admin.
func ownerFilter(r *http.Request, base bson.M) bson.M {
	if !utils.IsAdmin(r) {
		base["userId"] = utils.GetUserIDFromRequest(r)
	}
	return base
}

// GetBookings lists bookings with pagination and filters. Admin sees all
// users' bookings, regular users only their own.
func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)

	filter := ownerFilter(r, bson.M{})
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.Platform != "" {
		filter["platform"] = opts.Platform
	}
	if opts.From != nil || opts.To != nil {
		dateRange := bson.M{}
		if opts.From != nil {
			dateRange["$gte"] = *opts.From
		}
		if opts.To != nil {
			dateRange["$lte"] = *opts.To
		}
		filter["bookingDate"] = dateRange
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	total, err := db.BookingsCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("GetBookings: count: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}

	cur, err := db.BookingsCollection.Find(ctx, filter, options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(opts.Skip()).
		SetLimit(int64(opts.Limit)))
	if err != nil {
		log.Printf("GetBookings: find: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	list := []models.Booking{}
	if err := cur.All(ctx, &list); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"bookings": list,
		"total":    total,
		"page":     opts.Page,
		"limit":    opts.Limit,
	})
}

// CreateBooking records a new purchase. The funding card's available limit
// drops by the booking price.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		BookingDate  time.Time `json:"bookingDate"`
		MobileModel  string    `json:"mobileModel"`
		BookingPrice float64   `json:"bookingPrice"`
		SellingPrice float64   `json:"sellingPrice"`
		Platform     string    `json:"platform"`
		Card         string    `json:"card"`
		Notes        string    `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if body.BookingDate.IsZero() || body.MobileModel == "" || body.Platform == "" || body.Card == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "bookingDate, mobileModel, bookingPrice, platform and card are required")
		return
	}
	if body.BookingPrice <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "bookingPrice must be a positive number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	booking := models.Booking{
		ID:           utils.GetUUID(),
		UserID:       utils.GetUserIDFromRequest(r),
		Username:     utils.GetUsernameFromRequest(r),
		BookingDate:  body.BookingDate,
		MobileModel:  body.MobileModel,
		BookingPrice: body.BookingPrice,
		SellingPrice: body.SellingPrice,
		Platform:     body.Platform,
		Card:         body.Card,
		Notes:        body.Notes,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := db.BookingsCollection.InsertOne(ctx, booking); err != nil {
		log.Printf("CreateBooking: insert: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}

	// Best-effort: the card's available limit is maintained incrementally,
	// mirrored back by the amountpay endpoint when the card is repaid.
	_, err := db.CardsCollection.UpdateOne(ctx,
		bson.M{"userId": booking.UserID, "alias": booking.Card},
		bson.M{"$inc": bson.M{"availableLimit": -body.BookingPrice}})
	if err != nil {
		log.Printf("CreateBooking: card limit update failed for alias %s: %v", booking.Card, err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

// UpdateStatus moves a booking to any of the five statuses. Reaching
// given_to_admin stamps the hand-over time.
func UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !models.IsValidBookingStatus(body.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	set := bson.M{"status": body.Status, "updatedAt": time.Now()}
	if body.Status == models.StatusGivenToAdmin {
		set["givenToAdminAt"] = time.Now()
	}

	var booking models.Booking
	err := db.BookingsCollection.FindOneAndUpdate(ctx,
		ownerFilter(r, bson.M{"id": ps.ByName("id")}),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}

// UpdateBooking applies the per-role field policy and updates the booking.
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	role := utils.GetRoleFromRequest(r)
	set := BuildUpdate(role, req)
	set["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := db.BookingsCollection.FindOneAndUpdate(ctx,
		ownerFilter(r, bson.M{"id": ps.ByName("id")}),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes a booking the caller may touch.
func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.BookingsCollection.DeleteOne(ctx, ownerFilter(r, bson.M{"id": ps.ByName("id")}))
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Booking deleted successfully"})
}
