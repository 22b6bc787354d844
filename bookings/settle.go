package bookings

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

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidPayout   = errors.New("invalid amount for user payment deduction")
)

// SettleUserPayment marks the booking's user payout as given and debits the
// admin wallet by the selling price, falling back to the booking price when
// no selling price is set. Booking update and wallet debit commit in one
// transaction.
func SettleUserPayment(ctx context.Context, bookingID string, sellingPrice *float64) (*models.Booking, error) {
	session, err := db.Client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var booking models.Booking
		if err := db.BookingsCollection.FindOne(sc, bson.M{"id": bookingID}).Decode(&booking); err != nil {
			return nil, ErrBookingNotFound
		}

		if sellingPrice != nil && *sellingPrice >= 0 {
			booking.SellingPrice = *sellingPrice
		} else if booking.SellingPrice == 0 {
			booking.SellingPrice = booking.BookingPrice
		}

		amountToDeduct := booking.SellingPrice
		if amountToDeduct == 0 {
			amountToDeduct = booking.BookingPrice
		}
		if amountToDeduct <= 0 {
			return nil, ErrInvalidPayout
		}

		now := time.Now()
		if err := db.BookingsCollection.FindOneAndUpdate(sc,
			bson.M{"id": booking.ID},
			bson.M{"$set": bson.M{
				"sellingPrice":     booking.SellingPrice,
				"userPaymentGiven": true,
				"userPaymentDate":  now,
				"status":           models.StatusPaymentDone,
				"updatedAt":        now,
			}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&booking); err != nil {
			return nil, err
		}

		ref := booking.BookingID
		if ref == "" {
			ref = booking.ID
		}
		if _, err := wallet.RecordTransaction(sc, models.WalletTransaction{
			Type:   models.TxnDebit,
			Amount: amountToDeduct,
			Description: fmt.Sprintf("Payment to user %s for mobile %s (Booking ID: %s)",
				booking.Username, booking.MobileModel, ref),
			RelatedBookingID: booking.ID,
		}); err != nil {
			return nil, err
		}

		return &booking, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Booking), nil
}

// RespondSettleError maps settlement errors onto the shared taxonomy.
func RespondSettleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrInvalidPayout):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount for user payment deduction.")
	default:
		log.Printf("SettleUserPayment: %v", err)
		utils.RespondWithServerError(w, err)
	}
}

// MarkUserPaid is the admin endpoint settling a booking's user payout, with
// an optional selling price override in the body.
func MarkUserPaid(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		SellingPrice *float64 `json:"sellingPrice"`
	}
	if r.Body != nil {
		// body is optional
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booking, err := SettleUserPayment(ctx, ps.ByName("id"), body.SellingPrice)
	if err != nil {
		RespondSettleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}
