package bookings

import (
	"context"
	"encoding/csv"
	"fmt"
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

var exportHeader = []string{
	"id", "user", "bookingDate", "mobileModel", "bookingPrice", "sellingPrice",
	"platform", "card", "dealer", "status", "userPaymentGiven", "createdAt",
}

// ExportRow flattens a booking for CSV output.
func ExportRow(b models.Booking) []string {
	return []string{
		b.ID,
		b.Username,
		b.BookingDate.Format("2006-01-02"),
		b.MobileModel,
		fmt.Sprintf("%.2f", b.BookingPrice),
		fmt.Sprintf("%.2f", b.SellingPrice),
		b.Platform,
		b.Card,
		b.Dealer,
		b.Status,
		fmt.Sprintf("%t", b.UserPaymentGiven),
		b.CreatedAt.Format(time.RFC3339),
	}
}

// ExportBookings streams bookings in a date range as CSV, or JSON with
// ?format=json. Role scoping matches the list endpoint.
func ExportBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)

	filter := ownerFilter(r, bson.M{})
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

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"bookingDate": 1}))
	if err != nil {
		log.Printf("ExportBookings: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	list := []models.Booking{}
	if err := cur.All(ctx, &list); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "json" {
		utils.RespondWithJSON(w, http.StatusOK, list)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		log.Printf("ExportBookings: csv write: %v", err)
		return
	}
	for _, b := range list {
		if err := cw.Write(ExportRow(b)); err != nil {
			log.Printf("ExportBookings: csv write: %v", err)
			return
		}
	}
	cw.Flush()
}
