package inventory

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mobitrack/db"
	"mobitrack/models"
	"mobitrack/rdx"
	"mobitrack/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const statsCacheTTL = 30 * time.Second

// GetStats returns dashboard counts, role-dependent, cached briefly in Redis.
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	isAdmin := utils.IsAdmin(r)

	cacheKey := "stats:user:" + userID
	if isAdmin {
		cacheKey = "stats:admin"
	}
	if cached := rdx.RdxGet(cacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var stats map[string]int64
	var err error
	if isAdmin {
		stats, err = adminStats(ctx)
	} else {
		stats, err = userStats(ctx, userID)
	}
	if err != nil {
		log.Printf("GetStats: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}

	if buf, err := json.Marshal(stats); err == nil {
		if err := rdx.RdxSet(cacheKey, string(buf), statsCacheTTL); err != nil {
			log.Printf("GetStats: cache set failed: %v", err)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

func adminStats(ctx context.Context) (map[string]int64, error) {
	totalBookings, err := db.BookingsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	delivered, err := db.BookingsCollection.CountDocuments(ctx, bson.M{"status": models.StatusDelivered})
	if err != nil {
		return nil, err
	}
	withAdmin, err := db.BookingsCollection.CountDocuments(ctx, bson.M{"status": models.StatusGivenToAdmin})
	if err != nil {
		return nil, err
	}
	withDealers, err := db.BookingsCollection.CountDocuments(ctx, bson.M{"status": models.StatusGivenToDealer})
	if err != nil {
		return nil, err
	}
	dealerPaymentPending, err := db.DealerBatchCollection.CountDocuments(ctx,
		bson.M{"status": bson.M{"$ne": models.BatchCompletedPayment}})
	if err != nil {
		return nil, err
	}
	userPaymentPending, err := db.BookingsCollection.CountDocuments(ctx,
		bson.M{"dealerPaymentReceived": true, "userPaymentGiven": false})
	if err != nil {
		return nil, err
	}

	return map[string]int64{
		"totalBookings":            totalBookings,
		"mobilesDelivered":         delivered,
		"mobilesWithAdmin":         withAdmin,
		"mobilesAssignedToDealers": withDealers,
		"dealerPaymentPending":     dealerPaymentPending,
		"userPaymentPending":       userPaymentPending,
	}, nil
}

func userStats(ctx context.Context, userID string) (map[string]int64, error) {
	own := bson.M{"userId": userID}
	totalBookings, err := db.BookingsCollection.CountDocuments(ctx, own)
	if err != nil {
		return nil, err
	}
	delivered, err := db.BookingsCollection.CountDocuments(ctx,
		bson.M{"userId": userID, "status": models.StatusDelivered})
	if err != nil {
		return nil, err
	}
	givenToAdmin, err := db.BookingsCollection.CountDocuments(ctx,
		bson.M{"userId": userID, "status": models.StatusGivenToAdmin})
	if err != nil {
		return nil, err
	}
	withDealers, err := db.BookingsCollection.CountDocuments(ctx,
		bson.M{"userId": userID, "status": models.StatusGivenToDealer})
	if err != nil {
		return nil, err
	}
	paymentPending, err := db.BookingsCollection.CountDocuments(ctx,
		bson.M{"userId": userID, "dealerPaymentReceived": true, "userPaymentGiven": false})
	if err != nil {
		return nil, err
	}

	return map[string]int64{
		"totalBookings":            totalBookings,
		"mobilesDelivered":         delivered,
		"mobilesGivenToAdmin":      givenToAdmin,
		"mobilesAssignedToDealers": withDealers,
		"paymentPending":           paymentPending,
	}, nil
}
