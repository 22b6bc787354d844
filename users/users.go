package users

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

type userWithStats struct {
	models.User  `bson:",inline"`
	BookingCount int64   `json:"bookingCount" bson:"bookingCount"`
	TotalAmount  float64 `json:"totalAmount" bson:"totalAmount"`
}

// GetUsers lists all users with their booking count and total booking spend.
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cur, err := db.UserCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Printf("GetUsers: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	list := []models.User{}
	if err := cur.All(ctx, &list); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}

	out := make([]userWithStats, 0, len(list))
	for _, u := range list {
		stats := userWithStats{User: u}

		stats.BookingCount, err = db.BookingsCollection.CountDocuments(ctx, bson.M{"userId": u.UserID})
		if err != nil {
			utils.RespondWithServerError(w, err)
			return
		}

		agg, err := db.BookingsCollection.Aggregate(ctx, []bson.M{
			{"$match": bson.M{"userId": u.UserID}},
			{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$bookingPrice"}}},
		})
		if err != nil {
			utils.RespondWithServerError(w, err)
			return
		}
		var totals []struct {
			Total float64 `bson:"total"`
		}
		if err := agg.All(ctx, &totals); err == nil && len(totals) > 0 {
			stats.TotalAmount = totals[0].Total
		}

		out = append(out, stats)
	}

	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetUser returns one user plus their bookings.
func GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": ps.ByName("id")}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	cur, err := db.BookingsCollection.Find(ctx,
		bson.M{"userId": user.UserID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	list := []models.Booking{}
	if err := cur.All(ctx, &list); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": user, "bookings": list})
}

// UpdateUser edits username and role.
func UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Username *string `json:"username"`
		Role     *string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if body.Username != nil {
		set["username"] = *body.Username
	}
	if body.Role != nil {
		if *body.Role != "user" && *body.Role != "admin" {
			utils.RespondWithError(w, http.StatusBadRequest, "role must be user or admin")
			return
		}
		set["role"] = *body.Role
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": ps.ByName("id")},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// DeleteUser removes a user and cascades to their bookings.
func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.UserCollection.DeleteOne(ctx, bson.M{"userid": ps.ByName("id")})
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	if _, err := db.BookingsCollection.DeleteMany(ctx, bson.M{"userId": ps.ByName("id")}); err != nil {
		log.Printf("DeleteUser: cascading booking delete failed for %s: %v", ps.ByName("id"), err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "User and associated bookings deleted successfully"})
}
