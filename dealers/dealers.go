package dealers

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

// GetDealers lists all dealers.
func GetDealers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.DealersCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Printf("GetDealers: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	list := []models.Dealer{}
	if err := cur.All(ctx, &list); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func CreateDealer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var dealer models.Dealer
	if err := json.NewDecoder(r.Body).Decode(&dealer); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if dealer.Name == "" || dealer.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name and phone are required")
		return
	}

	now := time.Now()
	dealer.ID = utils.GetUUID()
	dealer.TotalMobiles = 0
	dealer.TotalAmount = 0
	dealer.PaidAmount = 0
	dealer.CreatedAt = now
	dealer.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.DealersCollection.InsertOne(ctx, dealer); err != nil {
		log.Printf("CreateDealer: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dealer)
}

// UpdateDealer edits contact fields; the running totals are only ever
// touched by batch assignment and payments.
func UpdateDealer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
		Email   *string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if body.Name != nil {
		set["name"] = *body.Name
	}
	if body.Phone != nil {
		set["phone"] = *body.Phone
	}
	if body.Address != nil {
		set["address"] = *body.Address
	}
	if body.Email != nil {
		set["email"] = *body.Email
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var dealer models.Dealer
	err := db.DealersCollection.FindOneAndUpdate(ctx,
		bson.M{"id": ps.ByName("id")},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&dealer)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Dealer not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dealer)
}

func DeleteDealer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.DealersCollection.DeleteOne(ctx, bson.M{"id": ps.ByName("id")})
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Dealer not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Dealer deleted successfully"})
}
