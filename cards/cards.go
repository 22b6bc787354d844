package cards

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

// GetCards lists the caller's cards.
func GetCards(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.CardsCollection.Find(ctx,
		bson.M{"userId": utils.GetUserIDFromRequest(r)},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Printf("GetCards: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	list := []models.Card{}
	if err := cur.All(ctx, &list); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// CreateCard registers a payment card; availableLimit starts at the limit.
func CreateCard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var card models.Card
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if card.Alias == "" || card.BankName == "" || card.LastFour == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "alias, bankName and lastFour are required")
		return
	}
	if card.CardType != "credit" && card.CardType != "debit" {
		utils.RespondWithError(w, http.StatusBadRequest, "cardType must be credit or debit")
		return
	}

	now := time.Now()
	card.ID = utils.GetUUID()
	card.UserID = utils.GetUserIDFromRequest(r)
	card.IsActive = true
	if card.AvailableLimit == 0 {
		card.AvailableLimit = card.Limit
	}
	card.CreatedAt = now
	card.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.CardsCollection.InsertOne(ctx, card); err != nil {
		log.Printf("CreateCard: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, card)
}

// UpdateCard replaces the mutable fields of an owned card.
func UpdateCard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Alias    *string  `json:"alias"`
		BankName *string  `json:"bankName"`
		LastFour *string  `json:"lastFour"`
		CardType *string  `json:"cardType"`
		IsActive *bool    `json:"isActive"`
		Limit    *float64 `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if body.Alias != nil {
		set["alias"] = *body.Alias
	}
	if body.BankName != nil {
		set["bankName"] = *body.BankName
	}
	if body.LastFour != nil {
		set["lastFour"] = *body.LastFour
	}
	if body.CardType != nil {
		set["cardType"] = *body.CardType
	}
	if body.IsActive != nil {
		set["isActive"] = *body.IsActive
	}
	if body.Limit != nil {
		set["limit"] = *body.Limit
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var card models.Card
	err := db.CardsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": ps.ByName("id"), "userId": utils.GetUserIDFromRequest(r)},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&card)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Card not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, card)
}

// DeleteCard removes an owned card.
func DeleteCard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.CardsCollection.DeleteOne(ctx,
		bson.M{"id": ps.ByName("id"), "userId": utils.GetUserIDFromRequest(r)})
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Card not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Card deleted successfully"})
}

// AmountPay raises the card's available limit, e.g. after paying a bill.
func AmountPay(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		ID     string  `json:"id"`
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var card models.Card
	err := db.CardsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": body.ID, "userId": utils.GetUserIDFromRequest(r)},
		bson.M{
			"$inc": bson.M{"availableLimit": body.Amount},
			"$set": bson.M{"updatedAt": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&card)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Card not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":        "Available limit updated",
		"availableLimit": card.AvailableLimit,
	})
}
