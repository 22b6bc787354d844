package platforms

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

// GetPlatforms lists the caller's booking platforms.
func GetPlatforms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.PlatformsCollection.Find(ctx,
		bson.M{"userId": utils.GetUserIDFromRequest(r)},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Printf("GetPlatforms: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	defer cur.Close(ctx)

	list := []models.Platform{}
	if err := cur.All(ctx, &list); err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func CreatePlatform(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var platform models.Platform
	if err := json.NewDecoder(r.Body).Decode(&platform); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if platform.Name == "" || platform.AccountAlias == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name and accountAlias are required")
		return
	}

	now := time.Now()
	platform.ID = utils.GetUUID()
	platform.UserID = utils.GetUserIDFromRequest(r)
	platform.CreatedAt = now
	platform.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.PlatformsCollection.InsertOne(ctx, platform); err != nil {
		log.Printf("CreatePlatform: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, platform)
}

func UpdatePlatform(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Name         *string `json:"name"`
		AccountAlias *string `json:"accountAlias"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if body.Name != nil {
		set["name"] = *body.Name
	}
	if body.AccountAlias != nil {
		set["accountAlias"] = *body.AccountAlias
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var platform models.Platform
	err := db.PlatformsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": ps.ByName("id"), "userId": utils.GetUserIDFromRequest(r)},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&platform)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Platform not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, platform)
}

func DeletePlatform(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.PlatformsCollection.DeleteOne(ctx,
		bson.M{"id": ps.ByName("id"), "userId": utils.GetUserIDFromRequest(r)})
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Platform not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Platform deleted successfully"})
}
