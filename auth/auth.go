package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mobitrack/db"
	"mobitrack/globals"
	"mobitrack/middleware"
	"mobitrack/models"
	"mobitrack/rdx"
	"mobitrack/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := db.UserCollection.CountDocuments(ctx, bson.M{"username": input.Username})
	if err != nil {
		log.Printf("Register: count failed: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}

	role := "user"
	if input.Role == "admin" {
		role = "admin"
	}

	now := time.Now()
	user := models.User{
		UserID:    utils.GetUUID(),
		Username:  input.Username,
		Password:  string(hash),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		log.Printf("Register: insert failed: %v", err)
		utils.RespondWithServerError(w, err)
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"token": token,
		"user":  utils.M{"id": user.UserID, "username": user.Username, "role": user.Role},
	})
}

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"username": input.Username}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithServerError(w, err)
		return
	}

	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{"lastLogin": time.Now()}},
	)
	if err != nil {
		log.Printf("Login: lastLogin update failed for %s: %v", user.UserID, err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token": token,
		"user":  utils.M{"id": user.UserID, "username": user.Username, "role": user.Role},
	})
}

func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tokenString := r.Header.Get("Authorization")
	if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing token")
		return
	}
	if err := rdx.RevokeToken(tokenString[7:], tokenTTL); err != nil {
		log.Printf("Logout: revoke failed: %v", err)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Logged out"})
}

func generateToken(user models.User) (string, error) {
	claims := middleware.Claims{
		Username: user.Username,
		UserID:   user.UserID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
