package models

import "time"

type User struct {
	UserID    string    `json:"userid" bson:"userid"`
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"-" bson:"password"`
	Role      string    `json:"role" bson:"role"` // "user" or "admin"
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	LastLogin time.Time `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
}

type Card struct {
	ID             string    `json:"id" bson:"id"`
	UserID         string    `json:"userId" bson:"userId"`
	Alias          string    `json:"alias" bson:"alias"`
	BankName       string    `json:"bankName" bson:"bankName"`
	LastFour       string    `json:"lastFour" bson:"lastFour"`
	CardType       string    `json:"cardType" bson:"cardType"` // credit or debit
	IsActive       bool      `json:"isActive" bson:"isActive"`
	Limit          float64   `json:"limit" bson:"limit"`
	AvailableLimit float64   `json:"availableLimit" bson:"availableLimit"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Platform struct {
	ID           string    `json:"id" bson:"id"`
	UserID       string    `json:"userId" bson:"userId"`
	Name         string    `json:"name" bson:"name"`
	AccountAlias string    `json:"accountAlias" bson:"accountAlias"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Dealer struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Phone        string    `json:"phone" bson:"phone"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	TotalMobiles int       `json:"totalMobiles" bson:"totalMobiles"`
	TotalAmount  float64   `json:"totalAmount" bson:"totalAmount"`
	PaidAmount   float64   `json:"paidAmount" bson:"paidAmount"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
