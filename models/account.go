package models

import "time"

// Account roles.
const (
	RoleMusician = "musician"
	RoleCompany  = "company"
)

// Account represents a musician or company login.
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"` // "musician" or "company"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// AuthResponse is returned on successful signup/signin.
type AuthResponse struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}
