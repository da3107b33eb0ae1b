package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims represents the claims carried by a verified identity token.
// Email is the stable owner key for every stored record; Name is a display
// convenience only and never participates in scoping.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}
