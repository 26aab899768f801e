package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 凭据中携带的账号信息
type UserClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
