package security

import (
	"SocialMapp/internal/service"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RevocationStore 已吊销凭据列表, 为 nil 时不检查也不支持吊销
type RevocationStore interface {
	IsRevoked(ctx context.Context, signature string) (bool, error)
	Revoke(ctx context.Context, signature string, ttl time.Duration) error
}

var ErrRevocationDisabled = errors.New("token revocation is not configured")

// Verifier 校验 HS256 凭据并还原调用方账号
type Verifier struct {
	secret      []byte
	issuer      string
	revocations RevocationStore
}

func NewVerifier(secret, issuer string, revocations RevocationStore) *Verifier {
	return &Verifier{
		secret:      []byte(secret),
		issuer:      issuer,
		revocations: revocations,
	}
}

// GenerateToken 签发凭据, 供运维脚本和测试使用
func (v *Verifier) GenerateToken(uid, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UID:   uid,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    v.issuer,
			Subject:   uid,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("签名 Token 失败: %w", err)
	}
	return tokenString, nil
}

// Verify 解析凭据, 过期返回 ErrExpiredCredential, 其余失败返回 ErrUnauthenticated
func (v *Verifier) Verify(ctx context.Context, tokenString string) (service.Account, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return service.Account{}, service.ErrExpiredCredential
		}
		return service.Account{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, err)
	}
	if !token.Valid || claims.UID == "" {
		return service.Account{}, service.ErrUnauthenticated
	}

	if v.revocations != nil {
		signature, err := ExtractSignature(tokenString)
		if err != nil {
			return service.Account{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, err)
		}
		revoked, err := v.revocations.IsRevoked(ctx, signature)
		if err != nil {
			return service.Account{}, fmt.Errorf("%w: %w", service.ErrDependency, err)
		}
		if revoked {
			return service.Account{}, fmt.Errorf("%w: token revoked", service.ErrUnauthenticated)
		}
	}

	return service.Account{ID: claims.UID, Email: claims.Email}, nil
}

// Revoke 吊销一个有效凭据, 记录保留到凭据自然过期
func (v *Verifier) Revoke(ctx context.Context, tokenString string) error {
	if v.revocations == nil {
		return fmt.Errorf("%w: %w", service.ErrDependency, ErrRevocationDisabled)
	}

	claims := &UserClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrUnauthenticated, err)
	}

	signature, err := ExtractSignature(tokenString)
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrUnauthenticated, err)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err = v.revocations.Revoke(ctx, signature, ttl); err != nil {
		return fmt.Errorf("%w: %w", service.ErrDependency, err)
	}
	return nil
}

// ExtractSignature 从 Token 字符串中提取签名
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.New("token 格式不正确")
	}
	return parts[2], nil
}
