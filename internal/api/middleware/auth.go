package middleware

import (
	"SocialMapp/internal/pkg/consts"
	"SocialMapp/internal/pkg/response"
	"SocialMapp/internal/service"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier 凭据校验能力, 由 security.Verifier 实现
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (service.Account, error)
}

// AuthMiddleware 负责验证凭据并将账号信息注入 Context
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		acct, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(consts.AccountIDKey, acct.ID)
		c.Set(consts.AccountEmailKey, acct.Email)

		newCtx := context.WithValue(c.Request.Context(), consts.AccountIDKey, acct.ID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// CurrentAccount 取出 AuthMiddleware 注入的账号
func CurrentAccount(c *gin.Context) service.Account {
	return service.Account{
		ID:    c.GetString(consts.AccountIDKey),
		Email: c.GetString(consts.AccountEmailKey),
	}
}
