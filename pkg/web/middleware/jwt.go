package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"

	"book-hub/pkg/common/config"
	"book-hub/pkg/core/security"
)

// IdentityKey 守卫通过后 c.Get(IdentityKey) 为令牌主体（邮箱）
const IdentityKey = "sub"

// JWTAuthMiddleware 只校验 /auth/token 签发的令牌，不负责登录
func JWTAuthMiddleware(tokens *security.TokenManager, cfg config.JWTAuthConfig) (app.HandlerFunc, error) {
	authMiddleware, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:            cfg.Realm,
		SigningAlgorithm: tokens.Algorithm(),
		Key:              tokens.Key(),
		Timeout:          cfg.ExpireDuration,
		TokenLookup:      "header: Authorization",
		TokenHeadName:    "Bearer",
		TimeFunc:         time.Now,
		IdentityKey:      IdentityKey,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			sub, _ := jwt.ExtractClaims(ctx, c)[IdentityKey].(string)
			return sub
		},
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			sub, _ := data.(string)
			iss, _ := jwt.ExtractClaims(ctx, c)["iss"].(string)
			return sub != "" && iss == tokens.Issuer()
		},
		Unauthorized: handleJWTError,
	})
	if err != nil {
		return nil, err
	}
	return authMiddleware.MiddlewareFunc(), nil
}

func handleJWTError(ctx context.Context, c *app.RequestContext, code int, message string) {
	hlog.CtxDebugf(ctx, "JWT rejected (code=%d) path=%s: %s", code, c.Path(), message)
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, map[string]string{
		"detail": "Could not validate credentials",
	})
}
