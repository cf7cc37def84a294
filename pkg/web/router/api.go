package router

import (
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"gorm.io/gorm"

	"book-hub/pkg/common/config"
	bookdao "book-hub/pkg/core/book/repository/dao/impl"
	booksvc "book-hub/pkg/core/book/service"
	cartdao "book-hub/pkg/core/cart/repository/dao/impl"
	cartsvc "book-hub/pkg/core/cart/service"
	"book-hub/pkg/core/security"
	srdao "book-hub/pkg/core/servicerequest/repository/dao/impl"
	srsvc "book-hub/pkg/core/servicerequest/service"
	userdao "book-hub/pkg/core/user/repository/dao/impl"
	usersvc "book-hub/pkg/core/user/service"
	"book-hub/pkg/web/handler"
	"book-hub/pkg/web/middleware"
)

// RegisterAPIs 组装仓储、服务与 Handler 并注册所有路由
func RegisterAPIs(h *server.Hertz, cfg *config.Config, db *gorm.DB) error {
	jwtCfg := cfg.Middleware.JWT
	tokens, err := security.NewTokenManager(security.TokenConfig{
		Secret:        jwtCfg.Secret,
		Issuer:        jwtCfg.Issuer,
		SigningMethod: jwtCfg.SigningMethod,
		TTL:           jwtCfg.ExpireDuration,
	})
	if err != nil {
		return fmt.Errorf("init token manager: %w", err)
	}
	hasher := security.NewPasswordHasher(cfg.Middleware.Security.BcryptCost)
	hideInternal := cfg.IsProd()

	// 初始化Handler实例
	healthHandler := handler.NewHealthCheckHandler(db)
	userHandler := handler.NewUserHandler(
		usersvc.NewUserService(userdao.NewGormUserRepository(db), hasher, tokens), hideInternal)
	bookHandler := handler.NewBookHandler(
		booksvc.NewBookService(bookdao.NewGormBookRepository(db)), hideInternal)
	cartHandler := handler.NewCartHandler(
		cartsvc.NewCartService(cartdao.NewGormCartRepository(db)), hideInternal)
	srHandler := handler.NewServiceRequestHandler(
		srsvc.NewServiceRequestService(srdao.NewGormServiceRequestRepository(db)), hideInternal)

	// 注册全局中间件（按执行顺序）
	h.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(cfg),
		middleware.LoggerMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
	)

	// 基础接口
	h.GET("/", healthHandler.Welcome)
	h.GET("/health", healthHandler.AdvancedHealthCheck)
	h.GET(middleware.MetricsPath, middleware.MetricsHandler())

	authGroup := h.Group("/auth")
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/token", userHandler.Login)
		authGroup.GET("/me", userHandler.Me)
	}

	// 资源接口默认公开，开启 protectResources 后需要令牌
	var guard []app.HandlerFunc
	if jwtCfg.ProtectResources {
		mw, err := middleware.JWTAuthMiddleware(tokens, jwtCfg)
		if err != nil {
			return fmt.Errorf("init jwt middleware: %w", err)
		}
		guard = append(guard, mw)
	}

	bookGroup := h.Group("/books", guard...)
	{
		bookGroup.POST("/", bookHandler.Create)
		bookGroup.GET("/", bookHandler.List)
		bookGroup.GET("/:id", bookHandler.Get)
		bookGroup.PUT("/:id", bookHandler.Update)
		bookGroup.DELETE("/:id", bookHandler.Delete)
	}

	cartGroup := h.Group("/cart", guard...)
	{
		cartGroup.POST("/", cartHandler.Add)
		cartGroup.GET("/user/:user_id", cartHandler.ListByUser)
		cartGroup.DELETE("/user/:user_id/clear", cartHandler.Clear)
		cartGroup.GET("/:id", cartHandler.Get)
		cartGroup.PUT("/:id", cartHandler.Update)
		cartGroup.DELETE("/:id", cartHandler.Delete)
	}

	srGroup := h.Group("/service-requests", guard...)
	{
		srGroup.POST("/", srHandler.Create)
		srGroup.GET("/", srHandler.List)
		srGroup.GET("/:id", srHandler.Get)
		srGroup.PUT("/:id", srHandler.Update)
		srGroup.PATCH("/:id/status", srHandler.UpdateStatus)
		srGroup.DELETE("/:id", srHandler.Delete)
	}

	return nil
}
