package main

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"book-hub/pkg/common/config"
	"book-hub/pkg/core/store"
	"book-hub/pkg/web/router"
)

func main() {
	// 初始化配置
	cfg := config.Load()
	hlog.SetLevel(cfg.HlogLevel())

	// 初始化数据库连接
	db, err := cfg.InitDB()
	if err != nil {
		hlog.Fatalf("Failed to initialize database: %v", err)
	}

	// 启动时建表
	if err := store.AutoMigrate(db); err != nil {
		hlog.Fatalf("Failed to migrate schema: %v", err)
	}

	// 创建Hertz实例
	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(int(cfg.Middleware.Security.MaxBodySize)),
	)
	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		if err := store.Close(db); err != nil {
			hlog.CtxErrorf(ctx, "close database: %v", err)
		}
	})

	// 注册路由
	if err := router.RegisterAPIs(h, cfg, db); err != nil {
		hlog.Fatalf("Failed to register routes: %v", err)
	}

	hlog.Infof("book-hub listening on %s (env=%s, driver=%s)", cfg.Server.Address, cfg.Env, cfg.Database.Driver)
	// 启动服务
	h.Spin()
}
