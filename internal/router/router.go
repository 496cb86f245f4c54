package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"MonthlyMasti/config"
	"MonthlyMasti/internal/handler"
	"MonthlyMasti/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	if config.Cfg.OTelEnabled {
		h.Use(middleware.OpenTelemetryMiddleware())
	}

	// 旧版接口，方法检查在 handler 内做，保持裸响应格式
	api := h.Group("/api")
	{
		api.Any("/submit", middleware.AuthMiddleware(), middleware.SubmitRateLimitMiddleware(), handler.Submit)
		api.Any("/notify", handler.Notify)
		api.POST("/uploads", middleware.AuthMiddleware(), handler.Upload)
		api.GET("/dashboard", middleware.AuthMiddleware(), handler.Dashboard)
	}

	v1 := h.Group("/v1")

	// 认证相关路由
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware()) // 认证接口限流
	{
		auth.POST("/signup", handler.SignUp)
		auth.POST("/login", handler.SignIn)
		auth.GET("/oauth/:provider", handler.OAuthRedirect)
		auth.GET("/oauth/:provider/callback", handler.OAuthCallback)
		auth.POST("/token/refresh", handler.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(), handler.SignOut)
	}

	// 用户相关路由
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", handler.GetUserProfile)
	}
}
