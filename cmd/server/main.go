package main

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"penjualan_admin/internal/config"
	"penjualan_admin/internal/handler"
	"penjualan_admin/internal/logger"
	"penjualan_admin/internal/middleware"
	"penjualan_admin/internal/repository"
	"penjualan_admin/internal/service"
	"penjualan_admin/internal/utils"
	"penjualan_admin/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Info("loaded %s", cfg)

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	if err := utils.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register form validators: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.Session.Secret, cfg.Session.ExpirationHours)
	flashStore := utils.NewFlashStore(cfg.Session.Secret, cfg.Session.CookieSecure)

	// --- Initialize Repositories ---
	apiClient := repository.NewAPIClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	productRepo := repository.NewProductRepository(apiClient)
	userRepo := repository.NewUserRepository(apiClient)
	adminRepo := repository.NewAdminRepository(apiClient)

	// --- Initialize Services ---
	authService := service.NewAuthService(adminRepo, jwtUtil)
	productService := service.NewProductService(productRepo, cfg.Backend.ImageBaseURL)
	userService := service.NewUserService(userRepo)

	// --- Initialize Handlers ---
	view := handler.NewView(flashStore)
	authHandler := handler.NewAuthHandler(authService, jwtUtil, view, cfg.Session.CookieSecure)
	productHandler := handler.NewProductHandler(productService, view, cfg.UI.DefaultPageSize)
	userHandler := handler.NewUserHandler(userService, view, cfg.UI.DefaultPageSize)
	healthHandler := handler.NewHealthHandler(productService, cfg.Backend.Timeout)

	// --- Initialize Middlewares ---
	sessionMW := middleware.SessionAuthMiddleware(jwtUtil, flashStore)
	adminRoleMW := middleware.AdminMiddleware()

	// --- Setup Gin Router ---
	tmpl, err := web.LoadTemplates()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	router := newRouter(tmpl, routes{
		auth:     authHandler,
		products: productHandler,
		users:    userHandler,
		health:   healthHandler,
		session:  sessionMW,
		admin:    adminRoleMW,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s, backend %s", cfg.Server.Port, cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

// routes bundles what newRouter mounts
type routes struct {
	auth     *handler.AuthHandler
	products *handler.ProductHandler
	users    *handler.UserHandler
	health   *handler.HealthHandler
	session  gin.HandlerFunc
	admin    gin.HandlerFunc
}

// newRouter builds the engine; RequestID runs ahead of every route, static files included
func newRouter(tmpl *template.Template, r routes) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", web.Static())

	root := router.Group("")
	r.auth.RegisterAuthRoutes(root)
	r.products.RegisterProductRoutes(root, r.session, r.admin)
	r.users.RegisterUserRoutes(root, r.session, r.admin)
	r.health.RegisterHealthRoutes(root)
	return router
}
