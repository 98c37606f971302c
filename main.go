package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gin-bookstore/config"
	"gin-bookstore/constants"
	"gin-bookstore/controllers"
	"gin-bookstore/infra"
	"gin-bookstore/middlewares"
	"gin-bookstore/repositories"
	"gin-bookstore/services"
	"gin-bookstore/sessions"
)

func setupRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *gin.Engine {
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessionStore := sessions.NewRedisSessionStore(redisClient, sessionTTL)

	authRepository := repositories.NewAuthRepository(db)
	bookRepository := repositories.NewBookRepository(db)
	memberRepository := repositories.NewMemberRepository(db)
	orderRepository := repositories.NewOrderRepository(db)

	authService := services.NewAuthService(authRepository)
	bookService := services.NewBookService(bookRepository)
	memberService := services.NewMemberService(memberRepository)
	cartService := services.NewCartService(bookRepository)
	checkoutService := services.NewCheckoutService(bookRepository, orderRepository, memberRepository)
	orderService := services.NewOrderService(orderRepository)

	authController := controllers.NewAuthController(authService, sessionStore, cfg.SessionSecret, sessionTTL)
	bookController := controllers.NewBookController(bookService, memberService)
	memberController := controllers.NewMemberController(memberService)
	cartController := controllers.NewCartController(cartService, bookService, sessionStore)
	checkoutController := controllers.NewCheckoutController(checkoutService, orderService, sessionStore)
	adminController := controllers.NewAdminController(bookService, authService, memberService, orderService)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.SessionMiddleware(sessionStore, cfg.SessionSecret))
	r.LoadHTMLGlob("templates/*.html")

	r.GET("/", bookController.Home)
	r.GET("/register", authController.ShowRegister)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	userRouter := r.Group("", middlewares.RequireRole(constants.RoleUser))
	userRouter.GET("/member/register", memberController.ShowRegister)
	userRouter.POST("/member/register", memberController.Register)
	userRouter.GET("/add_to_cart/:bookId", cartController.AddToCart)
	userRouter.GET("/cart", cartController.ViewCart)
	userRouter.GET("/checkout", checkoutController.Review)
	userRouter.POST("/checkout", checkoutController.Submit)
	userRouter.GET("/orders", checkoutController.Orders)

	adminRouter := r.Group("/admin", middlewares.RequireRole(constants.RoleAdmin))
	adminRouter.GET("/books", adminController.Books)
	adminRouter.POST("/books", adminController.CreateBook)
	adminRouter.GET("/users", adminController.Users)
	adminRouter.GET("/members", adminController.Members)
	adminRouter.GET("/orders", adminController.Orders)
	adminRouter.GET("/orders/:orderId", adminController.OrderDetails)

	return r
}

func main() {
	cfg := config.LoadConfig()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	db := infra.SetupDB(cfg)
	if cfg.AutoMigrate {
		if err := infra.Migrate(db); err != nil {
			logrus.Fatalf("failed to migrate database: %v", err)
		}
	}

	redisClient := infra.SetupRedis(cfg)

	r := setupRouter(cfg, db, redisClient)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server exited")
}
