package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	httpadp "lively-marketplace/internal/adapter/http"
	"lively-marketplace/internal/adapter/middleware"
	"lively-marketplace/internal/adapter/repository/mysql"
	"lively-marketplace/internal/config"
	"lively-marketplace/internal/domain/listing"
	"lively-marketplace/internal/domain/order"
	"lively-marketplace/internal/domain/payout"
	"lively-marketplace/internal/domain/product"
	"lively-marketplace/internal/domain/user"
	"lively-marketplace/internal/infrastructure/cache"
	"lively-marketplace/internal/infrastructure/db"
	adminUC "lively-marketplace/internal/usecase/admin"
	authUC "lively-marketplace/internal/usecase/auth"
	debtUC "lively-marketplace/internal/usecase/debt"
	marketUC "lively-marketplace/internal/usecase/market"
	walletUC "lively-marketplace/internal/usecase/wallet"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		zlog.Fatal().Err(err).Msg("invalid config")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		zlog.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to open database")
	}
	if err := gdb.AutoMigrate(
		&user.User{}, &product.Product{}, &order.Order{},
		&listing.Listing{}, &listing.Position{}, &payout.Request{},
	); err != nil {
		zlog.Fatal().Err(err).Msg("migration failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to open redis")
	}

	users := mysql.NewUserRepository(gdb)
	products := mysql.NewProductRepository(gdb)
	orders := mysql.NewOrderRepository(gdb)
	listings := mysql.NewListingRepository(gdb)
	positions := mysql.NewPositionRepository(gdb)
	payouts := mysql.NewPayoutRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	auth := authUC.NewUsecase(users, cfg.JWTSecret)
	wallet := walletUC.NewUsecase(users, guow)
	market := marketUC.NewUsecase(products, orders, users, guow, cfg.CommissionPct)
	debt := debtUC.NewUsecase(listings, positions, users, guow, cfg.CommissionPct)
	admin := adminUC.NewUsecase(users, payouts, guow)

	if err := auth.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		zlog.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(auth)
	walletH := httpadp.NewWalletHandler(wallet)
	productH := httpadp.NewProductHandler(market)
	debtH := httpadp.NewDebtHandler(debt)
	adminH := httpadp.NewAdminHandler(admin)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.POST("/register", authH.Register)
	e.POST("/login", authH.Login)

	// external payment confirmations, deduplicated per event id
	e.POST("/webhooks/payment", walletH.PaymentWebhook,
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	api := e.Group("", middleware.JWTAuth(cfg.JWTSecret))
	api.GET("/wallet", walletH.Balance)
	api.POST("/wallet/topup", walletH.TopUp)
	api.POST("/wallet/payouts", walletH.RequestPayout)

	api.GET("/products", productH.List)
	api.POST("/products", productH.Create)
	api.GET("/products/:product_id", productH.Get)
	api.POST("/products/:product_id/buy", productH.Buy)
	api.GET("/orders", productH.Orders)

	api.GET("/debts", debtH.List)
	api.POST("/debts", debtH.Create)
	api.GET("/debts/:listing_id", debtH.Get)
	api.POST("/debts/:listing_id/invest", debtH.Invest)
	api.GET("/positions", debtH.Positions)

	api.GET("/admin/users", adminH.ListUsers)
	api.GET("/admin/payouts", adminH.ListPendingPayouts)
	api.POST("/admin/payouts/:payout_id/pay", adminH.MarkPayoutPaid)

	addr := ":" + cfg.AppPort
	zlog.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		zlog.Fatal().Err(err).Msg("server stopped")
	}
}
