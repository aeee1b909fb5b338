package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	gwclient "sponsorhub-backend/internal/adapter/gateway"
	httpadp "sponsorhub-backend/internal/adapter/http"
	mw "sponsorhub-backend/internal/adapter/middleware"
	"sponsorhub-backend/internal/adapter/repository/mysql"
	"sponsorhub-backend/internal/config"
	"sponsorhub-backend/internal/infrastructure/cache"
	"sponsorhub-backend/internal/infrastructure/db"
	"sponsorhub-backend/internal/usecase/escrow"
	"sponsorhub-backend/internal/usecase/tnpl"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	payments := mysql.NewPaymentRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	obligations := mysql.NewObligationRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	gw := gwclient.NewClient(cfg.GatewayBaseURL, cfg.GatewayKey)

	escrowUC := escrow.NewUsecase(payments, gw, uow)
	escrowUC.EnableAutoRelease(cfg.AutoReleaseDelay)
	tnplUC := tnpl.NewUsecase(loans, obligations, uow)

	h := httpadp.NewHandler()
	ph := httpadp.NewPaymentHandler(escrowUC)
	th := httpadp.NewTNPLHandler(tnplUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/payments", ph.Initialize)
	e.POST("/payments/:payment_id/escrow", ph.MoveToEscrow)
	e.POST("/payments/:payment_id/release", ph.Release)
	e.POST("/payments/:payment_id/refund", ph.Refund)
	e.GET("/payments/:payment_id", ph.Get)
	e.GET("/payments", ph.List)

	e.POST("/loans", th.Apply)
	e.POST("/loans/:loan_id/review", th.Review)
	e.POST("/loans/:loan_id/contributions", th.Contribute)
	e.GET("/loans/:loan_id", th.GetLoan)
	e.GET("/loans", th.ListLoans)
	e.GET("/loans/:loan_id/schedule", th.Schedule)
	e.GET("/loans/:loan_id/contributions", th.Contributions)
	e.POST("/repayments/:obligation_id/complete", th.CompleteRepayment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
