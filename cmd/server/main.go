package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/folio/backend/internal/config"
	"github.com/folio/backend/internal/docstore"
	"github.com/folio/backend/internal/handler"
	"github.com/folio/backend/internal/logging"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/pkg/mailer"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	pool, err := docstore.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to document store", "error", err)
	}
	defer pool.Close()

	store := docstore.NewPgStore(pool)

	// Missing mail credentials degrade gracefully: submissions are still
	// saved, only the operator notification is skipped.
	var m mailer.Mailer
	if cfg.MailerConfigured() {
		m = mailer.NewSendGrid(cfg.SendGridAPIKey, cfg.ContactSender)
	} else {
		slog.Warn("mail transport not configured; contact notifications disabled")
	}

	contactPath := docstore.CollectionPath(cfg.Namespace, docstore.ContactCollection)
	portfolioPath := docstore.CollectionPath(cfg.Namespace, docstore.PortfolioCollection)

	contactService := service.NewContactService(store, m, contactPath, cfg.ContactRecipient)
	portfolioService := service.NewPortfolioService(store, portfolioPath)

	h := handler.New(store, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService, cfg.AdminToken)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)

	contactLimiter := handler.NewRateLimiter(cfg.ContactRatePerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/portfolio", portfolioHandler.List)
	mux.Handle("POST /api/contact", contactLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.HandleFunc("GET /api/admin/contacts", contactHandler.AdminList)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
