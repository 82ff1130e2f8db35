// Package app wires configuration, adapters, services, and the HTTP
// transport into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/aivocab-backend/internal/adapter/firestore"
	bookmarkrepo "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore/bookmark"
	dictionaryrepo "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore/dictionary"
	userrepo "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore/user"
	wordbookrepo "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore/wordbook"
	wordcardrepo "github.com/heartmarshall/aivocab-backend/internal/adapter/firestore/wordcard"
	"github.com/heartmarshall/aivocab-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/aivocab-backend/internal/adapter/provider/firebaseauth"
	"github.com/heartmarshall/aivocab-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/aivocab-backend/internal/config"
	bookmarksvc "github.com/heartmarshall/aivocab-backend/internal/service/bookmark"
	usersvc "github.com/heartmarshall/aivocab-backend/internal/service/user"
	wordsvc "github.com/heartmarshall/aivocab-backend/internal/service/word"
	wordbooksvc "github.com/heartmarshall/aivocab-backend/internal/service/wordbook"
	"github.com/heartmarshall/aivocab-backend/internal/transport/middleware"
	"github.com/heartmarshall/aivocab-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// dependency graph, starts the HTTP server, and blocks until the context is
// cancelled or the server fails.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	client, err := firestore.NewClient(ctx, cfg.Firestore)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	verifier, err := firebaseauth.NewVerifier(ctx, cfg.Firestore, logger)
	if err != nil {
		return err
	}

	// Repositories.
	txManager := firestore.NewTxManager(client)
	dictRepo := dictionaryrepo.New(client, cfg.Dictionary.Collection)
	wordbookRepo := wordbookrepo.New(client)
	cardRepo := wordcardrepo.New(client)
	bookmarkRepo := bookmarkrepo.New(client)
	userRepo := userrepo.New(client)

	// Providers.
	liveDict := freedict.NewProvider(cfg.Dictionary, logger)
	generator := claude.NewGenerator(cfg.LLM, logger)

	// Services.
	wordService := wordsvc.NewService(logger, dictRepo, liveDict, generator, cardRepo, wordbookRepo, txManager)
	wordbookService := wordbooksvc.NewService(logger, wordbookRepo, cardRepo, userRepo, txManager)
	bookmarkService := bookmarksvc.NewService(logger, bookmarkRepo, cardRepo, wordbookRepo)
	userService := usersvc.NewService(logger, userRepo)

	// Transport.
	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(firestore.NewPinger(client), BuildVersion()),
		Words:     rest.NewWordHandler(wordService, logger),
		Wordbooks: rest.NewWordbookHandler(wordbookService, logger),
		Bookmarks: rest.NewBookmarkHandler(bookmarkService, logger),
		Users:     rest.NewUserHandler(userService, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimit),
		middleware.Auth(verifier),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
