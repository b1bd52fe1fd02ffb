package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MikhailRaia/shortlink/internal/config"
	"github.com/MikhailRaia/shortlink/internal/handler"
	"github.com/MikhailRaia/shortlink/internal/middleware"
	"github.com/MikhailRaia/shortlink/internal/proto"
	"github.com/MikhailRaia/shortlink/internal/service"
	"github.com/MikhailRaia/shortlink/internal/storage"
	"github.com/MikhailRaia/shortlink/internal/storage/file"
	"github.com/MikhailRaia/shortlink/internal/storage/memory"
	"github.com/MikhailRaia/shortlink/internal/storage/postgres"
	"github.com/MikhailRaia/shortlink/internal/storage/sqlite"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config     *config.Config
	store      *storage.URLStore
	handler    http.Handler
	httpServer *http.Server
	grpcServer *grpc.Server
}

// NewApp opens the configured backend, makes sure its schema exists and
// wires the HTTP and, when an address is configured, gRPC surfaces.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := storage.NewURLStore(backend,
		storage.WithCodeLength(cfg.CodeLength),
		storage.WithMaxRetries(cfg.MaxRetries),
		storage.WithReservedCodes(handler.ReservedPaths...),
	)

	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	urlService := service.NewURLService(store, cfg.BaseURL)
	httpHandler := handler.NewHandler(urlService).RegisterRoutes()

	a := &App{
		config:  cfg,
		store:   store,
		handler: httpHandler,
		httpServer: &http.Server{
			Addr:              cfg.ServerAddress,
			Handler:           httpHandler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	if cfg.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache(cfg.CertCacheDir),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(cfg.TLSHosts...),
		}
		a.httpServer.TLSConfig = manager.TLSConfig()
	}

	if cfg.GRPCAddress != "" {
		a.grpcServer = grpc.NewServer(
			grpc.ChainUnaryInterceptor(middleware.UnaryServerInterceptors(log.Logger)...),
		)
		proto.RegisterShortlinkServiceServer(a.grpcServer, handler.NewShortlinkGRPCServer(urlService))
	}

	return a, nil
}

func openBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch {
	case cfg.DatabaseDSN != "":
		log.Info().Msg("Using PostgreSQL storage")
		pg, err := postgres.NewStorage(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case cfg.FileStoragePath != "":
		log.Info().Str("path", cfg.FileStoragePath).Msg("Using file storage")
		return file.NewStorage(cfg.FileStoragePath), nil
	case cfg.SQLitePath != "":
		log.Info().Str("path", cfg.SQLitePath).Msg("Using SQLite storage")
		db, err := sqlite.NewStorage(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		log.Info().Msg("Using in-memory storage")
		return memory.NewStorage(), nil
	}
}

// Run serves until ctx is cancelled or a server fails, then shuts both
// servers down gracefully.
func (a *App) Run(ctx context.Context) error {
	var grpcListener net.Listener
	if a.grpcServer != nil {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return fmt.Errorf("error listening on gRPC address: %w", err)
		}
		grpcListener = lis
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().
			Str("address", a.config.ServerAddress).
			Str("base_url", a.config.BaseURL).
			Bool("https", a.config.EnableHTTPS).
			Msg("Starting HTTP server")

		var err error
		if a.config.EnableHTTPS {
			err = a.httpServer.ListenAndServeTLS("", "")
		} else {
			err = a.httpServer.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	if grpcListener != nil {
		g.Go(func() error {
			log.Info().Str("address", grpcListener.Addr().String()).Msg("Starting gRPC server")
			if err := a.grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if a.grpcServer != nil {
			a.grpcServer.GracefulStop()
		}
		return a.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.store.Close()
}
