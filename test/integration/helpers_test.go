//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/quotes-service/internal/adapters/http"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/sqlite"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startService runs the full service stack over store on a loopback port
// and returns its base URL. The server stops when the test ends.
func startService(tb testing.TB, store ports.QuoteStore) string {
	tb.Helper()

	gin.SetMode(gin.TestMode)

	registry := ports.NewHealthRegistry()
	require.NoError(tb, registry.Register(store))

	service := app.NewQuoteService(app.QuoteServiceConfig{Repository: store, Logger: discard()})

	srv := httpadapter.New(&config.ServerConfig{
		Host:            "127.0.0.1",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		HandlerTimeout:  5 * time.Second,
		MaxRequestSize:  1 << 20,
	}, discard())

	httpadapter.SetupRouter(srv.Engine(), httpadapter.NewDefaultRouterConfig(
		discard(),
		"quotes-service",
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "", "")),
		handlers.NewQuoteHandler(service),
	))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(tb, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	tb.Cleanup(func() {
		cancel()
		require.NoError(tb, <-done)
		_ = store.Close()
	})

	return "http://" + ln.Addr().String()
}

func memoryService(tb testing.TB) string {
	tb.Helper()

	return startService(tb, memory.New())
}

func sqliteService(tb testing.TB) string {
	tb.Helper()

	repo, err := sqlite.Open(context.Background(), filepath.Join(tb.TempDir(), "quotes.db"))
	require.NoError(tb, err)

	return startService(tb, repo)
}

func clientConfig(baseURL string) *clients.Config {
	return &clients.Config{
		BaseURL:     baseURL,
		ServiceName: "quotes-api",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   50,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
		Logger: discard(),
	}
}

func quoteClient(tb testing.TB, baseURL string) *acl.QuoteClient {
	tb.Helper()

	client, err := clients.New(clientConfig(baseURL))
	require.NoError(tb, err)

	return acl.NewQuoteClient(acl.QuoteClientConfig{Client: client, Logger: discard()})
}
