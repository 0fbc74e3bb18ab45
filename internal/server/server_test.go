package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/repositories/memory"
	"github.com/cohort-tools/api/internal/bootstrap"
	"github.com/cohort-tools/api/internal/config"
)

func newTestServer(port string) *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.Port = port
	cfg.Database.Driver = config.DriverMemory
	return &Server{
		config: cfg,
		router: gin.New(),
		store:  &bootstrap.Store{Repos: memory.NewRepositories()},
		logger: zerolog.Nop(),
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	srv := newTestServer("0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := srv.serve(ctx); err != nil {
		t.Fatalf("serve: %v", err)
	}
}

func TestServeReportsListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	if err := newTestServer(port).serve(context.Background()); err == nil {
		t.Fatal("expected an error for a port in use")
	}
}

func TestShutdownWithoutListener(t *testing.T) {
	srv := newTestServer("0")
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	srv.http = &http.Server{}
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown of idle server: %v", err)
	}
}
