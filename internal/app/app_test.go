package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"courierpay/internal/config"
	"courierpay/internal/events"
	testhelpers "courierpay/internal/test"
)

func newTestBus() *events.Bus {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return events.NewBus(1, logger)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewAdministrator(t *testing.T) {
	participants := testhelpers.NewParticipantRepositoryStub()
	cfg := &config.Config{AdminLogin: "admin", AdminPassword: "secret"}

	admin, err := newAdministrator(administratorParams{
		Ctx:          context.Background(),
		Config:       cfg,
		Participants: participants,
		Hasher:       testhelpers.HasherStub{},
	})
	if err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if admin.ID != 1 {
		t.Fatalf("expected administrator id 1, got %d", admin.ID)
	}

	again, err := newAdministrator(administratorParams{
		Ctx:          context.Background(),
		Config:       cfg,
		Participants: participants,
		Hasher:       testhelpers.HasherStub{},
	})
	if err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	if again.ID != admin.ID {
		t.Fatalf("expected stable administrator id, got %d and %d", admin.ID, again.ID)
	}
}

func TestNewAdministratorHasherError(t *testing.T) {
	hashErr := errors.New("hash failed")
	_, err := newAdministrator(administratorParams{
		Ctx:          context.Background(),
		Config:       &config.Config{AdminLogin: "admin"},
		Participants: testhelpers.NewParticipantRepositoryStub(),
		Hasher:       testhelpers.HasherStub{HashFn: func(string) (string, error) { return "", hashErr }},
	})
	if !errors.Is(err, hashErr) {
		t.Fatalf("expected hasher error, got %v", err)
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Bus:        newTestBus(),
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	server := &http.Server{Addr: "bad addr"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Bus:        newTestBus(),
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}

func TestLifecycleRecorderAppend(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	recorder.Append(fx.Hook{})
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected hook to be appended")
	}
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}
