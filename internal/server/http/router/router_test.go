package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"courierpay/internal/domain/model"
	"courierpay/internal/server/http/handlers"
	testhelpers "courierpay/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.LedgerFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{},
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			LastFn: func(context.Context, int64) (int64, error) {
				return 3, nil
			},
		},
		BalanceFacadeStub: testhelpers.BalanceFacadeStub{},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"login": "user", "password": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/last", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for last order, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/balance", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}
}

func TestSetupRoutesOrderFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	driverID := int64(3)
	facade := testhelpers.LedgerFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			AssignFn: func(ctx context.Context, callerID, orderID, dID int64) (*model.Order, error) {
				return &model.Order{ID: orderID, BuyerID: 2, DriverID: &dID}, nil
			},
		},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]int64{"driver_id": driverID})
	req := httptest.NewRequest(http.MethodPost, "/api/orders/0/assign", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for assign, got %d", resp.Code)
	}
}

var _ handlers.LedgerFacade = (*testhelpers.LedgerFacadeStub)(nil)
