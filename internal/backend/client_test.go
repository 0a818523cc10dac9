package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zahkklm/FinRiskDetector/internal/config"
	"github.com/Zahkklm/FinRiskDetector/internal/logger"
	"github.com/Zahkklm/FinRiskDetector/internal/model"
)

type nopLogger struct{}

func (nopLogger) With(args ...interface{}) logger.Logger { return nopLogger{} }
func (nopLogger) Debugf(template string, args ...interface{}) {}
func (nopLogger) Infof(template string, args ...interface{}) {}
func (nopLogger) Warnf(template string, args ...interface{}) {}
func (nopLogger) Errorf(template string, args ...interface{}) {}
func (nopLogger) Fatalf(template string, args ...interface{}) {}
func (nopLogger) Sync() error { return nil }

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.BackendConfig{Address: srv.URL}
	if err := cfg.Setup(); err != nil {
		t.Fatalf("can't setup backend cfg: %s", err)
	}

	client := NewClient(cfg, nopLogger{})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestFetchPrices(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/market/prices" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(model.Snapshot{
			"BTC-USD": {Symbol: "BTC-USD", Price: 20000, Volume: 123},
		})
	}))

	snapshot, err := client.FetchPrices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if snapshot["BTC-USD"].Price != 20000 {
		t.Errorf("unexpected snapshot: %+v", snapshot)
	}
}

func TestFetchPortfolioRemoteError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown user", http.StatusNotFound)
	}))

	_, err := client.FetchPortfolio(context.Background(), "nobody")

	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.Op != "fetch portfolio" {
		t.Errorf("unexpected op: %s", remoteErr.Op)
	}
}

func TestSubmitOrderPostsRequestBody(t *testing.T) {
	var got model.OrderRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/market/order" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("can't decode body: %s", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"filled"}`))
	}))

	req := model.OrderRequest{
		UserID:   "user123",
		Symbol:   "BTC-USD",
		Side:     model.Buy,
		Quantity: 1.5,
		Price:    100,
		Type:     model.Market,
	}
	result, err := client.SubmitOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !result.Success || result.Message != "filled" {
		t.Errorf("unexpected result: %+v", result)
	}
	if got != req {
		t.Errorf("backend saw %+v, want %+v", got, req)
	}
}

func TestCancelOrderRoute(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/market/order/user123/ord-1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"cancelled"}`))
	}))

	result, err := client.CancelOrder(context.Background(), "user123", "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !result.Success {
		t.Errorf("unexpected result: %+v", result)
	}
}
