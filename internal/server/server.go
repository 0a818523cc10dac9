// Package server exposes the dashboard core to the rendering layer as
// plain JSON: market data, valuation, risk figures, orders, and the order
// and cash submission endpoints.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/Zahkklm/FinRiskDetector/internal/backend"
	"github.com/Zahkklm/FinRiskDetector/internal/logger"
	"github.com/Zahkklm/FinRiskDetector/internal/market"
	"github.com/Zahkklm/FinRiskDetector/internal/realtime"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type Server struct {
	s *http.Server

	client *backend.Client
	store  *market.Store
	hub    *realtime.Hub

	userID   string
	upgrader websocket.Upgrader

	logger logger.Logger
}

func NewServer(ctx context.Context,
	port string,
	client *backend.Client,
	store *market.Store,
	hub *realtime.Hub,
	userID string,
	logger logger.Logger,
) *Server {
	srv := &Server{
		client: client,
		store:  store,
		hub:    hub,
		userID: userID,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/dashboard/market", srv.handleMarket).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard/history/{symbol}", srv.handleHistory).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard/portfolio", srv.handlePortfolio).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard/risk", srv.handleRisk).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard/risk/reference", srv.handleRiskReference).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard/orders", srv.handleOrders).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard/order", srv.handleSubmitOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/dashboard/order/{orderId}", srv.handleCancelOrder).Methods(http.MethodDelete)
	r.HandleFunc("/api/dashboard/cash/deposit", srv.handleDeposit).Methods(http.MethodPost)
	r.HandleFunc("/api/dashboard/cash/withdraw", srv.handleWithdraw).Methods(http.MethodPost)
	r.HandleFunc("/ws", srv.handleWebSocket).Methods(http.MethodGet)

	srv.s = &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	return srv
}

func (s *Server) Handler() http.Handler {
	return s.s.Handler
}

func (s *Server) Start() error {
	return s.s.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.s.Shutdown(ctx)
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error)
	go func() {
		errCh <- s.Start()
	}()
	select {
	case <-ctx.Done():
		return s.Shutdown(ctx)
	case err := <-errCh:
		return err
	}
}
