package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Zahkklm/FinRiskDetector/internal/backend"
	"github.com/Zahkklm/FinRiskDetector/internal/demo"
	"github.com/Zahkklm/FinRiskDetector/internal/market"
	"github.com/Zahkklm/FinRiskDetector/internal/model"
	"github.com/Zahkklm/FinRiskDetector/internal/order"
	"github.com/Zahkklm/FinRiskDetector/internal/risk"
	"github.com/Zahkklm/FinRiskDetector/internal/tools"
	"github.com/Zahkklm/FinRiskDetector/internal/valuation"
	"github.com/bytedance/sonic"
	"github.com/gorilla/mux"
)

type errorResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		s.logger.Errorf("%s: can't marshal response", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.logger.Warnf("%s: can't write response", err)
	}
}

// writeError maps the error taxonomy onto HTTP statuses: local validation
// failures are 422, backend failures 502, anything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var validationErr *order.ValidationError
	if errors.As(err, &validationErr) {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:    string(validationErr.Code),
			Field:   validationErr.Field,
			Message: validationErr.Reason,
		})
		return
	}

	var remoteErr *backend.RemoteError
	if errors.As(err, &remoteErr) {
		s.writeJSON(w, http.StatusBadGateway, errorResponse{Message: remoteErr.Error()})
		return
	}

	s.logger.Errorf("%s: request failed", err)
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}

type marketView struct {
	Prices      model.Snapshot           `json:"prices"`
	Changes     map[model.Symbol]float64 `json:"changes"`
	TotalAssets int                      `json:"totalAssets"`
	TotalVolume string                   `json:"totalVolume"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	snapshot := s.store.Current()

	symbols := make([]model.Symbol, 0, len(snapshot))
	for symbol := range snapshot {
		symbols = append(symbols, symbol)
	}

	s.writeJSON(w, http.StatusOK, marketView{
		Prices:      snapshot,
		Changes:     demo.PercentChanges(symbols),
		TotalAssets: len(snapshot),
		TotalVolume: tools.FormatLargeNumber(market.TotalVolume(snapshot)),
		UpdatedAt:   time.Now(),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	timeframe := market.Timeframe(r.URL.Query().Get("timeframe"))
	if timeframe == "" {
		timeframe = market.Hour
	}

	points, err := s.client.FetchPriceHistory(r.Context(), symbol)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, market.FilterTimeframe(points, timeframe, time.Now()))
}

type portfolioView struct {
	Portfolio model.Portfolio `json:"portfolio"`
	Valuation model.Valuation `json:"valuation"`
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	portfolio, err := s.client.FetchPortfolio(r.Context(), s.userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, portfolioView{
		Portfolio: portfolio,
		Valuation: valuation.Value(portfolio, s.store.Current()),
	})
}

type assetRisk struct {
	Volatility float64   `json:"volatility"`
	Tier       risk.Tier `json:"tier"`
}

type riskView struct {
	Valuation    model.Valuation            `json:"valuation"`
	Profile      model.RiskProfile          `json:"profile"`
	Assets       map[model.Symbol]assetRisk `json:"assets"`
	Transactions []demo.TransactionRisk     `json:"transactions"`
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	portfolio, err := s.client.FetchPortfolio(r.Context(), s.userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	v := valuation.Value(portfolio, s.store.Current())

	assets := make(map[model.Symbol]assetRisk, len(portfolio.Holdings))
	for symbol := range portfolio.Holdings {
		vol := risk.AssetVolatility(symbol)
		assets[symbol] = assetRisk{Volatility: vol, Tier: risk.Classify(vol)}
	}

	profile := risk.Estimate(portfolio, v)
	profile.ValueAtRisk95 = tools.Round2(profile.ValueAtRisk95)

	s.writeJSON(w, http.StatusOK, riskView{
		Valuation:    v,
		Profile:      profile,
		Assets:       assets,
		Transactions: demo.TransactionRisks(time.Now()),
	})
}

func (s *Server) handleRiskReference(w http.ResponseWriter, r *http.Request) {
	kind := risk.MetricKind(r.URL.Query().Get("metric"))
	if kind == "" {
		kind = risk.Volatility
	}

	table, err := risk.ReferenceMetrics(kind)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.client.FetchOrders(r.Context(), s.userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var intent model.OrderIntent
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&intent); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid order payload"})
		return
	}

	// A stale or unknown symbol resolves to price 0, the backend is the
	// authority on whether such an order is acceptable.
	quote, _ := s.store.Quote(intent.Symbol)

	req, err := order.ValidateAndBuild(intent, s.userID, quote.Price)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.client.SubmitOrder(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	result, err := s.client.CancelOrder(r.Context(), s.userID, mux.Vars(r)["orderId"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

type cashForm struct {
	Amount string `json:"amount"`
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	s.handleCash(w, r, s.client.Deposit)
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	s.handleCash(w, r, s.client.Withdraw)
}

func (s *Server) handleCash(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, userID string, req model.CashRequest) error,
) {
	var form cashForm
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&form); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid cash payload"})
		return
	}

	req, err := order.BuildCashRequest(form.Amount)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := op(r.Context(), s.userID, req); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, model.OpResult{Success: true})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnf("%s: can't upgrade websocket", err)
		return
	}

	s.hub.AddClient(conn)

	go func() {
		defer s.hub.RemoveClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
