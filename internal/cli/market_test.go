package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/phoenix-futures/internal/config"
	"github.com/assist-by/phoenix-futures/internal/domain"
	"github.com/assist-by/phoenix-futures/internal/exchange"
	"github.com/assist-by/phoenix-futures/internal/logger"
)

type stubExchange struct {
	leverage []int
	orders   []domain.OrderRequest
	orderErr error
}

func (s *stubExchange) SyncTime(ctx context.Context) error { return nil }

func (s *stubExchange) ChangeLeverage(ctx context.Context, symbol string, leverage int, recvWindow int64) (*domain.LeverageResult, error) {
	s.leverage = append(s.leverage, leverage)
	return &domain.LeverageResult{Symbol: symbol, Leverage: leverage}, nil
}

func (s *stubExchange) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResponse, error) {
	s.orders = append(s.orders, req)
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	return &domain.OrderResponse{OrderID: 777, Symbol: req.Symbol, Status: "NEW", Side: req.Side, Type: req.Type}, nil
}

type marketHarness struct {
	ex        *stubExchange
	stdout    bytes.Buffer
	created   int
	testnetIn bool
	cfg       *config.Config
}

func newMarketHarness() *marketHarness {
	cfg := &config.Config{}
	cfg.Binance.APIKey = "key"
	cfg.Binance.SecretKey = "secret"
	cfg.Binance.UseTestnet = true
	return &marketHarness{ex: &stubExchange{}, cfg: cfg}
}

func (h *marketHarness) run(args ...string) int {
	return RunMarket(context.Background(), args, MarketDeps{
		Config: h.cfg,
		Log:    logger.Nop(),
		Stdout: &h.stdout,
		Stderr: io.Discard,
		NewExchange: func(cfg *config.Config, testnet bool) exchange.Exchange {
			h.created++
			h.testnetIn = testnet
			return h.ex
		},
	})
}

func TestRunMarket_Success(t *testing.T) {
	h := newMarketHarness()

	code := h.run("btcusdt", "buy", "0.01", "--leverage", "10", "--reduce-only", "--position-side", "long", "--recv-window", "7000")
	require.Equal(t, ExitOK, code)

	assert.Equal(t, []int{10}, h.ex.leverage)
	require.Len(t, h.ex.orders, 1)
	sent := h.ex.orders[0]
	assert.Equal(t, "BTCUSDT", sent.Symbol)
	assert.Equal(t, domain.Buy, sent.Side)
	assert.Equal(t, domain.Market, sent.Type)
	assert.Equal(t, 0.01, sent.Quantity)
	assert.True(t, sent.ReduceOnly)
	assert.Equal(t, domain.LongPosition, sent.PositionSide)
	assert.Equal(t, int64(7000), sent.RecvWindow)

	var resp domain.OrderResponse
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &resp))
	assert.Equal(t, int64(777), resp.OrderID)
}

func TestRunMarket_Defaults(t *testing.T) {
	h := newMarketHarness()

	require.Equal(t, ExitOK, h.run("ETHUSDT", "SELL", "1"))

	assert.Empty(t, h.ex.leverage, "--leverage가 없으면 레버리지를 변경하지 않습니다")
	assert.Equal(t, domain.BothPosition, h.ex.orders[0].PositionSide)
	assert.Equal(t, domain.DefaultRecvWindow, h.ex.orders[0].RecvWindow)
	assert.False(t, h.ex.orders[0].ReduceOnly)
	assert.True(t, h.testnetIn, "플래그가 없으면 환경변수 값을 사용합니다")
}

func TestRunMarket_TestnetOverride(t *testing.T) {
	h := newMarketHarness()
	require.Equal(t, ExitOK, h.run("BTCUSDT", "BUY", "0.01", "--no-testnet"))
	assert.False(t, h.testnetIn)

	h = newMarketHarness()
	h.cfg.Binance.UseTestnet = false
	require.Equal(t, ExitOK, h.run("BTCUSDT", "BUY", "0.01", "--testnet"))
	assert.True(t, h.testnetIn)
}

func TestRunMarket_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"USDT가 아닌 심볼", []string{"BTCBUSD", "BUY", "0.01"}},
		{"잘못된 방향", []string{"BTCUSDT", "HOLD", "0.01"}},
		{"수량 0", []string{"BTCUSDT", "BUY", "0"}},
		{"숫자가 아닌 수량", []string{"BTCUSDT", "BUY", "abc"}},
		{"인자 부족", []string{"BTCUSDT", "BUY"}},
		{"레버리지 0", []string{"BTCUSDT", "BUY", "0.01", "--leverage", "0"}},
		{"잘못된 포지션 방향", []string{"BTCUSDT", "BUY", "0.01", "--position-side", "UP"}},
		{"recvWindow 0", []string{"BTCUSDT", "BUY", "0.01", "--recv-window", "0"}},
		{"recvWindow 초과", []string{"BTCUSDT", "BUY", "0.01", "--recv-window", "60001"}},
		{"테스트넷 플래그 충돌", []string{"BTCUSDT", "BUY", "0.01", "--testnet", "--no-testnet"}},
		{"알 수 없는 플래그", []string{"BTCUSDT", "BUY", "0.01", "--price", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMarketHarness()
			assert.Equal(t, ExitValidation, h.run(tt.args...))
			assert.Zero(t, h.created, "검증 실패 시 거래소 클라이언트를 만들지 않아야 합니다")
			assert.Empty(t, h.ex.orders)
		})
	}
}

func TestRunMarket_MissingCredentials(t *testing.T) {
	h := newMarketHarness()
	h.cfg.Binance.SecretKey = ""

	assert.Equal(t, ExitValidation, h.run("BTCUSDT", "BUY", "0.01"))
	assert.Zero(t, h.created)
}

func TestRunMarket_SubmissionFailure(t *testing.T) {
	h := newMarketHarness()
	h.ex.orderErr = errors.New("API 에러(코드: -2019): Margin is insufficient.")

	assert.Equal(t, ExitExecution, h.run("BTCUSDT", "BUY", "100"))
	assert.Empty(t, h.stdout.String())
}

func TestRunMarket_Help(t *testing.T) {
	h := newMarketHarness()
	assert.Equal(t, ExitOK, h.run("--help"))
	assert.Zero(t, h.created)
}
