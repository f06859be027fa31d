package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/assist-by/phoenix-futures/internal/config"
	"github.com/assist-by/phoenix-futures/internal/domain"
	"github.com/assist-by/phoenix-futures/internal/exchange"
	"github.com/assist-by/phoenix-futures/internal/logger"
	"github.com/assist-by/phoenix-futures/internal/notification"
	"github.com/assist-by/phoenix-futures/internal/order"
	"github.com/assist-by/phoenix-futures/internal/trade"
)

const marketUsage = "market SYMBOL SIDE QUANTITY [flags]\n\n" +
	"Place a MARKET order on Binance USDT-M Futures.\n" +
	"Example: market BTCUSDT BUY 0.01 --leverage 10 --testnet"

// ExchangeFactory는 인증된 거래소 클라이언트를 생성합니다
type ExchangeFactory func(cfg *config.Config, testnet bool) exchange.Exchange

// MarketDeps는 market 명령 실행에 필요한 의존성입니다
type MarketDeps struct {
	Config      *config.Config
	Log         *logger.Logger
	Stdout      io.Writer
	Stderr      io.Writer
	NewExchange ExchangeFactory
	Notifier    notification.Notifier
}

// RunMarket은 market 명령을 실행하고 종료 코드를 반환합니다
func RunMarket(ctx context.Context, args []string, deps MarketDeps) int {
	log := deps.Log.Named("market_orders")

	fs := newFlagSet("market", marketUsage, deps.Stderr)
	leverage := fs.Int("leverage", 0, "Optional leverage to set before order")
	reduceOnly := fs.Bool("reduce-only", false, "Use reduceOnly flag")
	testnet := fs.Bool("testnet", false, "Use the futures testnet (overrides BINANCE_FUTURES_TESTNET)")
	noTestnet := fs.Bool("no-testnet", false, "Use production futures (overrides BINANCE_FUTURES_TESTNET)")
	positionSide := fs.String("position-side", string(domain.BothPosition), "Position side: BOTH, LONG or SHORT")
	recvWindow := fs.Int64("recv-window", domain.DefaultRecvWindow, "recvWindow in milliseconds (1-60000)")

	help, err := parseFlags(fs, args)
	if help {
		return ExitOK
	}
	if err != nil {
		log.Errorf("Validation error: %v", err)
		return ExitValidation
	}

	pos, err := parsePositional(fs.Args())
	if err != nil {
		log.Errorf("Validation error: %v", err)
		return ExitValidation
	}

	params := order.Params{Symbol: pos.symbol, Side: pos.side, Quantity: pos.quantity}
	if fs.Changed("leverage") {
		params.Leverage = order.Int(*leverage)
	}
	input, err := order.NewInput(params)
	if err != nil {
		log.Errorf("Validation error: %v", err)
		return ExitValidation
	}

	side, err := domain.ParsePositionSide(*positionSide)
	if err != nil {
		log.Errorf("Validation error: %v", err)
		return ExitValidation
	}

	if *recvWindow <= 0 || *recvWindow > domain.MaxRecvWindow {
		log.Errorf("Validation error: recv-window는 1~%d 사이여야 합니다: %d", domain.MaxRecvWindow, *recvWindow)
		return ExitValidation
	}

	var override *bool
	switch {
	case *testnet && *noTestnet:
		log.Errorf("Validation error: --testnet과 --no-testnet은 함께 사용할 수 없습니다")
		return ExitValidation
	case *testnet:
		override = testnet
	case *noTestnet:
		off := false
		override = &off
	}
	useTestnet := deps.Config.ResolveTestnet(override)

	if err := deps.Config.RequireCredentials(); err != nil {
		log.Errorf("Configuration error: %v", err)
		return ExitValidation
	}

	notifier := deps.Notifier
	if notifier == nil {
		notifier = notification.Nop{}
	}
	executor := trade.NewExecutor(deps.NewExchange(deps.Config, useTestnet), log, trade.WithNotifier(notifier))

	log.Infof("Placing MARKET %s %s %s | testnet=%t", input.Side(), formatQty(input.Quantity()), input.Symbol(), useTestnet)

	resp, err := executor.PlaceMarketOrder(ctx, trade.MarketOrder{
		Input:        input,
		ReduceOnly:   *reduceOnly,
		PositionSide: side,
		RecvWindow:   *recvWindow,
		Testnet:      useTestnet,
	})
	if err != nil {
		log.Errorf("Failed to place market order: %v", err)
		return ExitExecution
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Errorf("응답 출력 실패: %v", err)
		return ExitExecution
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return ExitOK
}
