package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/assist-by/phoenix-futures/internal/domain"
	"github.com/assist-by/phoenix-futures/internal/logger"
	"github.com/assist-by/phoenix-futures/internal/order"
	"github.com/assist-by/phoenix-futures/internal/simulation"
)

const mockUsage = "mockdemo SYMBOL SIDE QUANTITY [flags]\n\n" +
	"Mock trading demo that simulates successful orders for demonstration.\n" +
	"Example: mockdemo BTCUSDT BUY 0.001 --order-type MARKET"

var separator = strings.Repeat("-", 50)

// MockDeps는 mockdemo 명령 실행에 필요한 의존성입니다
type MockDeps struct {
	Log        *logger.Logger
	Stdout     io.Writer
	Stderr     io.Writer
	SimOptions []simulation.Option
	Now        func() time.Time // 시드 미지정 시 사용, nil이면 time.Now
}

// RunMockDemo는 mockdemo 명령을 실행하고 종료 코드를 반환합니다
func RunMockDemo(ctx context.Context, args []string, deps MockDeps) int {
	log := deps.Log.Named("mock_demo")

	fs := newFlagSet("mockdemo", mockUsage, deps.Stderr)
	orderType := fs.String("order-type", string(domain.Market), "Type of order to simulate: MARKET, LIMIT, OCO, TWAP, GRID")
	price := fs.Float64("price", 0, "Price for LIMIT orders")
	slices := fs.Int("slices", 5, "Number of slices for TWAP")
	grids := fs.Int("grids", 5, "Number of grids for GRID strategy")
	seed := fs.Uint64("seed", 0, "Random seed for reproducible output (default: current time)")

	help, err := parseFlags(fs, args)
	if help {
		return ExitOK
	}
	if err != nil {
		log.Errorf("Validation error: %v", err)
		return ExitValidation
	}

	kind, input, err := mockInput(fs.Args(), *orderType, *price, fs.Changed("price"))
	if err != nil {
		log.Errorf("Validation error: %v", err)
		return ExitValidation
	}

	if !fs.Changed("seed") {
		now := time.Now
		if deps.Now != nil {
			now = deps.Now
		}
		*seed = uint64(now().UnixNano())
	}
	log.Debugf("난수 시드: %d", *seed)

	log.Infof("Simulating %s %s %s %s", kind, input.Side(), formatQty(input.Quantity()), input.Symbol())
	fmt.Fprintf(deps.Stdout, "Simulating %s Order\n", kind)
	fmt.Fprintf(deps.Stdout, "Symbol: %s\n", input.Symbol())
	fmt.Fprintf(deps.Stdout, "Side: %s\n", input.Side())
	fmt.Fprintf(deps.Stdout, "Quantity: %s\n", formatQty(input.Quantity()))
	fmt.Fprintf(deps.Stdout, "Order Type: %s\n", kind)
	fmt.Fprintln(deps.Stdout, separator)

	sim := simulation.NewSimulator(simulation.NewSeededRand(*seed), deps.SimOptions...)
	report, err := sim.Run(ctx, kind, input, simulation.Params{Slices: *slices, Grids: *grids})
	if err == nil {
		err = report.Render(deps.Stdout)
	}
	if err != nil {
		log.Errorf("Mock simulation failed: %v", err)
		fmt.Fprintf(deps.Stdout, "Demo failed: %v\n", err)
		return ExitExecution
	}

	fmt.Fprintln(deps.Stdout, separator)
	fmt.Fprintln(deps.Stdout, "Demo completed successfully!")
	log.Infof("Mock %s order simulation completed", kind)

	return ExitOK
}

// mockInput은 위치 인자와 전략 유형을 검증합니다
func mockInput(args []string, orderType string, price float64, hasPrice bool) (domain.OrderType, order.Input, error) {
	pos, err := parsePositional(args)
	if err != nil {
		return "", order.Input{}, err
	}

	kind, err := domain.ParseStrategyKind(orderType)
	if err != nil {
		return "", order.Input{}, err
	}

	params := order.Params{Symbol: pos.symbol, Side: pos.side, Quantity: pos.quantity}
	if hasPrice {
		params.Price = order.Float64(price)
	}
	input, err := order.NewInput(params)
	if err != nil {
		return "", order.Input{}, err
	}

	if _, ok := input.Price(); kind == domain.Limit && !ok {
		return "", order.Input{}, simulation.ErrPriceRequired
	}

	return kind, input, nil
}
