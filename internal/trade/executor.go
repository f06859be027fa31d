// Package trade는 검증된 주문 입력을 거래소에 실행합니다.
package trade

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/assist-by/phoenix-futures/internal/domain"
	"github.com/assist-by/phoenix-futures/internal/exchange"
	"github.com/assist-by/phoenix-futures/internal/logger"
	"github.com/assist-by/phoenix-futures/internal/notification"
	"github.com/assist-by/phoenix-futures/internal/order"
)

// 실행 단계 이름
const (
	PhaseSyncTime = "sync_time"
	PhaseLeverage = "change_leverage"
	PhaseOrder    = "new_order"
)

// MarketOrder는 시장가 주문 실행 요청입니다
type MarketOrder struct {
	Input        order.Input
	ReduceOnly   bool
	PositionSide domain.PositionSide
	RecvWindow   int64
	Testnet      bool // 알림 표시용
}

// Executor는 시장가 주문을 실행합니다
type Executor struct {
	exchange      exchange.Exchange
	notifier      notification.Notifier
	log           *logger.Logger
	clientOrderID func() string
}

// Option은 Executor 생성 옵션입니다
type Option func(*Executor)

// WithNotifier는 주문 결과 알림 대상을 설정합니다
func WithNotifier(n notification.Notifier) Option {
	return func(e *Executor) {
		e.notifier = n
	}
}

// WithClientOrderID는 클라이언트 주문 ID 생성기를 교체합니다
func WithClientOrderID(gen func() string) Option {
	return func(e *Executor) {
		e.clientOrderID = gen
	}
}

// NewExecutor는 새로운 Executor를 생성합니다
func NewExecutor(ex exchange.Exchange, log *logger.Logger, opts ...Option) *Executor {
	e := &Executor{
		exchange:      ex,
		notifier:      notification.Nop{},
		log:           log,
		clientOrderID: NewClientOrderID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PlaceMarketOrder는 (선택적으로 레버리지를 변경한 뒤) 시장가 주문을 전송합니다.
// 반환되는 에러는 항상 *ExecutionError입니다.
func (e *Executor) PlaceMarketOrder(ctx context.Context, req MarketOrder) (*domain.OrderResponse, error) {
	in := req.Input

	if err := e.exchange.SyncTime(ctx); err != nil {
		return nil, e.fail(PhaseSyncTime, err)
	}

	leverage, hasLeverage := in.Leverage()
	if hasLeverage {
		e.log.Infof("Setting leverage=%d for %s", leverage, in.Symbol())
		res, err := e.exchange.ChangeLeverage(ctx, in.Symbol(), leverage, req.RecvWindow)
		if err != nil {
			return nil, e.fail(PhaseLeverage, err)
		}
		e.log.Debugf("레버리지 변경 완료: %s %dx (최대 명목가치 %.2f)", res.Symbol, res.Leverage, res.MaxNotionalValue)
	}

	positionSide := req.PositionSide
	if positionSide == "" {
		positionSide = domain.BothPosition
	}

	resp, err := e.exchange.PlaceOrder(ctx, domain.OrderRequest{
		Symbol:        in.Symbol(),
		Side:          in.Side(),
		PositionSide:  positionSide,
		Type:          domain.Market,
		Quantity:      in.Quantity(),
		ReduceOnly:    req.ReduceOnly,
		RecvWindow:    req.RecvWindow,
		ClientOrderID: e.clientOrderID(),
	})
	if err != nil {
		return nil, e.fail(PhaseOrder, err)
	}

	e.log.Infof("Order response: %+v", *resp)

	if err := e.notifier.SendTradeInfo(notification.TradeInfo{
		Symbol:       resp.Symbol,
		Side:         in.Side(),
		PositionSide: positionSide,
		Quantity:     in.Quantity(),
		OrderID:      resp.OrderID,
		Status:       resp.Status,
		AvgPrice:     resp.AvgPrice,
		Leverage:     leverage,
		ReduceOnly:   req.ReduceOnly,
		Testnet:      req.Testnet,
	}); err != nil {
		e.log.Warnf("거래 알림 전송 실패: %v", err)
	}

	return resp, nil
}

func (e *Executor) fail(phase string, err error) *ExecutionError {
	execErr := &ExecutionError{Phase: phase, Err: err}
	if nErr := e.notifier.SendError(execErr); nErr != nil {
		e.log.Warnf("에러 알림 전송 실패: %v", nErr)
	}
	return execErr
}

// NewClientOrderID는 바이낸스 길이 제한(36자)에 맞는 주문 ID를 생성합니다
func NewClientOrderID() string {
	return "phx-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
