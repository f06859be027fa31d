// Package order는 거래소 호출 전에 주문 입력을 정규화하고 검증합니다.
package order

import (
	"math"
	"strings"

	"github.com/assist-by/phoenix-futures/internal/domain"
)

// Params는 CLI에서 받은 가공 전 주문 파라미터입니다
type Params struct {
	Symbol      string
	Side        string
	Quantity    float64
	Price       *float64
	StopPrice   *float64
	LimitPrice  *float64
	Leverage    *int
	TimeInForce string
}

// Input은 검증이 끝난 불변 주문 입력입니다
type Input struct {
	symbol      string
	side        domain.OrderSide
	quantity    float64
	price       *float64
	stopPrice   *float64
	limitPrice  *float64
	leverage    *int
	timeInForce domain.TimeInForce
}

// rule은 Params를 검사하고 통과하면 정규화된 값을 Input에 기록합니다
type rule func(p Params, in *Input) error

// rules는 검사 순서를 정의합니다. 첫 번째로 실패한 규칙의 에러가 반환됩니다.
var rules = []rule{
	checkSymbol,
	checkSide,
	checkQuantity,
	checkOptionalPrice("price", func(p Params) *float64 { return p.Price }, func(in *Input, v *float64) { in.price = v }),
	checkOptionalPrice("stop_price", func(p Params) *float64 { return p.StopPrice }, func(in *Input, v *float64) { in.stopPrice = v }),
	checkOptionalPrice("limit_price", func(p Params) *float64 { return p.LimitPrice }, func(in *Input, v *float64) { in.limitPrice = v }),
	checkLeverage,
	checkTimeInForce,
}

// NewInput은 모든 규칙을 통과한 경우에만 Input을 생성합니다
func NewInput(p Params) (Input, error) {
	var in Input
	for _, r := range rules {
		if err := r(p, &in); err != nil {
			return Input{}, err
		}
	}
	return in, nil
}

func checkSymbol(p Params, in *Input) error {
	symbol := strings.ToUpper(strings.TrimSpace(p.Symbol))
	if symbol == "" || !strings.HasSuffix(symbol, domain.QuoteAsset) {
		return invalid("symbol", "symbol must be like BTCUSDT, ETHUSDT, etc.")
	}
	in.symbol = symbol
	return nil
}

func checkSide(p Params, in *Input) error {
	side, err := domain.ParseOrderSide(p.Side)
	if err != nil {
		return invalid("side", "side must be BUY or SELL")
	}
	in.side = side
	return nil
}

func checkQuantity(p Params, in *Input) error {
	if !positive(p.Quantity) {
		return invalid("quantity", "quantity must be > 0")
	}
	in.quantity = p.Quantity
	return nil
}

func checkOptionalPrice(field string, get func(Params) *float64, set func(*Input, *float64)) rule {
	return func(p Params, in *Input) error {
		v := get(p)
		if v == nil {
			return nil
		}
		if !positive(*v) {
			return invalid(field, "price values must be > 0")
		}
		// 호출자의 포인터와 분리해 불변성을 유지
		cp := *v
		set(in, &cp)
		return nil
	}
}

func checkLeverage(p Params, in *Input) error {
	if p.Leverage == nil {
		return nil
	}
	if *p.Leverage <= 0 {
		return invalid("leverage", "leverage must be > 0")
	}
	lev := *p.Leverage
	in.leverage = &lev
	return nil
}

// GTC/IOC/FOK 외의 값도 그대로 통과시킵니다 (거래소가 최종 판단)
func checkTimeInForce(p Params, in *Input) error {
	in.timeInForce = domain.TimeInForce(strings.TrimSpace(p.TimeInForce))
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Symbol은 대문자로 정규화된 심볼을 반환합니다
func (in Input) Symbol() string { return in.symbol }

// Side는 BUY 또는 SELL을 반환합니다
func (in Input) Side() domain.OrderSide { return in.side }

// Quantity는 주문 수량을 반환합니다
func (in Input) Quantity() float64 { return in.quantity }

// Price는 지정가와 설정 여부를 반환합니다
func (in Input) Price() (float64, bool) { return deref(in.price) }

// StopPrice는 스탑 가격과 설정 여부를 반환합니다
func (in Input) StopPrice() (float64, bool) { return deref(in.stopPrice) }

// LimitPrice는 OCO 지정가와 설정 여부를 반환합니다
func (in Input) LimitPrice() (float64, bool) { return deref(in.limitPrice) }

// Leverage는 레버리지와 설정 여부를 반환합니다
func (in Input) Leverage() (int, bool) {
	if in.leverage == nil {
		return 0, false
	}
	return *in.leverage, true
}

// TimeInForce는 입력된 주문 유효 기간을 반환합니다 (미설정 시 빈 문자열)
func (in Input) TimeInForce() domain.TimeInForce { return in.timeInForce }

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Float64는 선택 가격 필드를 채우기 위한 헬퍼입니다
func Float64(v float64) *float64 { return &v }

// Int는 선택 레버리지 필드를 채우기 위한 헬퍼입니다
func Int(v int) *int { return &v }
