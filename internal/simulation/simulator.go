// Package simulation은 네트워크 없이 주문 체결 결과를 흉내 내는 모의 엔진입니다.
// 모든 무작위 결과는 주입된 난수 소스에서 나오므로 시드를 고정하면 재현됩니다.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assist-by/phoenix-futures/internal/domain"
	"github.com/assist-by/phoenix-futures/internal/order"
)

var (
	ErrPriceRequired   = errors.New("LIMIT 주문에는 --price가 필요합니다")
	ErrInvalidSlices   = errors.New("TWAP 슬라이스 수는 1 이상이어야 합니다")
	ErrInvalidGrids    = errors.New("그리드 수는 2 이상이어야 합니다")
	ErrUnsupportedKind = errors.New("지원하지 않는 모의 주문 유형")
)

// Settings는 모의 시장의 고정 상수입니다. 실제 시세와는 무관한 예시 값입니다.
type Settings struct {
	BasePrice      int64           // 기준 가격
	MarketBand     int64           // 시장가 체결가 변동 폭 (±)
	OCOBand        int64           // OCO 지정가 변동 폭 (±)
	OCOStopOffset  int64           // 지정가 대비 스탑 가격 차이
	SliceBand      int64           // TWAP 슬라이스 체결가 변동 폭 (±)
	GridLower      int64           // 그리드 하단 가격
	GridUpper      int64           // 그리드 상단 가격
	CommissionRate decimal.Decimal // 수수료율
	TWAPFailRate   float64         // 슬라이스당 실패 확률
	GridFailRate   float64         // 그리드 레벨당 실패 확률
	SliceDelay     time.Duration   // TWAP 슬라이스 간 대기 시간
}

// DefaultSettings는 기본 모의 시장 설정을 반환합니다
func DefaultSettings() Settings {
	return Settings{
		BasePrice:      60000,
		MarketBand:     1000,
		OCOBand:        500,
		OCOStopOffset:  1000,
		SliceBand:      500,
		GridLower:      58000,
		GridUpper:      62000,
		CommissionRate: decimal.RequireFromString("0.001"),
		TWAPFailRate:   0.10,
		GridFailRate:   0.05,
		SliceDelay:     time.Second,
	}
}

// Sleeper는 TWAP 슬라이스 사이의 대기를 수행합니다
type Sleeper func(ctx context.Context, d time.Duration) error

// Params는 전략별 추가 파라미터입니다
type Params struct {
	Slices int // TWAP 슬라이스 수
	Grids  int // 그리드 레벨 수
}

// Simulator는 모의 주문 리포트를 생성합니다
type Simulator struct {
	rng      *rand.Rand
	sleep    Sleeper
	settings Settings
}

// Option은 Simulator 생성 옵션입니다
type Option func(*Simulator)

// WithSleeper는 대기 함수를 교체합니다 (테스트에서 대기 없이 실행할 때 사용)
func WithSleeper(s Sleeper) Option {
	return func(sim *Simulator) {
		sim.sleep = s
	}
}

// WithSettings는 모의 시장 설정을 교체합니다
func WithSettings(s Settings) Option {
	return func(sim *Simulator) {
		sim.settings = s
	}
}

// NewSimulator는 주어진 난수 소스로 Simulator를 생성합니다
func NewSimulator(rng *rand.Rand, opts ...Option) *Simulator {
	sim := &Simulator{
		rng:      rng,
		sleep:    sleepContext,
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(sim)
	}
	return sim
}

// NewSeededRand는 시드가 고정된 난수 소스를 생성합니다
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Run은 전략 유형에 맞는 리포트를 생성합니다
func (s *Simulator) Run(ctx context.Context, kind domain.OrderType, in order.Input, p Params) (Report, error) {
	switch kind {
	case domain.Market:
		return s.Market(in), nil
	case domain.Limit:
		price, ok := in.Price()
		if !ok {
			return nil, ErrPriceRequired
		}
		return s.Limit(in, price), nil
	case domain.OCO:
		return s.OCO(in), nil
	case domain.TWAP:
		return s.TWAP(ctx, in, p.Slices)
	case domain.Grid:
		return s.Grid(in, p.Grids)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

// Market은 기준가 주변에서 즉시 체결된 시장가 주문을 만듭니다
func (s *Simulator) Market(in order.Input) *MarketReport {
	orderID := s.orderID()
	price := decimal.NewFromInt(s.settings.BasePrice + s.intBetween(-s.settings.MarketBand, s.settings.MarketBand))
	qty := decimal.NewFromFloat(in.Quantity())
	total := qty.Mul(price)

	return &MarketReport{
		OrderID:       orderID,
		Status:        "FILLED",
		ExecutedQty:   qty,
		ExecutedPrice: price,
		Commission:    total.Mul(s.settings.CommissionRate),
		TotalValue:    total,
	}
}

// Limit은 체결되지 않고 대기 중인 지정가 주문을 만듭니다
func (s *Simulator) Limit(in order.Input, price float64) *LimitReport {
	return &LimitReport{
		OrderID:     s.orderID(),
		Status:      "NEW",
		Price:       decimal.NewFromFloat(price),
		Quantity:    decimal.NewFromFloat(in.Quantity()),
		TimeInForce: domain.GTC,
	}
}

// OCO는 이미 실행된 지정가+스탑 주문 쌍을 만듭니다
func (s *Simulator) OCO(in order.Input) *OCOReport {
	listID := s.orderID()
	limit := s.settings.BasePrice + s.intBetween(-s.settings.OCOBand, s.settings.OCOBand)

	return &OCOReport{
		OrderListID:     listID,
		ContingencyType: "OCO",
		ListStatus:      "EXECUTED",
		LimitPrice:      decimal.NewFromInt(limit),
		StopPrice:       decimal.NewFromInt(limit - s.settings.OCOStopOffset),
		Quantity:        decimal.NewFromFloat(in.Quantity()),
	}
}

// TWAP은 수량을 균등한 슬라이스로 나누어 순차 실행합니다
func (s *Simulator) TWAP(ctx context.Context, in order.Input, slices int) (*TWAPReport, error) {
	if slices < 1 {
		return nil, ErrInvalidSlices
	}

	total := decimal.NewFromFloat(in.Quantity())
	report := &TWAPReport{
		TotalQty: total,
		Slices:   slices,
		SliceQty: split(total, slices),
		Interval: s.settings.SliceDelay,
		Fills:    make([]Fill, 0, slices),
	}

	for i := 0; i < slices; i++ {
		if err := s.sleep(ctx, s.settings.SliceDelay); err != nil {
			return nil, fmt.Errorf("TWAP 슬라이스 %d 대기 중단: %w", i+1, err)
		}

		// 난수 소비 순서: 주문 ID → 가격 → 성공 여부
		fill := Fill{
			Index:    i + 1,
			OrderID:  s.orderID(),
			Price:    decimal.NewFromInt(s.settings.BasePrice + s.intBetween(-s.settings.SliceBand, s.settings.SliceBand)),
			Quantity: report.SliceQty,
		}
		fill.Filled = s.rng.Float64() > s.settings.TWAPFailRate
		if fill.Filled {
			report.Successful++
		}
		report.Fills = append(report.Fills, fill)
	}

	return report, nil
}

// Grid는 가격 구간을 균등한 레벨로 나누어 주문을 배치합니다
func (s *Simulator) Grid(in order.Input, grids int) (*GridReport, error) {
	if grids < 2 {
		return nil, ErrInvalidGrids
	}

	lower := decimal.NewFromInt(s.settings.GridLower)
	upper := decimal.NewFromInt(s.settings.GridUpper)
	step := upper.Sub(lower).Div(decimal.NewFromInt(int64(grids - 1)))
	qty := split(decimal.NewFromFloat(in.Quantity()), grids)

	report := &GridReport{
		Lower:       lower,
		Upper:       upper,
		Levels:      grids,
		Step:        step,
		QtyPerLevel: qty,
		Fills:       make([]Fill, 0, grids),
	}

	for i := 0; i < grids; i++ {
		price := lower.Add(step.Mul(decimal.NewFromInt(int64(i))))
		if i == grids-1 {
			// 나눗셈 반올림 오차 없이 상단 가격을 포함
			price = upper
		}

		fill := Fill{
			Index:    i + 1,
			OrderID:  s.orderID(),
			Price:    price,
			Quantity: qty,
		}
		fill.Filled = s.rng.Float64() > s.settings.GridFailRate
		if fill.Filled {
			report.Successful++
		}
		report.Fills = append(report.Fills, fill)
	}

	return report, nil
}

// split은 total을 n등분합니다. 아주 작은 수량도 0이 되지 않도록
// 소수 자릿수를 입력의 지수만큼 늘려 나눕니다.
func split(total decimal.Decimal, n int) decimal.Decimal {
	places := int32(decimal.DivisionPrecision)
	if exp := total.Exponent(); exp < 0 {
		places -= exp
	}
	return total.DivRound(decimal.NewFromInt(int64(n)), places)
}

// orderID는 6자리 모의 주문 ID를 생성합니다
func (s *Simulator) orderID() int64 {
	return s.intBetween(100000, 999999)
}

// intBetween은 [lo, hi] 범위의 정수를 반환합니다
func (s *Simulator) intBetween(lo, hi int64) int64 {
	return lo + s.rng.Int64N(hi-lo+1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
