package notification

import "github.com/assist-by/phoenix-futures/internal/domain"

const (
	ColorSuccess = 0x00FF00 // 녹색
	ColorError   = 0xFF0000 // 빨간색
	ColorInfo    = 0x0000FF // 파란색
)

// Notifier는 알림 전송 인터페이스를 정의합니다
type Notifier interface {
	// SendError는 에러 알림을 전송합니다
	SendError(err error) error

	// SendTradeInfo는 거래 실행 정보를 전송합니다
	SendTradeInfo(info TradeInfo) error
}

// TradeInfo는 거래 실행 정보를 정의합니다
type TradeInfo struct {
	Symbol       string              // 심볼 (예: BTCUSDT)
	Side         domain.OrderSide    // BUY/SELL
	PositionSide domain.PositionSide // BOTH/LONG/SHORT
	Quantity     float64             // 주문 수량
	OrderID      int64               // 거래소 주문 ID
	Status       string              // 주문 상태
	AvgPrice     float64             // 평균 체결가 (미체결 시 0)
	Leverage     int                 // 변경한 레버리지 (0이면 변경 없음)
	ReduceOnly   bool
	Testnet      bool
}

// GetColorForSide는 주문 방향에 따른 색상을 반환합니다
func GetColorForSide(side domain.OrderSide) int {
	switch side {
	case domain.Buy:
		return ColorSuccess
	case domain.Sell:
		return ColorError
	default:
		return ColorInfo
	}
}

// Nop은 웹훅이 설정되지 않았을 때 사용하는 Notifier입니다
type Nop struct{}

func (Nop) SendError(error) error         { return nil }
func (Nop) SendTradeInfo(TradeInfo) error { return nil }
