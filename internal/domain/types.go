package domain

import (
	"fmt"
	"strings"
)

// OrderSide는 주문 방향을 정의합니다
type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

// ParseOrderSide는 대소문자를 구분하지 않고 주문 방향을 해석합니다
func ParseOrderSide(s string) (OrderSide, error) {
	switch side := OrderSide(strings.ToUpper(strings.TrimSpace(s))); side {
	case Buy, Sell:
		return side, nil
	default:
		return "", fmt.Errorf("알 수 없는 주문 방향: %q", s)
	}
}

// PositionSide는 포지션 방향을 정의합니다
type PositionSide string

const (
	LongPosition  PositionSide = "LONG"
	ShortPosition PositionSide = "SHORT"
	BothPosition  PositionSide = "BOTH" // 헤지 모드가 아닌 경우
)

// ParsePositionSide는 대소문자를 구분하지 않고 포지션 방향을 해석합니다
func ParsePositionSide(s string) (PositionSide, error) {
	switch side := PositionSide(strings.ToUpper(strings.TrimSpace(s))); side {
	case LongPosition, ShortPosition, BothPosition:
		return side, nil
	default:
		return "", fmt.Errorf("포지션 방향은 BOTH, LONG, SHORT 중 하나여야 합니다: %q", s)
	}
}

// OrderType은 주문 유형을 정의합니다
type OrderType string

const (
	Market OrderType = "MARKET"
	Limit  OrderType = "LIMIT"

	// 모의 데모 전용 전략 유형
	OCO  OrderType = "OCO"
	TWAP OrderType = "TWAP"
	Grid OrderType = "GRID"
)

// StrategyKinds는 모의 데모가 지원하는 전략 목록입니다
var StrategyKinds = []OrderType{Market, Limit, OCO, TWAP, Grid}

// ParseStrategyKind는 모의 데모 전략 유형을 해석합니다
func ParseStrategyKind(s string) (OrderType, error) {
	kind := OrderType(strings.ToUpper(strings.TrimSpace(s)))
	for _, k := range StrategyKinds {
		if k == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("주문 유형은 MARKET, LIMIT, OCO, TWAP, GRID 중 하나여야 합니다: %q", s)
}

// TimeInForce는 주문 유효 기간을 정의합니다
type TimeInForce string

const (
	GTC TimeInForce = "GTC"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

// QuoteAsset은 USDT 마진 선물의 결제 자산입니다
const QuoteAsset = "USDT"

// DefaultRecvWindow는 서명 요청의 기본 recvWindow(ms)입니다
const (
	DefaultRecvWindow int64 = 5000
	MaxRecvWindow     int64 = 60000
)
