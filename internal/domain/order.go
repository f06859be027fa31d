package domain

import "time"

// OrderRequest는 주문 요청 정보를 표현합니다
type OrderRequest struct {
	Symbol        string       // 심볼 (예: BTCUSDT)
	Side          OrderSide    // 매수/매도
	PositionSide  PositionSide // BOTH/LONG/SHORT
	Type          OrderType    // 주문 유형 (실거래는 MARKET)
	Quantity      float64      // 수량
	ReduceOnly    bool         // 포지션 축소 전용 여부
	RecvWindow    int64        // 요청 유효 시간 (ms)
	ClientOrderID string       // 클라이언트 측 주문 ID
}

// OrderResponse는 주문 응답을 표현합니다
type OrderResponse struct {
	OrderID          int64        `json:"orderId"`
	Symbol           string       `json:"symbol"`
	Status           string       `json:"status"`
	ClientOrderID    string       `json:"clientOrderId"`
	Price            float64      `json:"price"`
	AvgPrice         float64      `json:"avgPrice"`
	OrigQuantity     float64      `json:"origQty"`
	ExecutedQuantity float64      `json:"executedQty"`
	Side             OrderSide    `json:"side"`
	PositionSide     PositionSide `json:"positionSide"`
	Type             OrderType    `json:"type"`
	ReduceOnly       bool         `json:"reduceOnly"`
	UpdateTime       time.Time    `json:"updateTime"`
}

// LeverageResult는 레버리지 변경 결과를 표현합니다
type LeverageResult struct {
	Symbol           string
	Leverage         int
	MaxNotionalValue float64
}
