// internal/exchange/binance/client.go
package binance

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2/futures"

	"github.com/assist-by/phoenix-futures/internal/config"
	"github.com/assist-by/phoenix-futures/internal/domain"
)

// Client는 go-binance 선물 SDK를 감싸 exchange.Exchange를 구현합니다
type Client struct {
	api *futures.Client
}

// ClientOption은 클라이언트 생성 옵션을 정의합니다
type ClientOption func(*Client)

// WithTimeout은 HTTP 클라이언트의 타임아웃을 설정합니다
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.api.HTTPClient.Timeout = timeout
	}
}

// WithBaseURL은 기본 URL을 설정합니다
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.api.BaseURL = baseURL
	}
}

// WithTestnet은 테스트넷 사용 여부를 설정합니다
func WithTestnet(useTestnet bool) ClientOption {
	return func(c *Client) {
		c.api.BaseURL = config.BaseURL(useTestnet)
	}
}

// WithHTTPClient는 HTTP 클라이언트를 교체합니다
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.api.HTTPClient = hc
	}
}

// NewClient는 새로운 바이낸스 선물 클라이언트를 생성합니다
func NewClient(apiKey, secretKey string, opts ...ClientOption) *Client {
	api := futures.NewClient(apiKey, secretKey)
	api.BaseURL = config.MainnetBaseURL // 기본값은 메인넷
	// SDK 기본값(http.DefaultClient)을 공유하지 않도록 별도 클라이언트 사용
	api.HTTPClient = &http.Client{Timeout: 10 * time.Second}

	c := &Client{api: api}

	// 옵션 적용
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SyncTime은 바이낸스 서버와 시간을 동기화합니다
func (c *Client) SyncTime(ctx context.Context) error {
	if _, err := c.api.NewSetServerTimeService().Do(ctx); err != nil {
		return fmt.Errorf("서버 시간 동기화 실패: %w", err)
	}
	return nil
}

// ChangeLeverage는 심볼의 레버리지를 변경합니다
func (c *Client) ChangeLeverage(ctx context.Context, symbol string, leverage int, recvWindow int64) (*domain.LeverageResult, error) {
	res, err := c.api.NewChangeLeverageService().
		Symbol(symbol).
		Leverage(leverage).
		Do(ctx, requestOptions(recvWindow)...)
	if err != nil {
		return nil, fmt.Errorf("레버리지 설정 실패 [심볼: %s, 레버리지: %d]: %w", symbol, leverage, err)
	}

	maxNotional, _ := strconv.ParseFloat(res.MaxNotionalValue, 64)
	return &domain.LeverageResult{
		Symbol:           res.Symbol,
		Leverage:         res.Leverage,
		MaxNotionalValue: maxNotional,
	}, nil
}

// PlaceOrder는 새로운 주문을 생성합니다. 실거래 명령은 시장가 주문만 사용합니다.
func (c *Client) PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResponse, error) {
	if order.Type != domain.Market {
		return nil, fmt.Errorf("지원하지 않는 주문 유형: %s", order.Type)
	}

	svc := c.api.NewCreateOrderService().
		Symbol(order.Symbol).
		Side(futures.SideType(order.Side)).
		Type(futures.OrderTypeMarket).
		Quantity(formatFloat(order.Quantity))

	if order.PositionSide != "" {
		svc = svc.PositionSide(futures.PositionSideType(order.PositionSide))
	}

	// reduceOnly는 설정된 경우에만 전송 (헤지 모드에서는 거래소가 거부)
	if order.ReduceOnly {
		svc = svc.ReduceOnly(true)
	}

	// 클라이언트 주문 ID가 설정되었으면 추가
	if order.ClientOrderID != "" {
		svc = svc.NewClientOrderID(order.ClientOrderID)
	}

	res, err := svc.Do(ctx, requestOptions(order.RecvWindow)...)
	if err != nil {
		return nil, fmt.Errorf("주문 실행 실패 [심볼: %s, 타입: %s, 수량: %s]: %w",
			order.Symbol, order.Type, formatFloat(order.Quantity), err)
	}

	return toOrderResponse(res), nil
}

func toOrderResponse(res *futures.CreateOrderResponse) *domain.OrderResponse {
	// 문자열을 숫자로 변환
	price, _ := strconv.ParseFloat(res.Price, 64)
	avgPrice, _ := strconv.ParseFloat(res.AvgPrice, 64)
	origQuantity, _ := strconv.ParseFloat(res.OrigQuantity, 64)
	executedQuantity, _ := strconv.ParseFloat(res.ExecutedQuantity, 64)

	return &domain.OrderResponse{
		OrderID:          res.OrderID,
		Symbol:           res.Symbol,
		Status:           string(res.Status),
		ClientOrderID:    res.ClientOrderID,
		Price:            price,
		AvgPrice:         avgPrice,
		OrigQuantity:     origQuantity,
		ExecutedQuantity: executedQuantity,
		Side:             domain.OrderSide(res.Side),
		PositionSide:     domain.PositionSide(res.PositionSide),
		Type:             domain.OrderType(res.Type),
		ReduceOnly:       res.ReduceOnly,
		UpdateTime:       time.UnixMilli(res.UpdateTime),
	}
}

func requestOptions(recvWindow int64) []futures.RequestOption {
	if recvWindow <= 0 {
		return nil
	}
	return []futures.RequestOption{futures.WithRecvWindow(recvWindow)}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
