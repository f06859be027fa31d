package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/assist-by/phoenix-futures/internal/notification"
)

const footerText = "Phoenix Futures CLI 🤖"

// Client는 Discord 웹훅 클라이언트입니다
type Client struct {
	tradeWebhook string
	errorWebhook string
	httpClient   *http.Client
}

// ClientOption은 클라이언트 생성 옵션을 정의합니다
type ClientOption func(*Client)

// WithTimeout은 HTTP 클라이언트의 타임아웃을 설정합니다
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient는 새로운 Discord 클라이언트를 생성합니다.
// errorWebhook이 비어 있으면 에러 알림도 tradeWebhook으로 보냅니다.
// 주소가 없는 쪽의 알림은 보내지 않습니다.
func NewClient(tradeWebhook, errorWebhook string, opts ...ClientOption) *Client {
	if errorWebhook == "" {
		errorWebhook = tradeWebhook
	}
	c := &Client{
		tradeWebhook: tradeWebhook,
		errorWebhook: errorWebhook,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendError는 에러 알림을 전송합니다
func (c *Client) SendError(err error) error {
	embed := NewEmbed("주문 실패", notification.ColorError).
		SetDescription(fmt.Sprintf("```%v```", err))

	return c.sendToWebhook(c.errorWebhook, embed.Message())
}

// SendTradeInfo는 거래 실행 정보를 전송합니다
func (c *Client) SendTradeInfo(info notification.TradeInfo) error {
	network := "MAINNET"
	if info.Testnet {
		network = "TESTNET"
	}

	embed := NewEmbed(fmt.Sprintf("MARKET %s %s", info.Side, info.Symbol), notification.GetColorForSide(info.Side)).
		SetDescription(fmt.Sprintf(
			"**주문 ID**: %d\n**상태**: %s\n**수량**: %.8f\n**평균가**: $%.2f",
			info.OrderID, info.Status, info.Quantity, info.AvgPrice,
		)).
		AddField("포지션", string(info.PositionSide)).
		AddField("reduceOnly", fmt.Sprintf("%t", info.ReduceOnly)).
		AddField("네트워크", network)

	if info.Leverage > 0 {
		embed.AddField("레버리지", fmt.Sprintf("%dx", info.Leverage))
	}

	return c.sendToWebhook(c.tradeWebhook, embed.Message())
}

// sendToWebhook은 메시지를 웹훅으로 전송합니다
func (c *Client) sendToWebhook(webhookURL string, msg WebhookMessage) error {
	if webhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("메시지 마샬링 실패: %w", err)
	}

	resp, err := c.httpClient.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("웹훅 전송 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("웹훅 응답 에러(%d)", resp.StatusCode)
	}

	return nil
}
