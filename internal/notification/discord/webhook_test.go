package discord

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/phoenix-futures/internal/domain"
	"github.com/assist-by/phoenix-futures/internal/notification"
)

func newWebhookServer(t *testing.T, status int) (*httptest.Server, *[]WebhookMessage, *[]string) {
	var msgs []WebhookMessage
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg WebhookMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		msgs = append(msgs, msg)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &msgs, &paths
}

func TestClient_SendTradeInfo(t *testing.T) {
	srv, msgs, paths := newWebhookServer(t, http.StatusNoContent)
	c := NewClient(srv.URL+"/trade", srv.URL+"/error")

	err := c.SendTradeInfo(notification.TradeInfo{
		Symbol:       "BTCUSDT",
		Side:         domain.Buy,
		PositionSide: domain.BothPosition,
		Quantity:     0.01,
		OrderID:      123,
		Status:       "FILLED",
		Leverage:     10,
		Testnet:      true,
	})
	require.NoError(t, err)

	require.Len(t, *msgs, 1)
	assert.Equal(t, "/trade", (*paths)[0])

	embed := (*msgs)[0].Embeds[0]
	assert.Equal(t, "MARKET BUY BTCUSDT", embed.Title)
	assert.Equal(t, notification.ColorSuccess, embed.Color)
	assert.Contains(t, embed.Description, "123")
	assert.Len(t, embed.Fields, 4)
	assert.Equal(t, "TESTNET", embed.Fields[2].Value)
}

func TestClient_SendErrorFallsBackToTradeWebhook(t *testing.T) {
	srv, msgs, paths := newWebhookServer(t, http.StatusOK)
	c := NewClient(srv.URL+"/trade", "")

	require.NoError(t, c.SendError(errors.New("margin is insufficient")))

	require.Len(t, *msgs, 1)
	assert.Equal(t, "/trade", (*paths)[0])
	assert.Equal(t, notification.ColorError, (*msgs)[0].Embeds[0].Color)
	assert.Contains(t, (*msgs)[0].Embeds[0].Description, "margin is insufficient")
}

func TestClient_ErrorWebhookOnly(t *testing.T) {
	srv, msgs, paths := newWebhookServer(t, http.StatusNoContent)
	c := NewClient("", srv.URL+"/error")

	require.NoError(t, c.SendTradeInfo(notification.TradeInfo{Symbol: "BTCUSDT", Side: domain.Sell}))
	assert.Empty(t, *msgs)

	require.NoError(t, c.SendError(errors.New("boom")))
	require.Len(t, *msgs, 1)
	assert.Equal(t, "/error", (*paths)[0])
}

func TestClient_WebhookErrorStatus(t *testing.T) {
	srv, _, _ := newWebhookServer(t, http.StatusTooManyRequests)
	c := NewClient(srv.URL, "")

	err := c.SendTradeInfo(notification.TradeInfo{Symbol: "ETHUSDT", Side: domain.Sell})
	assert.Error(t, err)
}
