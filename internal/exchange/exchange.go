// internal/exchange/exchange.go
package exchange

import (
	"context"

	"github.com/assist-by/phoenix-futures/internal/domain"
)

// Exchange는 거래소와의 상호작용을 위한 인터페이스입니다.
// 서명, 전송, 에러 해석은 구현체(거래소 SDK)가 담당합니다.
type Exchange interface {
	// 시간 동기화
	SyncTime(ctx context.Context) error

	// 설정 기능
	ChangeLeverage(ctx context.Context, symbol string, leverage int, recvWindow int64) (*domain.LeverageResult, error)

	// 거래 기능
	PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResponse, error)
}
