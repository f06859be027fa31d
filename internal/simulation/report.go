package simulation

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/assist-by/phoenix-futures/internal/domain"
)

// Report는 출력 가능한 모의 실행 결과입니다
type Report interface {
	Render(w io.Writer) error
}

// MarketReport는 시장가 주문 체결 결과입니다
type MarketReport struct {
	OrderID       int64
	Status        string
	ExecutedQty   decimal.Decimal
	ExecutedPrice decimal.Decimal
	Commission    decimal.Decimal
	TotalValue    decimal.Decimal
}

// LimitReport는 대기 중인 지정가 주문입니다
type LimitReport struct {
	OrderID     int64
	Status      string
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	TimeInForce domain.TimeInForce
}

// OCOReport는 지정가+스탑 주문 쌍입니다
type OCOReport struct {
	OrderListID     int64
	ContingencyType string
	ListStatus      string
	LimitPrice      decimal.Decimal
	StopPrice       decimal.Decimal
	Quantity        decimal.Decimal
}

// Fill은 TWAP 슬라이스 또는 그리드 레벨 하나의 결과입니다
type Fill struct {
	Index    int
	OrderID  int64
	Price    decimal.Decimal
	Quantity decimal.Decimal
	Filled   bool
}

// TWAPReport는 TWAP 실행 결과입니다
type TWAPReport struct {
	TotalQty   decimal.Decimal
	Slices     int
	SliceQty   decimal.Decimal
	Interval   time.Duration
	Fills      []Fill
	Successful int
}

// SuccessRate는 성공한 슬라이스 비율(%)을 반환합니다
func (r *TWAPReport) SuccessRate() float64 {
	return successRate(r.Successful, r.Slices)
}

// GridReport는 그리드 전략 실행 결과입니다
type GridReport struct {
	Lower       decimal.Decimal
	Upper       decimal.Decimal
	Levels      int
	Step        decimal.Decimal
	QtyPerLevel decimal.Decimal
	Fills       []Fill
	Successful  int
}

// SuccessRate는 성공한 그리드 주문 비율(%)을 반환합니다
func (r *GridReport) SuccessRate() float64 {
	return successRate(r.Successful, r.Levels)
}

func successRate(ok, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(ok) / float64(total) * 100
}

// 통화 표기는 천 단위 구분 기호를 사용합니다 (예: $60,123.00)
var printer = message.NewPrinter(language.English)

func usd(d decimal.Decimal) string {
	return printer.Sprintf("$%.2f", d.InexactFloat64())
}

// 출력 버퍼를 모아 한 번에 쓰기 위한 헬퍼
type lines struct {
	buf bytes.Buffer
}

func (l *lines) add(format string, args ...any) {
	fmt.Fprintf(&l.buf, format, args...)
	l.buf.WriteByte('\n')
}

func (l *lines) blank() {
	l.buf.WriteByte('\n')
}

func (l *lines) flush(w io.Writer) error {
	_, err := w.Write(l.buf.Bytes())
	return err
}

// Render는 시장가 체결 리포트를 출력합니다
func (r *MarketReport) Render(w io.Writer) error {
	var l lines
	l.add("Market Order Executed")
	l.add("Order ID: %d", r.OrderID)
	l.add("Status: %s", r.Status)
	l.add("Executed Qty: %s", r.ExecutedQty)
	l.add("Executed Price: %s", usd(r.ExecutedPrice))
	l.add("Commission: $%s", r.Commission.StringFixed(4))
	l.add("Total Value: %s", usd(r.TotalValue))
	return l.flush(w)
}

// Render는 지정가 주문 리포트를 출력합니다
func (r *LimitReport) Render(w io.Writer) error {
	var l lines
	l.add("Limit Order Placed")
	l.add("Order ID: %d", r.OrderID)
	l.add("Status: %s", r.Status)
	l.add("Price: %s", usd(r.Price))
	l.add("Quantity: %s", r.Quantity)
	l.add("Time in Force: %s", r.TimeInForce)
	l.add("Note: Order is waiting to be filled at %s", usd(r.Price))
	return l.flush(w)
}

// Render는 OCO 주문 리포트를 출력합니다
func (r *OCOReport) Render(w io.Writer) error {
	var l lines
	l.add("OCO Order Placed")
	l.add("Order List ID: %d", r.OrderListID)
	l.add("Contingency Type: %s", r.ContingencyType)
	l.add("List Status: %s", r.ListStatus)
	l.add("Limit Price: %s", usd(r.LimitPrice))
	l.add("Stop Price: %s", usd(r.StopPrice))
	l.add("Quantity: %s", r.Quantity)
	return l.flush(w)
}

// Render는 TWAP 실행 리포트를 출력합니다
func (r *TWAPReport) Render(w io.Writer) error {
	var l lines
	l.add("TWAP Strategy Started")
	l.add("Total Quantity: %s", r.TotalQty)
	l.add("Slices: %d", r.Slices)
	l.add("Slice Quantity: %s", r.SliceQty)
	l.add("Interval: %s", r.Interval)
	l.blank()

	for _, f := range r.Fills {
		if f.Filled {
			l.add("Slice %d/%d: %s @ %s - Order ID: %d", f.Index, r.Slices, f.Quantity, usd(f.Price), f.OrderID)
		} else {
			l.add("Slice %d/%d: Failed", f.Index, r.Slices)
		}
	}

	l.blank()
	l.add("TWAP Summary:")
	l.add("Successful slices: %d/%d", r.Successful, r.Slices)
	l.add("Success rate: %.1f%%", r.SuccessRate())
	return l.flush(w)
}

// Render는 그리드 전략 리포트를 출력합니다
func (r *GridReport) Render(w io.Writer) error {
	var l lines
	l.add("Grid Strategy Started")
	l.add("Price Range: %s - %s", usd(r.Lower), usd(r.Upper))
	l.add("Grid Levels: %d", r.Levels)
	l.add("Grid Step: $%s", r.Step.StringFixed(2))
	l.add("Quantity per Grid: %s", r.QtyPerLevel)
	l.blank()

	for _, f := range r.Fills {
		if f.Filled {
			l.add("Grid %d/%d: %s @ %s - Order ID: %d", f.Index, r.Levels, f.Quantity, usd(f.Price), f.OrderID)
		} else {
			l.add("Grid %d/%d: @ %s - Failed", f.Index, r.Levels, usd(f.Price))
		}
	}

	l.blank()
	l.add("Grid Summary:")
	l.add("Successful orders: %d/%d", r.Successful, r.Levels)
	l.add("Success rate: %.1f%%", r.SuccessRate())
	return l.flush(w)
}
