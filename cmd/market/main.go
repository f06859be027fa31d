package main

import (
	"context"
	"fmt"
	"os"
	osSignal "os/signal"
	"syscall"

	"github.com/assist-by/phoenix-futures/internal/cli"
	"github.com/assist-by/phoenix-futures/internal/config"
	"github.com/assist-by/phoenix-futures/internal/exchange"
	eBinance "github.com/assist-by/phoenix-futures/internal/exchange/binance"
	"github.com/assist-by/phoenix-futures/internal/logger"
	"github.com/assist-by/phoenix-futures/internal/notification"
	"github.com/assist-by/phoenix-futures/internal/notification/discord"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		return cli.ExitValidation
	}

	// 로그 설정
	log, err := logger.New(logger.Config{Level: cfg.Log.Level, FilePath: cfg.Log.File})
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 생성 실패: %v\n", err)
		return cli.ExitExecution
	}
	defer log.Close()

	// Ctrl+C 시 진행 중인 요청 취소
	ctx, stop := osSignal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var notifier notification.Notifier = notification.Nop{}
	if cfg.Discord.TradeWebhook != "" || cfg.Discord.ErrorWebhook != "" {
		notifier = discord.NewClient(cfg.Discord.TradeWebhook, cfg.Discord.ErrorWebhook)
	}

	return cli.RunMarket(ctx, os.Args[1:], cli.MarketDeps{
		Config:      cfg,
		Log:         log,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		NewExchange: newBinanceClient,
		Notifier:    notifier,
	})
}

// newBinanceClient는 설정된 API 키로 바이낸스 선물 클라이언트를 만듭니다
func newBinanceClient(cfg *config.Config, testnet bool) exchange.Exchange {
	return eBinance.NewClient(
		cfg.Binance.APIKey,
		cfg.Binance.SecretKey,
		eBinance.WithTimeout(cfg.Binance.HTTPTimeout),
		eBinance.WithTestnet(testnet),
	)
}
