package main

import (
	"context"
	"fmt"
	"os"
	osSignal "os/signal"
	"syscall"

	"github.com/assist-by/phoenix-futures/internal/cli"
	"github.com/assist-by/phoenix-futures/internal/config"
	"github.com/assist-by/phoenix-futures/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 모의 데모는 API 키가 필요 없지만 로그 설정은 같은 환경변수를 따릅니다
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		return cli.ExitValidation
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, FilePath: cfg.Log.File})
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 생성 실패: %v\n", err)
		return cli.ExitExecution
	}
	defer log.Close()

	ctx, stop := osSignal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cli.RunMockDemo(ctx, os.Args[1:], cli.MockDeps{
		Log:    log,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
}
