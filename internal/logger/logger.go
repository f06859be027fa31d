// Package logger는 파일과 콘솔에 동시에 기록하는 로거를 제공합니다.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeLayout = "2006-01-02 15:04:05"

// Config는 로거 설정입니다
type Config struct {
	Level    string    // DEBUG, INFO, WARN, ERROR, CRITICAL
	FilePath string    // 추가 기록(append) 로그 파일 경로
	MaxSize  int       // 로그 파일 최대 크기 (MB), 0이면 100MB
	Console  io.Writer // 콘솔 출력 대상, nil이면 stderr
}

// Logger는 zap 로거와 파일 싱크를 함께 관리합니다
type Logger struct {
	*zap.SugaredLogger
	file *lumberjack.Logger
}

// New는 파일/콘솔 싱크를 가진 로거를 생성합니다. 사용 후 Close를 호출해야 합니다.
func New(cfg Config) (*Logger, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("로그 파일 경로가 비어 있습니다")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, fmt.Errorf("로그 디렉터리 생성 실패: %w", err)
	}

	level := ParseLevel(cfg.Level)

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 100
	}
	file := &lumberjack.Logger{
		Filename: cfg.FilePath,
		MaxSize:  maxSize,
	}

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	enc := zapcore.NewConsoleEncoder(encoderConfig())
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(file), level),
		zapcore.NewCore(enc.Clone(), zapcore.AddSync(console), level),
	)

	l := zap.New(core)
	l.Debug("로거 초기화 완료", zap.String("path", cfg.FilePath))

	return &Logger{SugaredLogger: l.Sugar(), file: file}, nil
}

// Named는 이름이 붙은 하위 로거를 반환합니다. 파일 싱크는 공유합니다.
func (l *Logger) Named(name string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(name), file: l.file}
}

// Close는 버퍼를 비우고 로그 파일을 닫습니다
func (l *Logger) Close() error {
	// 콘솔이 터미널일 때 Sync가 EINVAL을 반환할 수 있어 무시합니다
	_ = l.Sync()
	return l.file.Close()
}

// Nop은 아무것도 기록하지 않는 로거를 반환합니다 (테스트용)
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar(), file: &lumberjack.Logger{}}
}

// ParseLevel은 LOG_LEVEL 문자열을 zap 레벨로 변환합니다. 알 수 없는 값은 INFO입니다.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "CRITICAL", "FATAL":
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// encoderConfig는 "시간 | 레벨 | 이름 | 메시지" 형식을 만듭니다
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " | ",
	}
}
