package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	TestnetBaseURL = "https://testnet.binancefuture.com"
	MainnetBaseURL = "https://fapi.binance.com"
)

// ErrMissingCredentials는 실거래 명령에 API 키가 없을 때 반환됩니다
var ErrMissingCredentials = errors.New("BINANCE_API_KEY 또는 BINANCE_API_SECRET이 환경변수/.env에 없습니다")

type Config struct {
	// 바이낸스 API 설정
	Binance struct {
		APIKey      string        `envconfig:"BINANCE_API_KEY"`
		SecretKey   string        `envconfig:"BINANCE_API_SECRET"`
		TestnetRaw  string        `envconfig:"BINANCE_FUTURES_TESTNET" default:"true"`
		UseTestnet  bool          `ignored:"true"`
		HTTPTimeout time.Duration `envconfig:"BINANCE_HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
	}

	// 로그 설정
	Log struct {
		// 알 수 없는 레벨은 logger.ParseLevel에서 INFO로 처리됩니다
		Level string `envconfig:"LOG_LEVEL" default:"INFO"`
		File  string `envconfig:"LOG_FILE" default:"bot.log" validate:"required"`
	}

	// 디스코드 웹훅 설정 (선택)
	Discord struct {
		TradeWebhook string `envconfig:"DISCORD_TRADE_WEBHOOK" validate:"omitempty,url"`
		ErrorWebhook string `envconfig:"DISCORD_ERROR_WEBHOOK" validate:"omitempty,url"`
	}
}

// ValidateConfig는 설정이 유효한지 확인합니다.
func ValidateConfig(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			return fmt.Errorf("%s 값이 올바르지 않습니다 (%s)", vErrs[0].Namespace(), vErrs[0].Tag())
		}
		return err
	}
	return nil
}

// LoadConfig는 환경변수에서 설정을 로드합니다.
// envFiles가 비어 있으면 작업 디렉터리의 .env를 읽으며, 파일이 없어도 에러가 아닙니다.
func LoadConfig(envFiles ...string) (*Config, error) {
	// .env 파일 로드
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env 파일 로드 실패: %w", err)
	}

	var cfg Config
	// 환경변수를 구조체로 파싱
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("환경변수 처리 실패: %w", err)
	}
	cfg.Log.Level = strings.ToUpper(strings.TrimSpace(cfg.Log.Level))
	// "true"(대소문자 무시)만 테스트넷입니다. 그 외 값은 모두 메인넷입니다.
	cfg.Binance.UseTestnet = strings.EqualFold(strings.TrimSpace(cfg.Binance.TestnetRaw), "true")

	// 설정값 검증
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("설정값 검증 실패: %w", err)
	}

	return &cfg, nil
}

// RequireCredentials는 서명 요청에 필요한 API 키가 있는지 확인합니다
func (c *Config) RequireCredentials() error {
	if c.Binance.APIKey == "" || c.Binance.SecretKey == "" {
		return ErrMissingCredentials
	}
	return nil
}

// ResolveTestnet은 CLI 값이 없으면 환경변수 설정을 사용합니다
func (c *Config) ResolveTestnet(override *bool) bool {
	if override != nil {
		return *override
	}
	return c.Binance.UseTestnet
}

// BaseURL은 테스트넷 여부에 맞는 선물 API 주소를 반환합니다
func BaseURL(testnet bool) string {
	if testnet {
		return TestnetBaseURL
	}
	return MainnetBaseURL
}
