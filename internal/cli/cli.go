// Package cli는 market, mockdemo 두 명령의 인자 해석과 실행 흐름을 담당합니다.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

// 종료 코드: 사용자 입력 오류와 실행 오류를 구분합니다
const (
	ExitOK         = 0
	ExitValidation = 1
	ExitExecution  = 2
)

// positional은 SYMBOL SIDE QUANTITY 위치 인자입니다
type positional struct {
	symbol   string
	side     string
	quantity float64
}

func parsePositional(args []string) (positional, error) {
	if len(args) != 3 {
		return positional{}, fmt.Errorf("SYMBOL SIDE QUANTITY 인자 3개가 필요합니다 (입력: %d개)", len(args))
	}
	qty, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return positional{}, fmt.Errorf("quantity를 숫자로 해석할 수 없습니다: %q", args[2])
	}
	return positional{symbol: args[0], side: args[1], quantity: qty}, nil
}

// parseFlags는 플래그를 해석하고 --help 여부를 함께 반환합니다
func parseFlags(fs *pflag.FlagSet, args []string) (help bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func newFlagSet(name, usage string, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s\n\n", usage)
		fs.PrintDefaults()
	}
	return fs
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
