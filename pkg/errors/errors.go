package errorsUtils

import (
	"fmt"
	"runtime"
)

// WrapPathErr prefixes err with the calling function and line. The original
// error stays in the chain, so errors.Is/As keep working.
func WrapPathErr(err error) error {
	if err == nil {
		return nil
	}
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}

// WrapPathErrf is WrapPathErr with an extra formatted context message.
func WrapPathErrf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %s: %w", fn, line, fmt.Sprintf(format, args...), err)
}
