package common

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/status-im/wc-signer/logutils"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch reflect.TypeOf(i).Kind() {
	case reflect.Ptr, reflect.Interface:
		return reflect.ValueOf(i).IsNil()
	}
	return false
}

// LogOnPanic logs a recovered panic with its stack and re-panics.
// Deferred at the top of every goroutine.
func LogOnPanic() {
	if err := recover(); err != nil {
		logutils.ZapLogger().Error("panic in goroutine", zap.Any("error", err), zap.Stack("stacktrace"))
		panic(err)
	}
}
