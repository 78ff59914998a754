// Package goroutine запускает фоновые горутины с перехватом panic,
// чтобы необработанная паника в фоне не роняла весь процесс.
package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

// SafeGo запускает fn в горутине; panic логируется вместе со стеком.
func SafeGo(fn func()) {
	go func() {
		defer logPanic()
		fn()
	}()
}

// SafeGoWithContext — то же, но fn получает контекст.
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	go func() {
		defer logPanic()
		fn(ctx)
	}()
}

func logPanic() {
	if r := recover(); r != nil && logger.Log != nil {
		logger.Log.WithField("stack", string(debug.Stack())).
			Errorf("паника в фоновой горутине: %v", r)
	}
}
