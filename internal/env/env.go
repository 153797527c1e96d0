// Package env resolves environment variables that may still be set
// under their pre-rename SKYTALE_ names. Callers pass the current key
// first; legacy keys are honoured with a one-time deprecation warning
// so old deployments keep working while operators migrate.
package env

import (
	"log"
	"os"
	"sync"
)

var (
	warnLogger func(format string, args ...any) = log.Printf
	warnMu     sync.Mutex
	warnedKeys sync.Map
)

// Lookup returns the value of key if it is set. Otherwise the legacy
// keys are consulted in order; the first one present wins and logs a
// deprecation warning once per process.
func Lookup(key string, legacy ...string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	for _, old := range legacy {
		if v, ok := os.LookupEnv(old); ok {
			logDeprecated(old, key)
			return v, true
		}
	}
	return "", false
}

func logDeprecated(oldKey, newKey string) {
	onceIface, _ := warnedKeys.LoadOrStore(oldKey, &sync.Once{})
	once := onceIface.(*sync.Once)
	once.Do(func() {
		warnMu.Lock()
		logger := warnLogger
		warnMu.Unlock()
		logger("%s is deprecated; use %s", oldKey, newKey)
	})
}

// ResetWarningsForTesting clears the cached once guards so tests can verify
// warning behaviour deterministically.
func ResetWarningsForTesting() {
	warnMu.Lock()
	warnedKeys = sync.Map{}
	warnMu.Unlock()
}

// SetWarnLoggerForTesting swaps the logger used for warnings. The returned
// function restores the previous logger and should be deferred in tests.
func SetWarnLoggerForTesting(fn func(format string, args ...any)) (restore func()) {
	warnMu.Lock()
	previous := warnLogger
	warnLogger = fn
	warnMu.Unlock()
	return func() {
		warnMu.Lock()
		warnLogger = previous
		warnMu.Unlock()
	}
}
