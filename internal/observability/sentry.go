package observability

import (
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry включает Sentry, если задан DSN. Release берём из build info.
func InitSentry(dsn, env string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	var release string
	if bi, ok := debug.ReadBuildInfo(); ok {
		release = bi.Main.Version
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

func CaptureErr(err error) {
	if err != nil {
		sentry.CaptureException(err)
	}
}
