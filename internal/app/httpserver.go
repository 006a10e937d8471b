package app

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/mkarpenko/telegram-shop-bot/internal/metrics"
)

type HTTPServer struct {
	srv *http.Server
}

// StartHTTP поднимает служебный сервер: /healthz проверяет, что диск с медиа
// примонтирован и доступен на запись, /metrics отдаёт prometheus.
func StartHTTP(ctx context.Context, addr, mediaDir string) *HTTPServer {
	srv := &http.Server{Addr: addr, Handler: newMux(mediaDir)}

	go func() {
		_ = srv.ListenAndServe() // закрываем аккуратно при Shutdown
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	return &HTTPServer{srv: srv}
}

func newMux(mediaDir string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		t0 := time.Now()
		if err := probeDir(mediaDir); err != nil {
			http.Error(w, "media dir not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		metrics.ObserveMediaProbe(time.Since(t0))
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())

	return mux
}

// probeDir пишет и удаляет временный файл: проверяем и существование, и права.
func probeDir(dir string) error {
	f, err := os.CreateTemp(dir, ".healthz-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
