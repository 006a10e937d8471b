package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PrimaryAdmins = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "shopbot", Name: "primary_admins", Help: "Configured primary admin IDs",
	})
	SecondaryAdmins = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "shopbot", Name: "secondary_admins", Help: "Configured secondary admin IDs",
	})
	BasketTimeoutSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "shopbot", Name: "basket_timeout_seconds", Help: "Resolved basket timeout",
	})
	MediaProbe = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shopbot", Name: "media_probe_seconds", Help: "Media dir write probe latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(PrimaryAdmins, SecondaryAdmins, BasketTimeoutSeconds, MediaProbe)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveMediaProbe(d time.Duration) { MediaProbe.Observe(d.Seconds()) }

// SetConfig публикует значения резолвнутой конфигурации.
func SetConfig(primary, secondary int, basketTimeout time.Duration) {
	PrimaryAdmins.Set(float64(primary))
	SecondaryAdmins.Set(float64(secondary))
	BasketTimeoutSeconds.Set(basketTimeout.Seconds())
}
