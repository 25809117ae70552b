package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Version is stamped into netonto_build_info
var Version = "dev"

func (r *Registry) initSystemMetrics() {
	r.registry.MustRegister(collectors.NewGoCollector())

	r.BuildInfo = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netonto_build_info",
			Help: "Build information, value is always 1",
		},
		[]string{"version", "goversion"},
	)
	r.BuildInfo.WithLabelValues(Version, runtime.Version()).Set(1)
}
