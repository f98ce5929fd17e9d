package lighting

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts the work done by the lighting pass.
type Metrics struct {
	LightsActive      prometheus.Gauge
	OccluderTests     prometheus.Counter
	OccludersSelected prometheus.Counter
	MeshRebuilds      prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LightsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lumen",
			Name:      "lights_active",
			Help:      "Enabled lights processed in the last update.",
		}),
		OccluderTests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lumen",
			Name:      "occluder_tests_total",
			Help:      "Hull parts tested against a light's circle.",
		}),
		OccludersSelected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lumen",
			Name:      "occluders_selected_total",
			Help:      "Hulls kept as possible shadow casters for a light.",
		}),
		MeshRebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lumen",
			Name:      "mesh_rebuilds_total",
			Help:      "Shadow meshes rebuilt because a light or hull changed.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.LightsActive, m.OccluderTests, m.OccludersSelected, m.MeshRebuilds)
	}
	return m
}
