// Package metrics counts store events with Prometheus counters.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"securedb/internal/domain"
	"securedb/internal/events"
)

// Subscriber is anything events can be subscribed on: a *store.Store or an
// *events.Bus.
type Subscriber interface {
	Subscribe(kind events.Kind, h events.Handler)
}

// Collector holds the securedb counters.
type Collector struct {
	Events *prometheus.CounterVec
	Errors *prometheus.CounterVec
}

// New returns unregistered counters.
func New() *Collector {
	return &Collector{
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "securedb",
			Name:      "events_total",
			Help:      "Store notifications by kind",
		}, []string{"kind"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "securedb",
			Name:      "errors_total",
			Help:      "Load and save failures by cause",
		}, []string{"cause"}),
	}
}

// Register adds the counters to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.Events, c.Errors} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// Attach subscribes the collector to every event kind of sub.
func (c *Collector) Attach(sub Subscriber) {
	for _, k := range events.Kinds {
		sub.Subscribe(k, c.Handle)
	}
}

// Handle counts one event.
func (c *Collector) Handle(e events.Event) {
	c.Events.WithLabelValues(e.Kind.String()).Inc()
	if e.Kind == events.Error {
		c.Errors.WithLabelValues(cause(e.Err)).Inc()
	}
}

func cause(err error) string {
	switch {
	case errors.Is(err, domain.ErrIO):
		return "io"
	case errors.Is(err, domain.ErrDecryption):
		return "decryption"
	case errors.Is(err, domain.ErrSerialization):
		return "serialization"
	default:
		return "other"
	}
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
