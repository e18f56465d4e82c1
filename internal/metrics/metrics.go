package metrics

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/aretw0/typedcoll/pkg/types"
)

// Failure reasons used as label values.
const (
	ReasonTypeMismatch    = "type_mismatch"
	ReasonKeyTypeMismatch = "key_type_mismatch"
	ReasonInvalidType     = "invalid_type"
	ReasonInvalidKeyType  = "invalid_key_type"
	ReasonUnsupported     = "unsupported_type"
	ReasonIndexOutOfRange = "index_out_of_range"
	ReasonOther           = "other"
)

// Recorder counts container checks on its own registry, so several recorders
// (one per CLI invocation or test) never collide.
type Recorder struct {
	registry *prometheus.Registry
	checks   *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewRecorder creates a recorder with its counters registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typedcoll_container_checks_total",
				Help: "Containers built from manifests, by container kind and result",
			},
			[]string{"kind", "result"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typedcoll_validation_failures_total",
				Help: "Failed container checks, by failure reason",
			},
			[]string{"reason"},
		),
	}
	r.registry.MustRegister(r.checks, r.failures)
	return r
}

// Registry exposes the underlying registry (e.g. for promhttp).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveCheck records the outcome of building one container of the given kind.
func (r *Recorder) ObserveCheck(kind string, err error) {
	if err == nil {
		r.checks.WithLabelValues(kind, "ok").Inc()
		return
	}
	r.checks.WithLabelValues(kind, "failed").Inc()
	r.failures.WithLabelValues(Reason(err)).Inc()
}

// WriteText writes every gathered metric family in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// Reason classifies a validation error into a label value.
// ErrInvalidKeyType may wrap ErrInvalidType, so it is matched first.
func Reason(err error) string {
	switch {
	case errors.Is(err, types.ErrKeyTypeMismatch):
		return ReasonKeyTypeMismatch
	case errors.Is(err, types.ErrTypeMismatch):
		return ReasonTypeMismatch
	case errors.Is(err, types.ErrInvalidKeyType):
		return ReasonInvalidKeyType
	case errors.Is(err, types.ErrInvalidType):
		return ReasonInvalidType
	case errors.Is(err, types.ErrUnsupportedType):
		return ReasonUnsupported
	case errors.Is(err, types.ErrIndexOutOfRange):
		return ReasonIndexOutOfRange
	}
	return ReasonOther
}
