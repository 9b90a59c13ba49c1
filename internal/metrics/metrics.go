package metrics

import (
	"fmt"

	"lotto-gate/internal/model"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation names used as the "operation" label.
const (
	OperationPrice          = "price"
	OperationWinningNumbers = "winning_numbers"
	OperationBonus          = "bonus"
)

// ResultOK is the "result" label for accepted input.
const ResultOK = "ok"

// Recorder records validation outcomes.
type Recorder interface {
	// ObserveValidation records the outcome of one validation call.
	// A nil err counts as accepted.
	ObserveValidation(operation string, err error)
}

// prometheusRecorder implements Recorder with a Prometheus counter vector.
type prometheusRecorder struct {
	validations *prometheus.CounterVec
}

// NewPrometheusRecorder creates a recorder and registers its collectors with reg.
func NewPrometheusRecorder(reg prometheus.Registerer) (Recorder, error) {
	validations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lotto",
			Name:      "validations_total",
			Help:      "Number of lotto input validations by operation and result.",
		},
		[]string{"operation", "result"},
	)

	if err := reg.Register(validations); err != nil {
		return nil, fmt.Errorf("failed to register validation metrics: %w", err)
	}

	return &prometheusRecorder{validations: validations}, nil
}

// ObserveValidation increments the counter for operation and the error code.
func (r *prometheusRecorder) ObserveValidation(operation string, err error) {
	r.validations.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return ResultOK
	}
	if code, ok := model.CodeOf(err); ok {
		return code
	}
	return model.ErrCodeInternalError
}

type nopRecorder struct{}

// NewNopRecorder returns a recorder that discards everything.
func NewNopRecorder() Recorder {
	return nopRecorder{}
}

func (nopRecorder) ObserveValidation(string, error) {}
