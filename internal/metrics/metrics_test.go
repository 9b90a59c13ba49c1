package metrics

import (
	"errors"
	"testing"

	"lotto-gate/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_ObserveValidation(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	recorder.ObserveValidation(OperationPrice, nil)
	recorder.ObserveValidation(OperationPrice, nil)
	recorder.ObserveValidation(OperationPrice, model.ErrNotInteger)
	recorder.ObserveValidation(OperationWinningNumbers, model.ErrDuplicatedNumber)
	recorder.ObserveValidation(OperationBonus, errors.New("unexpected"))

	vec := recorder.(*prometheusRecorder).validations

	assert.Equal(t, 2.0, testutil.ToFloat64(vec.WithLabelValues(OperationPrice, ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues(OperationPrice, model.ErrCodeNotInteger)))
	assert.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues(OperationWinningNumbers, model.ErrCodeDuplicatedNumber)))
	assert.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues(OperationBonus, model.ErrCodeInternalError)))
	assert.Equal(t, 4, testutil.CollectAndCount(vec))
}

func TestNewPrometheusRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	_, err = NewPrometheusRecorder(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register validation metrics")
}

func TestNopRecorder(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNopRecorder().ObserveValidation(OperationBonus, model.ErrEmptyInput)
	})
}
