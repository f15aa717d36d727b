package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTokenRefresh(t *testing.T) {
	ok := testutil.ToFloat64(TokenRefreshTotal.WithLabelValues("youtube", "ok"))
	failed := testutil.ToFloat64(TokenRefreshTotal.WithLabelValues("youtube", "error"))

	ObserveTokenRefresh("youtube", nil)
	ObserveTokenRefresh("youtube", errors.New("expired"))
	ObserveTokenRefresh("youtube", errors.New("expired"))

	assert.Equal(t, ok+1, testutil.ToFloat64(TokenRefreshTotal.WithLabelValues("youtube", "ok")))
	assert.Equal(t, failed+2, testutil.ToFloat64(TokenRefreshTotal.WithLabelValues("youtube", "error")))
}

func TestMustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.NotPanics(t, func() { MustRegister(reg) })
	assert.Panics(t, func() { MustRegister(reg) })
}
