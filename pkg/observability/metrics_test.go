package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/reflex/pkg/domain"
	"github.com/aretw0/reflex/pkg/observability"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	hooks := m.Hooks()

	ctx := context.Background()
	hooks.OnCommandEnd(ctx, &domain.ActionEvent{
		Command:  "open-browser",
		Success:  true,
		Duration: 50 * time.Millisecond,
	})
	hooks.OnCommandEnd(ctx, &domain.ActionEvent{
		Command: "open-browser",
		Success: false,
	})
	hooks.OnItemFailure(ctx, &domain.ActionEvent{Command: "open-browser"})

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)

	success := testutil.ToFloat64(m.Executions().WithLabelValues("open-browser", "success"))
	failure := testutil.ToFloat64(m.Executions().WithLabelValues("open-browser", "failure"))
	items := testutil.ToFloat64(m.Failures().WithLabelValues("open-browser"))

	assert.Equal(t, 1.0, success)
	assert.Equal(t, 1.0, failure)
	assert.Equal(t, 1.0, items)
}
