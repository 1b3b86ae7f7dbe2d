package observability

import (
	"testing"

	"github.com/aretw0/arbor/pkg/builder"
	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/aretw0/arbor/pkg/visitor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsBuildAndVisit(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	root, err := builder.New(builder.WithReporter(m)).BuildTree(3)
	require.NoError(t, err)
	tree.Accept(root, visitor.NewLeafCounter(m))
	tree.Accept(root, visitor.NewRulesReport(m))

	expected := map[report.EventKind]float64{
		report.EventStateChange:   8,
		report.EventLeafFound:     8,
		report.EventRuleFound:     7,
		report.EventChildRejected: 0,
	}
	for kind, want := range expected {
		assert.Equal(t, want, testutil.ToFloat64(m.events.WithLabelValues(string(kind))), kind)
	}
	assert.Equal(t, float64(8), testutil.ToFloat64(m.states.WithLabelValues("stopping")))
}

func TestMetrics_SeriesExistBeforeEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	events, err := testutil.GatherAndCount(reg, "arbor_events_total")
	require.NoError(t, err)
	assert.Equal(t, 4, events)

	transitions, err := testutil.GatherAndCount(reg, "arbor_builder_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, transitions)
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_RejectedChild(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	leaf := tree.NewLeaf("x", tree.WithReporter(m))
	_ = leaf.AddChild(tree.NewLeaf("y"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.events.WithLabelValues(string(report.EventChildRejected))))
}
