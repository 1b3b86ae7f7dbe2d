package builder_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/aretw0/arbor/pkg/builder"
	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/aretw0/arbor/pkg/visitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree_Completeness(t *testing.T) {
	for n := 0; n <= 10; n++ {
		t.Run(fmt.Sprintf("max_depth=%d", n), func(t *testing.T) {
			rec := report.NewRecorder()
			b := builder.New(builder.WithReporter(rec))

			root, err := b.BuildTree(n)
			require.NoError(t, err)

			stats := visitor.Measure(root)
			assert.Equal(t, 1<<n, stats.Leaves)
			assert.Equal(t, (1<<n)-1, stats.Decisions)
			assert.Equal(t, n, stats.Depth)
			assert.Equal(t, stats.Leaves, visitor.CountLeaves(root))

			assert.Equal(t, builder.StateStopping, b.State())
			assert.Len(t, rec.OfKind(report.EventStateChange), 1<<n, "one recorded transition per leaf")
		})
	}
}

func TestBuildTree_ScenarioB_ZeroDepthIsLeaf(t *testing.T) {
	root, err := builder.New().BuildTree(0)
	require.NoError(t, err)

	leaf, ok := root.(*tree.Leaf)
	require.True(t, ok, "root should be a leaf, got %s", root)
	assert.Equal(t, "class_0", leaf.Value())

	stats := visitor.Measure(root)
	assert.Equal(t, 1, stats.Leaves)
	assert.Equal(t, 0, stats.Decisions)
}

func TestBuildTree_ScenarioC_LeftBeforeRight(t *testing.T) {
	root, err := builder.New().BuildTree(2)
	require.NoError(t, err)

	d, ok := root.(*tree.Decision)
	require.True(t, ok)
	require.Equal(t, 2, d.Len())

	order := tree.Collect(root)
	require.Len(t, order, 7)
	assert.Same(t, root, order[0])

	left := tree.Collect(d.Children()[0])
	right := tree.Collect(d.Children()[1])
	assert.Equal(t, left, order[1:1+len(left)])
	assert.Equal(t, right, order[1+len(left):])

	want := []string{
		"feature_0 <= 0.5",
		"feature_1 <= 0.5", "class_2", "class_2",
		"feature_1 <= 0.5", "class_2", "class_2",
	}
	got := make([]string, len(order))
	for i, n := range order {
		got[i] = n.Label()
	}
	assert.Equal(t, want, got)
}

func TestBuildTree_NegativeDepth(t *testing.T) {
	rec := report.NewRecorder()
	b := builder.New(builder.WithReporter(rec))

	root, err := b.BuildTree(-1)
	assert.ErrorIs(t, err, builder.ErrInvalidDepth)
	assert.Nil(t, root)
	assert.Equal(t, builder.StateSplitting, b.State())
	assert.Zero(t, rec.Len())
}

func TestBuildTree_ReuseWithoutReset(t *testing.T) {
	b := builder.New()
	_, err := b.BuildTree(3)
	require.NoError(t, err)

	again, err := b.BuildTree(3)
	require.NoError(t, err)
	assert.Equal(t, tree.KindLeaf, again.Kind(), "a finished builder stays in its terminal state")

	b.Reset()
	fresh, err := b.BuildTree(3)
	require.NoError(t, err)
	assert.Equal(t, 8, visitor.CountLeaves(fresh))
}

func TestBuildTree_ExplicitPruning(t *testing.T) {
	rec := report.NewRecorder()
	b := builder.New(builder.WithReporter(rec))
	require.NoError(t, b.SetState(builder.StatePruning))

	root, err := b.BuildTree(4)
	require.NoError(t, err)

	assert.Equal(t, tree.KindLeaf, root.Kind())
	assert.Equal(t, builder.PrunedValue, root.Label())
	assert.Equal(t, []string{"pruning"}, rec.Subjects(report.EventStateChange))
}

func TestBuildTree_CustomPolicyPrunesRightmostBranch(t *testing.T) {
	calls := 0
	policy := func(current builder.State, depth, maxDepth int) builder.State {
		calls++
		if depth == 1 && calls > 2 {
			return builder.StatePruning
		}
		return builder.DefaultPolicy(current, depth, maxDepth)
	}

	root, err := builder.New(builder.WithPolicy(policy)).BuildTree(2)
	require.NoError(t, err)

	d := root.(*tree.Decision)
	assert.Equal(t, tree.KindDecision, d.Children()[0].Kind())
	assert.Equal(t, builder.PrunedValue, d.Children()[1].Label())
	assert.Equal(t, 3, visitor.CountLeaves(root))
}

func TestBuildTree_RunawayPolicyHitsLimit(t *testing.T) {
	alwaysSplit := func(builder.State, int, int) builder.State { return builder.StateSplitting }

	b := builder.New(builder.WithPolicy(alwaysSplit), builder.WithRecursionLimit(3))
	_, err := b.BuildTree(2)
	assert.ErrorIs(t, err, builder.ErrRecursionLimit)
}

func TestBuildTree_InvalidPolicyState(t *testing.T) {
	bogus := func(builder.State, int, int) builder.State { return "growing" }

	_, err := builder.New(builder.WithPolicy(bogus)).BuildTree(1)
	assert.ErrorIs(t, err, builder.ErrInvalidState)
}

func TestSetState_Invalid(t *testing.T) {
	b := builder.New()
	assert.ErrorIs(t, b.SetState("growing"), builder.ErrInvalidState)
	assert.Equal(t, builder.StateSplitting, b.State())
}

func TestBuildTree_CustomLabels(t *testing.T) {
	b := builder.New(
		builder.WithConditionLabel(func(d int) string { return fmt.Sprintf("x%d > 0", d) }),
		builder.WithLeafLabel(func(d int) string { return fmt.Sprintf("y%d", d) }),
	)
	root, err := b.BuildTree(1)
	require.NoError(t, err)

	var got []string
	for n := range tree.Walk(root) {
		got = append(got, n.String())
	}
	assert.Equal(t, []string{"[Decision] x0 > 0", "[Leaf] Result: y1", "[Leaf] Result: y1"}, got)
}

func TestBuildTree_NodesShareReporter(t *testing.T) {
	rec := report.NewRecorder()
	root, err := builder.New(builder.WithReporter(rec)).BuildTree(1)
	require.NoError(t, err)
	rec.Reset()

	leaf := root.(*tree.Decision).Children()[0]
	assert.ErrorIs(t, leaf.AddChild(tree.NewLeaf("x")), tree.ErrLeafChildren)
	assert.Len(t, rec.OfKind(report.EventChildRejected), 1)
}

func TestBuildTree_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := builder.New(builder.WithLogger(logger)).BuildTree(1)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Building tree")
	assert.Contains(t, out, "from=splitting to=stopping")
}

func TestDefaultPolicy(t *testing.T) {
	tests := []struct {
		current  builder.State
		depth    int
		maxDepth int
		want     builder.State
	}{
		{builder.StateSplitting, 0, 2, builder.StateSplitting},
		{builder.StateSplitting, 2, 2, builder.StateStopping},
		{builder.StateSplitting, 3, 2, builder.StateStopping},
		{builder.StateStopping, 0, 2, builder.StateStopping},
		{builder.StatePruning, 5, 2, builder.StatePruning},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s@%d/%d", tt.current, tt.depth, tt.maxDepth), func(t *testing.T) {
			assert.Equal(t, tt.want, builder.DefaultPolicy(tt.current, tt.depth, tt.maxDepth))
		})
	}
}

func TestState(t *testing.T) {
	assert.False(t, builder.StateSplitting.IsTerminal())
	assert.True(t, builder.StateStopping.IsTerminal())
	assert.True(t, builder.StatePruning.IsTerminal())
	assert.True(t, builder.StatePruning.IsValid())
	assert.False(t, builder.State("").IsValid())
}
