package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/pkg/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(format string, depth int) (Options, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Options{
		Out:      &out,
		Err:      &errOut,
		MaxDepth: depth,
		Format:   format,
	}, &out, &errOut
}

func TestRunDemo(t *testing.T) {
	opts, out, _ := testOptions(config.FormatText, 2)
	require.NoError(t, RunDemo(opts))

	got := out.String()
	walk := []string{
		"[Decision] Decision 1 (root)",
		"[Decision] Decision 2 (left)",
		"[Leaf] Result: Leaf A",
		"[Leaf] Result: Leaf B",
		"[Leaf] Result: Class C (right)",
	}
	last := -1
	for _, line := range walk {
		idx := strings.Index(got, line)
		require.GreaterOrEqual(t, idx, 0, "missing %q", line)
		assert.Greater(t, idx, last, "%q out of order", line)
		last = idx
	}

	assert.Contains(t, got, "Total leaves: 3")
	assert.Contains(t, got, "Rule identified: Decision 1 (root)")
	assert.Contains(t, got, "warning: Cannot attach child")
	assert.Equal(t, 3, strings.Count(got, "Rule identified: feature_"), "depth 2 build has 3 rules")
	assert.NotContains(t, got, "\x1b[")
}

func TestRunDemo_DebugLogsToErr(t *testing.T) {
	opts, _, errOut := testOptions(config.FormatText, 1)
	opts.Debug = true
	require.NoError(t, RunDemo(opts))

	assert.Contains(t, errOut.String(), "level=DEBUG")
	assert.Contains(t, errOut.String(), "level=WARN")
}

func TestRunBuild_Text(t *testing.T) {
	opts, out, _ := testOptions(config.FormatText, 2)
	require.NoError(t, RunBuild(opts))

	got := out.String()
	assert.Contains(t, got, "[Decision] feature_0 <= 0.5\n  [Decision] feature_1 <= 0.5\n    [Leaf] Result: class_2\n")
	assert.Contains(t, got, "3 decisions, 4 leaves, depth 2")
	assert.Equal(t, 4, strings.Count(got, "State changed: splitting -> stopping"))
}

func TestRunBuild_Mermaid(t *testing.T) {
	opts, out, _ := testOptions(config.FormatMermaid, 1)
	opts.Highlight = []string{"class_1"}
	require.NoError(t, RunBuild(opts))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "graph TD\n"))
	assert.Contains(t, got, `n0{"feature_0 <= 0.5"}`)
	assert.Contains(t, got, "class n1 highlighted;")
	assert.NotContains(t, got, "State changed")
}

func TestRunBuild_Markdown(t *testing.T) {
	opts, out, _ := testOptions(config.FormatMarkdown, 1)
	require.NoError(t, RunBuild(opts))

	assert.Equal(t, "# Decision tree (depth 1)\n\n- **if** `feature_0 <= 0.5`\n  - class_1\n  - class_1\n", out.String())
}

func TestRunBuild_Errors(t *testing.T) {
	opts, _, _ := testOptions(config.FormatText, -1)
	assert.ErrorIs(t, RunBuild(opts), builder.ErrInvalidDepth)

	opts, _, _ = testOptions("svg", 1)
	assert.ErrorIs(t, RunBuild(opts), config.ErrInvalidConfig)
}
