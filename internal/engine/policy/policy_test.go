package policy_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.lancet.dev/lancet/internal/core/domain"
	"go.lancet.dev/lancet/internal/core/ports/mocks"
	"go.lancet.dev/lancet/internal/engine/policy"
)

func testConfig(roots ...string) *domain.Config {
	return &domain.Config{
		Roots:     roots,
		Threshold: 50,
		GlobalTriggers: []string{
			"package.json", "pnpm-lock.yaml", "tsconfig*.json", "*.config.js",
		},
	}
}

func newPolicy(t *testing.T) *policy.Policy {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return policy.NewPolicy(log)
}

func radiusOfSize(n int) []string {
	radius := make([]string, n)
	for i := range radius {
		radius[i] = fmt.Sprintf("/repo/src/dep%03d.ts", i)
	}
	return radius
}

func TestDecide_Narrow(t *testing.T) {
	cfg := testConfig("/repo")
	target := "/repo/src/b.ts"

	d := newPolicy(t).Decide(cfg, target, []string{"/repo/src/a.ts"}, nil)

	require.Equal(t, domain.ModeNarrow, d.Mode)
	assert.Equal(t, []string{"/repo/src/a.ts", "/repo/src/b.ts"}, d.Files)
	assert.Equal(t, 2, d.Count)
}

func TestDecide_ThresholdBoundary(t *testing.T) {
	cfg := testConfig("/repo")
	target := "/repo/src/hub.ts"

	// Target plus 49 dependents is exactly the threshold: still NARROW.
	d := newPolicy(t).Decide(cfg, target, radiusOfSize(49), nil)
	assert.Equal(t, domain.ModeNarrow, d.Mode)
	assert.Equal(t, 50, d.Count)

	// One more dependent tips it over: FULL.
	d = newPolicy(t).Decide(cfg, target, radiusOfSize(50), nil)
	assert.Equal(t, domain.ModeFull, d.Mode)
	assert.Contains(t, d.Reason, "threshold")
}

func TestDecide_GlobalTrigger(t *testing.T) {
	cfg := testConfig("/repo")

	tests := []struct {
		name   string
		target string
	}{
		{"exact basename", "/repo/package.json"},
		{"lockfile", "/repo/pnpm-lock.yaml"},
		{"glob pattern", "/repo/tsconfig.base.json"},
		{"config glob", "/repo/vite.config.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newPolicy(t).Decide(cfg, tt.target, nil, nil)
			assert.Equal(t, domain.ModeFull, d.Mode)
			assert.Contains(t, d.Reason, "global trigger")
		})
	}
}

func TestDecide_TriggerBeatsSmallRadius(t *testing.T) {
	cfg := testConfig("/repo")

	// Even a zero-dependent trigger file forces FULL.
	d := newPolicy(t).Decide(cfg, "/repo/package.json", nil, nil)
	assert.Equal(t, domain.ModeFull, d.Mode)
}

func TestDecide_FailSafeOnBuildError(t *testing.T) {
	cfg := testConfig("/repo")

	d := newPolicy(t).Decide(cfg, "/repo/src/a.ts", nil, domain.ErrTargetUnreadable)

	assert.Equal(t, domain.ModeFull, d.Mode)
	assert.Contains(t, d.Reason, "blast radius")
}

func TestDecide_IsolatedTarget(t *testing.T) {
	cfg := testConfig("/repo")
	target := "/repo/src/leaf.ts"

	d := newPolicy(t).Decide(cfg, target, nil, nil)

	require.Equal(t, domain.ModeNarrow, d.Mode)
	assert.Equal(t, []string{target}, d.Files)
	assert.Equal(t, 1, d.Count)
}

func TestDecide_PartitionsBySubProject(t *testing.T) {
	root := "/repo"
	cfg := testConfig(root)

	target := filepath.Join(root, "frontend", "b.ts")
	radius := []string{
		filepath.Join(root, "frontend", "a.ts"),
		filepath.Join(root, "frontend", "views", "c.ts"),
		filepath.Join(root, "backend", "d.ts"),
	}

	d := newPolicy(t).Decide(cfg, target, radius, nil)

	require.Equal(t, domain.ModeNarrow, d.Mode)
	assert.Equal(t, map[string][]string{
		filepath.Join(root, "frontend"): {
			filepath.Join(root, "frontend", "a.ts"),
			filepath.Join(root, "frontend", "b.ts"),
			filepath.Join(root, "frontend", "views", "c.ts"),
		},
		filepath.Join(root, "backend"): {
			filepath.Join(root, "backend", "d.ts"),
		},
	}, d.Partitions)
}

func TestDecide_PartitionRootLevelFile(t *testing.T) {
	root := "/repo"
	cfg := testConfig(root)
	target := filepath.Join(root, "main.ts")

	d := newPolicy(t).Decide(cfg, target, nil, nil)

	require.Equal(t, domain.ModeNarrow, d.Mode)
	assert.Equal(t, map[string][]string{root: {target}}, d.Partitions)
}
