package cli

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/amp-labs/amp-ordered/rbtree"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallStress() StressConfig {
	cfg := DefaultConfig().Stress
	cfg.Trees = 3
	cfg.Ops = 2000
	cfg.KeySpace = 64
	cfg.Workers = 2

	return cfg
}

func TestStress_Run(t *testing.T) {
	t.Parallel()

	t.Run("int keys", func(t *testing.T) {
		t.Parallel()

		results, err := (&Stress{Config: smallStress(), Log: slogt.New(t)}).Run(t.Context())
		require.NoError(t, err)
		require.Len(t, results, 3)

		for i, r := range results {
			assert.Equal(t, []string{"stress-0", "stress-1", "stress-2"}[i], r.Tree)
			assert.Positive(t, r.Elements)
			assert.Positive(t, r.Height)
			assert.Positive(t, r.Stats.Inserts)
			assert.Positive(t, r.Stats.Removals)
		}
	})

	t.Run("same seed same content", func(t *testing.T) {
		t.Parallel()

		cfg := smallStress()
		cfg.Keys = keysUUID
		cfg.Seed = 42

		first, err := (&Stress{Config: cfg, Log: slogt.New(t)}).Run(t.Context())
		require.NoError(t, err)

		second, err := (&Stress{Config: cfg, Log: slogt.New(t)}).Run(t.Context())
		require.NoError(t, err)

		for i := range first {
			assert.Equal(t, first[i].Digest, second[i].Digest)
			assert.Equal(t, first[i].Elements, second[i].Elements)
		}

		assert.NotEqual(t, first[0].Digest, first[1].Digest)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := (&Stress{Config: smallStress(), Log: slogt.New(t)}).Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		for _, mutate := range []func(*StressConfig){
			func(c *StressConfig) { c.Trees = 0 },
			func(c *StressConfig) { c.Ops = -1 },
			func(c *StressConfig) { c.Workers = 0 },
			func(c *StressConfig) { c.KeySpace = 0 },
			func(c *StressConfig) { c.Keys = "float" },
		} {
			cfg := smallStress()
			mutate(&cfg)

			_, err := (&Stress{Config: cfg, Log: slogt.New(t)}).Run(t.Context())
			require.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}

func TestUUIDKeys(t *testing.T) {
	t.Parallel()

	first, err := uuidKeys(7, 10)
	require.NoError(t, err)

	second, err := uuidKeys(7, 10)
	require.NoError(t, err)

	other, err := uuidKeys(8, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)

	for _, k := range first {
		id, err := uuid.Parse(k)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
	}
}

func TestCheckShape(t *testing.T) {
	t.Parallel()

	tree := rbtree.NewOrdered[int]()
	for i := range 1000 {
		tree.Insert(i, rbtree.AlwaysAdd)
		require.NoError(t, checkShape(tree))
	}
}

func TestServeMetrics(t *testing.T) {
	t.Parallel()

	tree := rbtree.NewOrdered[int](rbtree.WithName("cli-metrics-test"))
	tree.Insert(1, rbtree.AlwaysAdd)

	addr, stop, err := serveMetrics(t.Context(), slogt.New(t), "127.0.0.1:0")
	require.NoError(t, err)

	defer stop()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://"+addr+metricsPath, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `rbtree_elements{tree="cli-metrics-test"} 1`)
}
