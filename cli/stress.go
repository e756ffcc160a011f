package cli

import (
	"cmp"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-ordered/hashing"
	"github.com/amp-labs/amp-ordered/logger"
	"github.com/amp-labs/amp-ordered/rbtree"
	"github.com/google/uuid"
)

// ErrStressFailed is returned when a stressed tree disagrees with its oracle
// or breaks a red-black invariant.
var ErrStressFailed = errors.New("stress check failed")

const (
	// How many operations run between context checks.
	cancelCheckInterval = 1024
	// How many operations run between progress log lines.
	progressInterval = 1 << 14
)

// StressResult summarizes one tree after a stress run.
type StressResult struct {
	Tree     string
	Elements int
	Height   int
	Digest   uint64
	Stats    rbtree.Stats
}

// Stress runs Config.Trees independent trees through a random insert/remove
// workload on a pool of Config.Workers goroutines. Each tree is owned by a
// single task and checked against a sorted slice holding the same multiset.
type Stress struct {
	Config StressConfig
	// Log defaults to logger.Get(ctx).
	Log *slog.Logger
}

func (s *Stress) validate() error {
	cfg := s.Config

	switch {
	case cfg.Trees <= 0:
		return fmt.Errorf("%w: trees must be positive, got %d", ErrInvalidInput, cfg.Trees)
	case cfg.Ops < 0:
		return fmt.Errorf("%w: ops must not be negative, got %d", ErrInvalidInput, cfg.Ops)
	case cfg.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidInput, cfg.Workers)
	case cfg.KeySpace <= 0:
		return fmt.Errorf("%w: key space must be positive, got %d", ErrInvalidInput, cfg.KeySpace)
	case cfg.Keys != keysInt && cfg.Keys != keysUUID:
		return fmt.Errorf("%w: keys must be %q or %q, got %q", ErrInvalidInput, keysInt, keysUUID, cfg.Keys)
	}

	return nil
}

// Run executes the workload and returns one result per tree, in tree order.
// The first failing tree cancels the rest.
func (s *Stress) Run(ctx context.Context) ([]StressResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	log := s.Log
	if log == nil {
		log = logger.Get(ctx)
	}

	cfg := s.Config

	log.Info("starting stress run",
		"trees", cfg.Trees, "ops", cfg.Ops, "keys", cfg.Keys,
		"keySpace", cfg.KeySpace, "workers", cfg.Workers, "seed", cfg.Seed)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := pond.NewPool(cfg.Workers)
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)
	results := make([]StressResult, cfg.Trees)

	for i := range cfg.Trees {
		name := fmt.Sprintf("stress-%d", i)
		seed := cfg.Seed + uint64(i) //nolint:gosec

		group.SubmitErr(func() error {
			res, err := s.runTree(ctx, log.With("tree", name), name, seed)
			if err != nil {
				log.Error("tree failed", "tree", name, "error", err)
				cancel()

				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.Info("stress run passed", "trees", cfg.Trees)

	return results, nil
}

func (s *Stress) runTree(ctx context.Context, log *slog.Logger, name string, seed uint64) (StressResult, error) {
	rng := rand.New(rand.NewPCG(seed, ^seed)) //nolint:gosec

	if s.Config.Keys == keysUUID {
		keys, err := uuidKeys(seed, s.Config.KeySpace)
		if err != nil {
			return StressResult{}, err
		}

		return exercise(ctx, log, name, keys, s.Config.Ops, rng)
	}

	keys := make([]int, s.Config.KeySpace)
	for i := range keys {
		keys[i] = i
	}

	return exercise(ctx, log, name, keys, s.Config.Ops, rng)
}

// uuidKeys derives n UUID strings from seed so a run can be repeated.
func uuidKeys(seed uint64, n int) ([]string, error) {
	var chachaSeed [32]byte

	binary.LittleEndian.PutUint64(chachaSeed[:], seed)

	src := rand.NewChaCha8(chachaSeed)
	keys := make([]string, n)

	for i := range keys {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return nil, err
		}

		keys[i] = id.String()
	}

	return keys, nil
}

func exercise[K cmp.Ordered](
	ctx context.Context, log *slog.Logger, name string, keys []K, ops int, rng *rand.Rand,
) (StressResult, error) {
	tree := rbtree.NewOrdered[K](rbtree.WithName(name))

	var oracle []K

	for op := range ops {
		if op%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return StressResult{}, err
			}
		}

		if op > 0 && op%progressInterval == 0 {
			log.Debug("progress", "op", op, "elements", tree.Len(), "height", tree.Height())
		}

		key := keys[rng.IntN(len(keys))]
		pos, found := slices.BinarySearch(oracle, key)

		// Two inserts for every removal so the tree keeps growing.
		if rng.IntN(3) < 2 { //nolint:mnd
			tree.Insert(key, rbtree.AlwaysAdd)
			oracle = slices.Insert(oracle, pos, key)

			continue
		}

		if removed := tree.Remove(key); removed != found {
			return StressResult{}, fmt.Errorf("%w: %s op %d: Remove(%v) = %t, want %t",
				ErrStressFailed, name, op, key, removed, found)
		}

		if found {
			oracle = slices.Delete(oracle, pos, pos+1)
		}

		if err := checkShape(tree); err != nil {
			return StressResult{}, fmt.Errorf("%s op %d: %w", name, op, err)
		}
	}

	if err := checkShape(tree); err != nil {
		return StressResult{}, fmt.Errorf("%s: %w", name, err)
	}

	if tree.Len() != len(oracle) {
		return StressResult{}, fmt.Errorf("%w: %s holds %d elements, want %d",
			ErrStressFailed, name, tree.Len(), len(oracle))
	}

	digest := hashing.Sequence(tree.All())
	if want := hashing.Slice(oracle); digest != want {
		return StressResult{}, fmt.Errorf("%w: %s digest %016x, want %016x", ErrStressFailed, name, digest, want)
	}

	return StressResult{
		Tree:     name,
		Elements: tree.Len(),
		Height:   tree.Height(),
		Digest:   digest,
		Stats:    tree.Stats(),
	}, nil
}

// checkShape validates the tree and its height bound of 2*log2(n+1).
func checkShape[K any](tree *rbtree.Tree[K]) error {
	if err := tree.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrStressFailed, err)
	}

	limit := 2 * math.Log2(float64(tree.Len()+1))
	if h := tree.Height(); float64(h) > limit {
		return fmt.Errorf("%w: height %d exceeds %.2f for %d elements", ErrStressFailed, h, limit, tree.Len())
	}

	return nil
}
