package engine

import (
	"math/rand"
	"sync"

	"github.com/fabtooling/dieyield/internal/domain"
	"github.com/fabtooling/dieyield/internal/geometry"
)

// classify resolves each die's boundary status in place. With workers > 1
// dice are sharded by index; classification has no cross-die dependency,
// so the shards never touch the same element.
func classify(dice []domain.DieInstance, b geometry.Boundary, workers int) {
	if workers <= 1 {
		for i := range dice {
			dice[i].Status = geometry.Classify(dice[i], b)
		}
		return
	}
	forEachShard(len(dice), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dice[i].Status = geometry.Classify(dice[i], b)
		}
	})
}

// injectDefects downgrades Inside dice to Good or Defective with one
// uniform draw per die.
//
// Sequential path (workers <= 1): one generator seeded with seed, consumed
// die-by-die within shot, shot-by-shot in tiling order. Parallel path:
// each die draws from its own generator seeded from (seed, die index), so
// the grid is identical for any worker count. The two paths make different
// draws from each other; reproducibility is per path, per seed.
func injectDefects(dice []domain.DieInstance, fraction float64, seed int64, workers int) {
	if workers <= 1 {
		rng := rand.New(rand.NewSource(seed))
		for i := range dice {
			if dice[i].Status != domain.StatusInside {
				continue
			}
			dice[i].Status = drawStatus(rng.Float64(), fraction)
		}
		return
	}
	forEachShard(len(dice), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if dice[i].Status != domain.StatusInside {
				continue
			}
			rng := rand.New(rand.NewSource(dieSeed(seed, i)))
			dice[i].Status = drawStatus(rng.Float64(), fraction)
		}
	})
}

func drawStatus(draw, fraction float64) domain.DieStatus {
	if draw < fraction {
		return domain.StatusGood
	}
	return domain.StatusDefective
}

// dieSeed mixes the run seed with the die index through a splitmix64
// finalizer so neighboring dice get uncorrelated streams.
func dieSeed(seed int64, index int) int64 {
	z := uint64(seed) + uint64(index+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

// forEachShard splits [0, n) into at most workers contiguous ranges and
// runs fn on each in its own goroutine.
func forEachShard(n, workers int, fn func(lo, hi int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	var wg sync.WaitGroup
	size := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
