package pipeline

// ShardCount returns the number of row-shards to use for a frame of the
// given height, matching spec.md §5's "implementations may shard rows
// across worker threads provided per-shard statistics are combined with
// commutative reductions". A shard never covers fewer than minRowsPerShard
// rows, so small frames stay single-shard.
const minRowsPerShard = 32

func ShardCount(height, maxShards int) int {
	if maxShards < 1 {
		maxShards = 1
	}
	byRows := height / minRowsPerShard
	if byRows < 1 {
		byRows = 1
	}
	if byRows > maxShards {
		byRows = maxShards
	}
	return byRows
}

// RowRange returns the [start, end) row range shard i of n covers for a
// frame of the given height. Ranges are contiguous and exhaustive.
func RowRange(i, n, height int) (start, end int) {
	base := height / n
	rem := height % n
	start = i*base + minInt(i, rem)
	end = start + base
	if i < rem {
		end++
	}
	return start, end
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// shardReduction accumulates per-shard trimmed-statistics inputs (sample
// slices) into one combined slice using a fixed left-to-right
// concatenation order, rather than whatever order shards happen to
// finish in. This is the "fixed reduction tree" spec.md §5 requires
// under deterministic mode: the combination must not depend on shard
// completion order on any given run.
func shardReduction(shardSamples [][]float64) []float64 {
	total := 0
	for _, s := range shardSamples {
		total += len(s)
	}
	out := make([]float64, 0, total)
	for _, s := range shardSamples {
		out = append(out, s...)
	}
	return out
}
