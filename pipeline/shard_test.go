package pipeline

import "testing"

func TestShardCountRespectsMinRows(t *testing.T) {
	if got := ShardCount(16, 8); got != 1 {
		t.Errorf("ShardCount(16,8) = %d, want 1", got)
	}
	if got := ShardCount(320, 8); got != 8 {
		t.Errorf("ShardCount(320,8) = %d, want 8", got)
	}
}

func TestRowRangeIsContiguousAndExhaustive(t *testing.T) {
	const height = 100
	n := ShardCount(height, 4)
	covered := make([]bool, height)
	for i := 0; i < n; i++ {
		start, end := RowRange(i, n, height)
		if start < 0 || end > height || start > end {
			t.Fatalf("shard %d range [%d,%d) invalid", i, start, end)
		}
		for r := start; r < end; r++ {
			if covered[r] {
				t.Fatalf("row %d covered by more than one shard", r)
			}
			covered[r] = true
		}
	}
	for r, c := range covered {
		if !c {
			t.Fatalf("row %d not covered by any shard", r)
		}
	}
}

func TestShardReductionPreservesOrderAndCount(t *testing.T) {
	shards := [][]float64{{1, 2}, {3}, {4, 5, 6}}
	got := shardReduction(shards)
	want := []float64{1, 2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
