package huffman_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/symindex/freq"
	"github.com/katalvlaran/symindex/huffman"
)

// BenchmarkBuildTree measures tree construction over 4096 distinct symbols.
func BenchmarkBuildTree(b *testing.B) {
	const N = 4096
	rng := rand.New(rand.NewSource(1))
	tbl := freq.NewTable(N)
	for i := 0; i < N; i++ {
		_ = tbl.AddN("sym"+strconv.Itoa(i), uint64(1+rng.Intn(10000)))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = huffman.BuildTree(tbl)
	}
}

// BenchmarkBuildCodes measures code assignment on the same table.
func BenchmarkBuildCodes(b *testing.B) {
	const N = 4096
	rng := rand.New(rand.NewSource(1))
	tbl := freq.NewTable(N)
	for i := 0; i < N; i++ {
		_ = tbl.AddN("sym"+strconv.Itoa(i), uint64(1+rng.Intn(10000)))
	}
	root, err := huffman.BuildTree(tbl)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = huffman.BuildCodes(root)
	}
}
