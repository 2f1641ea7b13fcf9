package genmap

import (
	"testing"

	"github.com/aclements/go-perfevent/perfbench"

	"github.com/hupe1980/gendex/genindex"
)

const benchSize = 1 << 12

func benchBackings() map[string]func() Backing[genindex.U64, int] {
	return backings[genindex.U64, int]()
}

func BenchmarkMapInsert(b *testing.B) {
	for name, newBacking := range benchBackings() {
		b.Run(name, func(b *testing.B) {
			m := NewWithBacking[int](newBacking())

			perfbench.Open(b)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m.Insert(genindex.FromIndex[genindex.U64](uint64(i&(benchSize-1))), i)
			}
		})
	}
}

func BenchmarkMapGet(b *testing.B) {
	for name, newBacking := range benchBackings() {
		b.Run(name, func(b *testing.B) {
			m := NewWithBacking[int](newBacking())

			handles := make([]genindex.U64, benchSize)
			for i := range handles {
				handles[i] = genindex.FromIndex[genindex.U64](uint64(i))
				m.Insert(handles[i], i)
			}

			perfbench.Open(b)
			b.ResetTimer()

			var sink int
			for i := 0; i < b.N; i++ {
				v, _ := m.Get(handles[i&(benchSize-1)])
				sink += v
			}
			_ = sink
		})
	}
}
