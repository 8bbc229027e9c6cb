package probemap

import (
	"fmt"
	"testing"
)

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("bench-key-%d", i)
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	keys := benchKeys(10_000)
	b.ReportAllocs()
	b.ResetTimer()

	i := 0
	tbl, _ := New()
	for n := 0; n < b.N; n++ {
		tbl.Insert(keys[i%len(keys)], "value")
		i++
	}
}

func BenchmarkSearchHit(b *testing.B) {
	keys := benchKeys(10_000)
	tbl, _ := New()
	for _, k := range keys {
		tbl.Insert(k, "value")
	}
	b.ReportAllocs()
	b.ResetTimer()

	i := 0
	for n := 0; n < b.N; n++ {
		if _, ok := tbl.Search(keys[i%len(keys)]); !ok {
			b.Fatal("unexpected miss")
		}
		i++
	}
}

func BenchmarkSearchMiss(b *testing.B) {
	keys := benchKeys(10_000)
	tbl, _ := New()
	for _, k := range keys {
		tbl.Insert(k, "value")
	}
	b.ReportAllocs()
	b.ResetTimer()

	i := 0
	for n := 0; n < b.N; n++ {
		if _, ok := tbl.Search(fmt.Sprintf("absent-%d", i)); ok {
			b.Fatal("unexpected hit")
		}
		i++
	}
}
