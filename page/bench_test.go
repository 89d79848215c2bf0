package page_test

import (
	"testing"

	"github.com/katalvlaran/tgraph/page"
	"github.com/katalvlaran/tgraph/seq"
)

// BenchmarkPage_Scan measures scanning a full page of 1,024 entries with a
// window that keeps roughly half of them.
func BenchmarkPage_Scan(b *testing.B) {
	m := page.NewManager(page.WithPageSize(1024))
	loc, err := m.FindNextFreePage(page.Location{})
	if err != nil {
		b.Fatal(err)
	}
	pg, err := m.GetPage(loc)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1024; i++ {
		if _, err := pg.Append(page.VertexTriplet(uint64(i)), int64(i)); err != nil {
			b.Fatal(err)
		}
	}

	window := page.Window{Start: 0, End: 512}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.Count(pg.Scan(window))
	}
}
