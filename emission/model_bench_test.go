package emission

import (
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-gamma/fit"
	"github.com/cwbudde/algo-gamma/internal/onezonetest"
	"github.com/cwbudde/algo-gamma/internal/testutil"
)

func BenchmarkCalc(b *testing.B) {
	sizes := []int{16, 64, 256, 1024}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			m, err := New(ChannelInverseCompton, &onezonetest.Library{}, WithLogger(zerolog.Nop()))
			if err != nil {
				b.Fatal(err)
			}

			lo, hi := testutil.LogEdges(1, 1e4, n)
			p := fit.Values(m.Params())

			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := m.Calc(p, lo, hi); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
