// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

import (
	"math/rand"
	"testing"
)

func benchGrid(size int, seed int64) *Grid[float64] {
	g := NewGrid[float64](size, size, -9999)
	src := rand.New(rand.NewSource(seed))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.Set(x, y, float64(src.Intn(1000)))
		}
	}
	return g
}

func BenchmarkImproved(b *testing.B) {
	for _, size := range []int{64, 256} {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				g := benchGrid(size, 1)
				b.StartTimer()
				if _, err := Improved(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkZhou2016(b *testing.B) {
	for _, size := range []int{64, 256} {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				g := benchGrid(size, 1)
				b.StartTimer()
				if _, err := Zhou2016(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func sizeName(size int) string {
	switch size {
	case 64:
		return "64x64"
	case 256:
		return "256x256"
	default:
		return "grid"
	}
}
