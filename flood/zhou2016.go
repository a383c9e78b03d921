// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

// spreadQueue is a plain FIFO of grid coordinates used by Zhou2016's inner
// plateau-spread loop. Unlike pitQueue it carries no elevation, since every
// cell pushed onto it is known to share the same drain elevation.
type spreadQueue struct {
	items [][2]int
	head  int
}

func (q *spreadQueue) push(x, y int) {
	q.items = append(q.items, [2]int{x, y})
}

func (q *spreadQueue) pop() (int, int) {
	p := q.items[q.head]
	q.head++
	return p[0], p[1]
}

func (q *spreadQueue) empty() bool {
	return q.head >= len(q.items)
}

// Zhou2016 fills depressions with the same result as Improved but using a
// two-stage traversal: a neighbor of a cell popped from the frontier that
// sits at or below the popped elevation is raised to it and then used to
// seed a local breadth-first spread that absorbs the rest of its plateau directly,
// without routing every plateau cell back through the min-heap or an
// auxiliary FIFO. It trades Improved's dual-queue bookkeeping for a single
// heap plus a scratch spread queue reused across every pit encountered.
func Zhou2016[T Number](elevations *Grid[T]) (pitCount int64, err error) {
	w, h := elevations.Width(), elevations.Height()
	if w < 2 || h < 2 {
		return 0, ErrGridTooSmall
	}

	closed := NewGrid[bool](w, h, false)
	frontier := NewFrontier[T]()

	seedBorder(elevations, closed, func(x, y int, z T) {
		frontier.Push(x, y, z)
	})

	spread := &spreadQueue{}

	for !frontier.Empty() {
		cx, cy, cz := frontier.Pop()

		for _, dir := range visitOrder {
			nx, ny := neighbor(cx, cy, dir)
			if !elevations.InGrid(nx, ny) || closed.At(nx, ny) {
				continue
			}
			assertClosedOnce(closed, nx, ny)
			nz := elevations.At(nx, ny)
			if nz == elevations.NoData() {
				frontier.Push(nx, ny, nz)
				continue
			}
			if nz <= cz {
				if nz < cz {
					pitCount++
					nz = cz
					elevations.Set(nx, ny, nz)
				}
				spread.head = 0
				spread.items = spread.items[:0]
				spread.push(nx, ny)
				for !spread.empty() {
					mx, my := spread.pop()
					for _, d2 := range visitOrder {
						px, py := neighbor(mx, my, d2)
						if !elevations.InGrid(px, py) || closed.At(px, py) {
							continue
						}
						assertClosedOnce(closed, px, py)
						pz := elevations.At(px, py)
						if pz == elevations.NoData() {
							frontier.Push(px, py, pz)
							continue
						}
						if pz <= cz {
							if pz < cz {
								pitCount++
								pz = cz
								elevations.Set(px, py, pz)
							}
							spread.push(px, py)
							continue
						}
						frontier.Push(px, py, pz)
					}
				}
				continue
			}
			frontier.Push(nx, ny, nz)
		}
	}
	return pitCount, nil
}
