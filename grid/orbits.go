package grid

// Orbits partitions the cells of a size×size grid into the classes linked
// by the given partner types: two cells share a class when a chain of
// partner functions leads from one to the other. Each class lists
// row-major offsets in discovery order; classes are ordered by their
// smallest offset.
//
// Time:   O(size²·len(types)).
// Memory: O(size²) for visited flags and output.
func Orbits(size int, types []PartnerType) ([][]int, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}

	total := size * size
	seen := make([]bool, total)
	var orbits [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS over partner links
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			idx := Indices{Row: u / size, Col: u % size}
			for _, p := range types {
				v, err := p.Partner(idx, size)
				if err != nil {
					return nil, err
				}
				vi := v.Row*size + v.Col
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		orbits = append(orbits, queue)
	}

	return orbits, nil
}
