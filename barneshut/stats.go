package barneshut

// TreeStats describes the shape of a built tree.
type TreeStats struct {
	Particles int
	Nodes     int
	Leaves    int
	// MaxDepth of the deepest node, the root has depth 0. Closely spaced
	// particles produce long chains of single-child nodes.
	MaxDepth int
}

func (qt *QuadTree) Stats() TreeStats {
	stats := TreeStats{Particles: qt.NumParticles}
	qt.collectStats(&stats, 0)
	return stats
}

func (qt *QuadTree) collectStats(stats *TreeStats, depth int) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if qt.NumParticles <= 1 {
		stats.Leaves++
		return
	}
	for _, child := range qt.Children {
		if child != nil {
			child.collectStats(stats, depth+1)
		}
	}
}
