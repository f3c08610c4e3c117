package dag

// pathCount returns the number of distinct finish-reaching paths
// starting at p, memoized per page. Since the DAG is acyclic and
// layered by BFS distance, this recursion always terminates.
func (p *AnnotatedPage) pathCount(finish *AnnotatedPage) int64 {
	if !p.cachedPathCountSet {
		p.cachedPathCount = calculatePathCount(p, finish)
		p.cachedPathCountSet = true
	}
	return p.cachedPathCount
}

func calculatePathCount(page, finish *AnnotatedPage) int64 {
	if page == finish {
		return 1
	}
	var total int64
	for i := range page.links {
		total += page.links[i].dst.pathCount(finish)
	}
	return total
}
