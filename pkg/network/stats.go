package network

import "slices"

// Stats summarises the shape of a network.
type Stats struct {
	Stations   int
	Links      int
	Clients    int
	MaxLinks   int
	MinDegree  int
	MaxDegree  int
	MeanDegree float64
	Components int
	Isolated   []string // codes of stations without links
}

// Connected reports whether every station is reachable from every other.
func (s Stats) Connected() bool { return s.Components <= 1 }

// Degrees returns the number of links touching each station code.
// Endpoints that are not station codes are ignored.
func Degrees(n *Network) map[string]int {
	deg := make(map[string]int, len(n.Stations))
	for _, s := range n.Stations {
		deg[s.Code] = 0
	}
	for _, l := range n.Links {
		if _, ok := deg[l.A]; ok {
			deg[l.A]++
		}
		if _, ok := deg[l.B]; ok && l.B != l.A {
			deg[l.B]++
		}
	}
	return deg
}

// ComputeStats returns degree and connectivity statistics for n.
func ComputeStats(n *Network) Stats {
	st := Stats{
		Stations: n.StationCount(),
		Links:    n.LinkCount(),
		Clients:  n.ClientCount(),
		MaxLinks: MaxLinks(n.StationCount()),
	}
	if st.Stations == 0 {
		return st
	}

	deg := Degrees(n)
	st.MinDegree = -1
	total := 0
	for _, code := range n.Codes() {
		d := deg[code]
		total += d
		if st.MinDegree < 0 || d < st.MinDegree {
			st.MinDegree = d
		}
		st.MaxDegree = max(st.MaxDegree, d)
		if d == 0 {
			st.Isolated = append(st.Isolated, code)
		}
	}
	st.MeanDegree = float64(total) / float64(st.Stations)
	st.Components = countComponents(n)
	return st
}

// countComponents counts connected components with a breadth-first search.
func countComponents(n *Network) int {
	adj := make(map[string][]string, len(n.Stations))
	for _, l := range n.Links {
		adj[l.A] = append(adj[l.A], l.B)
		adj[l.B] = append(adj[l.B], l.A)
	}

	visited := make(map[string]bool, len(n.Stations))
	components := 0
	for _, root := range n.Codes() {
		if visited[root] {
			continue
		}
		components++
		visited[root] = true
		queue := []string{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
	return components
}

// SortedDegrees returns the degree sequence in non-increasing order.
func SortedDegrees(n *Network) []int {
	deg := Degrees(n)
	seq := make([]int, 0, len(deg))
	for _, d := range deg {
		seq = append(seq, d)
	}
	slices.Sort(seq)
	slices.Reverse(seq)
	return seq
}
