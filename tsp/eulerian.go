package tsp

// eulerianCircuit extracts a closed Eulerian walk of the undirected multigraph
// adj, starting and ending at start, via Hierholzer's algorithm.
//
// The caller guarantees every vertex has even degree (MST plus a perfect
// matching on the odd vertices), which is exactly the condition under which
// a circuit exists. adj is consumed as a scratch copy; the input is left
// untouched.
//
// Complexity: O(E) time and space, E counted with multiplicity.
func eulerianCircuit(adj [][]int, start int) []int {
	// Local copy of the edge lists so traversal can delete edges.
	local := make([][]int, len(adj))

	var u int
	for u = range adj {
		local[u] = append([]int(nil), adj[u]...)
	}

	var (
		circuit []int
		stack   = []int{start}
		v       int
		i       int
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		if len(local[u]) == 0 {
			// Dead end: emit the vertex and backtrack.
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		// Consume one edge u–v (take the last for O(1) removal) …
		v = local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		// … and its mirror v–u.
		for i = range local[v] {
			if local[v][i] == u {
				local[v] = append(local[v][:i], local[v][i+1:]...)
				break
			}
		}
		stack = append(stack, v)
	}

	return circuit
}
