// Test-only hooks exposing pipeline internals to the external tsp_test
// package. The file exists only under `go test`; production builds never
// see these symbols.
package tsp

var (
	TestHookMST             = minimumSpanningTree
	TestHookMatchOdd        = matchOdd
	TestHookMatchExact      = matchExact
	TestHookMatchGreedy     = matchGreedy
	TestHookEulerianCircuit = eulerianCircuit
	TestHookShortcut        = shortcutCircuit
	TestHookNextPermutation = nextPermutation
)
