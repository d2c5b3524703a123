// Package unionfind provides a disjoint-set forest for connectivity
// tracking over arbitrary comparable elements.
//
// Basic usage:
//
//	s := unionfind.New[string]()
//	s.Add("a")
//	s.Add("b")
//	s.Union("a", "b")
//
//	s.Connected("a", "b") // true
package unionfind
