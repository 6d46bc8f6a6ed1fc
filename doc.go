// Package seqgraphalign aligns DNA queries against character-labeled
// sequence graphs: directed graphs where every vertex carries one base and
// every path spells a candidate reference sequence.
//
// 🧬 What is seqgraphalign?
//
//	A pure-Go library that brings together:
//
//	  • CharGraph: an immutable CSR directed graph of A/C/G/T/N vertices
//	  • ScoringConfig: linear substitution/deletion/insertion penalties
//	  • Two alignment engines: a fast order-preserving layered DP and a
//	    slower Navarro-style recursive oracle for cross-checking it
//
// ✨ Why choose seqgraphalign?
//
//   - Free-start anywhere     — every vertex is a valid alignment start
//   - Strand-agnostic         — aligns both the query and its reverse complement
//   - Pure Go                 — no cgo, no hidden dependencies in the engine
//
// Under the hood, everything is organized under four subpackages:
//
//	charseq/ — the CharGraph type, CSR storage, and strand complement
//	scoring/ — substitution/deletion/insertion cost configuration
//	align/   — the alignment engines (fast layered DP and Navarro oracle)
//	graphio/ — textual adjacency format, GFA output, compacted-graph expansion
//
// The cmd/seqgraphalign command wires these into a small CLI driver.
package seqgraphalign
