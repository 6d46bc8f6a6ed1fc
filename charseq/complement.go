package charseq

// sentinelComplement is returned for any byte with no defined biological
// complement. It is chosen so that it can never equal a valid vertex label
// (A, C, G, T, N and their lowercase forms), so complement-equality checks
// need no extra branch.
const sentinelComplement byte = 4

// complementTable maps every possible byte to its complement. Built once at
// package init: every entry is first set to sentinelComplement, then the
// handful of biological pairs are written over it.
var complementTable = buildComplementTable()

func buildComplementTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = sentinelComplement
	}
	t['A'], t['T'] = 'T', 'A'
	t['C'], t['G'] = 'G', 'C'
	t['N'] = 'N'
	t['a'], t['t'] = 't', 'a'
	t['c'], t['g'] = 'g', 'c'
	t['n'] = 'n'

	return t
}

// Complement returns the biological complement of b: A<->T, C<->G, N->N,
// case preserved. Any other byte, including whitespace and control bytes,
// maps to a sentinel value that is guaranteed not to equal any valid
// vertex label.
func Complement(b byte) byte {
	return complementTable[b]
}

// ReverseComplementQuery returns the reverse complement of query: each
// byte is complemented and the result is reversed end to end.
func ReverseComplementQuery(query []byte) []byte {
	n := len(query)
	out := make([]byte, n)
	for i, b := range query {
		out[n-1-i] = Complement(b)
	}

	return out
}
