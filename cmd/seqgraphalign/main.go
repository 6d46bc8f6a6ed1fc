// seqgraphalign aligns DNA queries against a character-labeled sequence
// graph, reporting the minimum edit distance over every path through the
// graph for each query.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/lvlath-bio/seqgraphalign/align"
	"github.com/lvlath-bio/seqgraphalign/graphio"
	"github.com/lvlath-bio/seqgraphalign/scoring"
)

var (
	graphPath  = flag.String("graph", "", "textual adjacency graph file (required)")
	gfaOut     = flag.String("gfa-out", "", "write the compacted graph to this GFA file if not empty")
	query      = flag.String("query", "", "a single literal query sequence")
	queryFasta = flag.String("query-fasta", "", "FASTA file of query sequences to align, one alignment per record")
	sub        = flag.Int64("sub", 1, "substitution penalty")
	del        = flag.Int64("del", 1, "deletion penalty")
	ins        = flag.Int64("ins", 1, "insertion penalty")
	useNavarro = flag.Bool("navarro", false, "use the recursive relaxation oracle engine instead of the fast ordered engine")
	errFile    = flag.String("err", "", "log output file name (default stderr)")
)

func main() {
	flag.Parse()

	if *graphPath == "" || (*query == "" && *queryFasta == "") {
		fmt.Fprintln(os.Stderr, "invalid arguments: -graph and one of -query/-query-fasta are required")
		flag.Usage()
		os.Exit(1)
	}

	if *errFile != "" {
		w, err := os.Create(*errFile)
		if err != nil {
			log.Fatalf("failed to create log file: %v", err)
		}
		defer w.Close()
		log.SetOutput(w)
	}

	gf, err := os.Open(*graphPath)
	if err != nil {
		log.Fatalf("failed to open graph file %q: %v", *graphPath, err)
	}
	compacted, err := graphio.Load(gf)
	gf.Close()
	if err != nil {
		log.Fatalf("failed to parse graph file %q: %v", *graphPath, err)
	}

	if unreachable := graphio.UnreachableFromSource(compacted); len(unreachable) > 0 {
		log.Printf("warning: %d vertices unreachable from vertex 0: %v", len(unreachable), unreachable)
	}

	if *gfaOut != "" {
		out, err := os.Create(*gfaOut)
		if err != nil {
			log.Fatalf("failed to create GFA output file %q: %v", *gfaOut, err)
		}
		if err := graphio.WriteGFA(out, compacted); err != nil {
			log.Fatalf("failed to write GFA output: %v", err)
		}
		out.Close()
	}

	charGraph, err := graphio.Expand(compacted)
	if err != nil {
		log.Fatalf("failed to expand compacted graph: %v", err)
	}
	log.Printf("loaded graph with %d vertices, %d edges", charGraph.NumVertices(), charGraph.NumEdges())

	cfg, err := scoring.New(
		scoring.WithSubstitution(scoring.Score(*sub)),
		scoring.WithDeletion(scoring.Score(*del)),
		scoring.WithInsertion(scoring.Score(*ins)),
	)
	if err != nil {
		log.Fatalf("invalid scoring configuration: %v", err)
	}

	queries, err := collectQueries()
	if err != nil {
		log.Fatalf("failed to collect queries: %v", err)
	}

	if *useNavarro {
		engine, err := align.NewNavarroEngine(charGraph, cfg)
		if err != nil {
			log.Fatalf("failed to construct oracle engine: %v", err)
		}
		for _, q := range queries {
			runAlignment(q, func(s []byte) (scoring.Score, error) { return engine.Align(s) })
		}
		return
	}

	aligner, err := align.NewAligner(charGraph, cfg)
	if err != nil {
		log.Fatalf("failed to construct aligner: %v", err)
	}
	for _, q := range queries {
		runAlignment(q, aligner.Align)
	}
}

type namedQuery struct {
	name string
	seq  []byte
}

func collectQueries() ([]namedQuery, error) {
	var queries []namedQuery
	if *query != "" {
		queries = append(queries, namedQuery{name: "query", seq: []byte(*query)})
	}
	if *queryFasta != "" {
		f, err := os.Open(*queryFasta)
		if err != nil {
			return nil, fmt.Errorf("failed to open query fasta %q: %w", *queryFasta, err)
		}
		defer f.Close()

		ssc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA)))
		for ssc.Next() {
			s := ssc.Seq().(*linear.Seq)
			seq := make([]byte, len(s.Seq))
			for i, l := range s.Seq {
				seq[i] = byte(l)
			}
			queries = append(queries, namedQuery{name: s.Name(), seq: seq})
		}
		if err := ssc.Error(); err != nil {
			return nil, fmt.Errorf("error during fasta read: %w", err)
		}
	}

	return queries, nil
}

func runAlignment(q namedQuery, align func([]byte) (scoring.Score, error)) {
	cost, err := align(q.seq)
	if err != nil {
		log.Printf("%s: alignment failed: %v", q.name, err)
		return
	}
	fmt.Printf("%s\t%d\n", q.name, cost)
}
