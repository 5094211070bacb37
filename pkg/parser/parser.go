package parser

// Result is the output of parsing one transcript.
type Result struct {
	// Corpus is the ordered record set all statistics operate on.
	Corpus *Corpus

	// Stats describes the assembly pass.
	Stats AssembleStats
}

// Parse runs the full text-to-corpus pipeline: line assembly, record
// extraction, and temporal enrichment. Parsing is total: lines that match
// no format become continuations, and a transcript with no timestamped
// lines yields an empty corpus, not an error.
func Parse(text string) *Result {
	units, stats := NewAssembler(nil).Assemble(text)

	records := make([]Message, 0, len(units))
	for _, u := range units {
		m := Extract(u)
		Enrich(&m)
		records = append(records, m)
	}

	return &Result{
		Corpus: NewCorpus(records),
		Stats:  stats,
	}
}
