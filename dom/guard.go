package dom

// DocumentGuard ties an input string to the document parsed from it, so the
// pair can be stored and moved around as one value without tracking the
// input's lifetime separately.
//
// In a garbage-collected language this needs no unsafe lifetime tricks: the
// guard simply retains the string, and the runtime releases the backing
// allocation exactly once, when neither the guard nor the document is
// reachable anymore. The guard must not be copied, since it is the unique
// owner of the pairing, which is why it is only handed out as a pointer. Moving
// it between goroutines is safe; concurrent use from several goroutines
// without external synchronization is not supported.
type DocumentGuard struct {
	input string
	doc   *Document
}

// ParseOwned parses input and returns a guard that keeps the input string
// alive alongside the resulting document. Errors are the same as [Parse].
func ParseOwned(input string, opts Options) (*DocumentGuard, error) {
	doc, err := Parse(input, opts)
	if err != nil {
		return nil, err
	}

	return &DocumentGuard{input: input, doc: doc}, nil
}

// Document returns the guarded document.
func (g *DocumentGuard) Document() *Document {
	return g.doc
}

// Input returns the source string the document was parsed from.
func (g *DocumentGuard) Input() string {
	return g.input
}
