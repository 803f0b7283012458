package callout

// Block is a closed custom block found in a document.
type Block struct {
	Type      Type
	Title     string
	Body      string
	StartLine int
	EndLine   int
}

type Blocks []*Block

// Filter returns the blocks for which keep returns true.
func (b Blocks) Filter(keep func(*Block) bool) Blocks {
	var out Blocks

	for _, block := range b {
		if keep(block) {
			out = append(out, block)
		}
	}

	return out
}
