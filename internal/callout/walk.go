package callout

// Walker is a callback invoked for each closed custom block of a document.
type Walker func(block *Block) error

func (Walker) text(line) {}

func (Walker) issue(Issue) {}

func (w Walker) block(b *Block, _, _ line, _ []line) error {
	return w(b)
}

// Walk calls walker for every closed custom block in document order. It stops
// at and returns the first error returned by walker.
func Walk(document string, walker Walker) error {
	return scan(document, walker)
}

// Unfence returns all closed custom blocks of document.
func Unfence(document string) Blocks {
	var blocks Blocks

	_ = Walk(document, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})

	return blocks
}
