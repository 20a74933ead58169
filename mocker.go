package xmlmock

import (
	"strings"

	"github.com/beevik/etree"
)

// Mocker walks an element tree, normalizing the sibling count of one target
// tag and replacing leaf text with mock values of the same inferred type.
type Mocker struct {
	node  string
	count int
	gen   *Generator
}

// NewMocker returns a Mocker targeting node with the desired sibling count.
// An empty node disables count normalization.
func NewMocker(node string, count int, gen *Generator) *Mocker {
	return &Mocker{node: node, count: count, gen: gen}
}

// Mock processes el and every element below it, pre-order. At each node the
// target tag's sibling count is normalized first, then the node's own
// non-blank text is replaced, then the children are visited. The child list
// is captured after normalization, so cloned and created siblings receive
// mocked text during their own visit.
func (m *Mocker) Mock(el *etree.Element) {
	if m.node != "" && len(el.SelectElements(m.node)) > 0 {
		NormalizeChildCount(el, m.node, m.count, m.gen)
	}

	if text := strings.TrimSpace(el.Text()); text != "" {
		el.SetText(m.gen.Value(Infer(text)))
	}

	for _, child := range el.ChildElements() {
		m.Mock(child)
	}
}

// MockFile is the single entry point for file-to-file runs: it validates
// opts, loads opts.Input, mocks the tree and writes the result to
// opts.Destination(). Nothing is written when any step fails.
func MockFile(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	doc, err := LoadDocument(opts.Input)
	if err != nil {
		return err
	}

	m := NewMocker(opts.Node, opts.Count, NewGenerator(opts.Seed))
	m.Mock(doc.Root())

	if opts.Indent > 0 {
		doc.Indent(opts.Indent)
	}
	return SaveDocument(doc, opts.Destination())
}
