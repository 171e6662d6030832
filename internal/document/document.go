package document

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind identifies a block type.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindListItem
	KindTableRow
	KindHighlight
	KindTags
)

// Block is one laid-out unit of a plan.
type Block struct {
	Kind Kind
	// Level is the heading level (1-6) or the list nesting depth (0-based).
	Level int
	Text  string
	// Cells holds table cells for KindTableRow and labels for KindTags.
	Cells []string
	// Header marks a table row made of <th> cells.
	Header bool
}

// Document is a plan flattened into blocks, in reading order.
type Document struct {
	Blocks []Block
}

// Title returns the text of the first level-1 heading.
func (d Document) Title() string {
	for _, b := range d.Blocks {
		if b.Kind == KindHeading && b.Level == 1 {
			return b.Text
		}
	}
	return ""
}

// Empty reports whether the document has no blocks.
func (d Document) Empty() bool {
	return len(d.Blocks) == 0
}

// Parse strips the prompts block from raw HTML and flattens the rest.
// Unparseable input yields a single paragraph with the raw text.
func Parse(raw string) Document {
	nodes, err := parseFragment(raw)
	if err != nil {
		if t := collapse(raw); t != "" {
			return Document{Blocks: []Block{{Kind: KindParagraph, Text: t}}}
		}
		return Document{}
	}

	p := &parser{}
	for _, n := range nodes {
		p.walk(n, 0)
	}
	p.flushTags()
	return Document{Blocks: p.blocks}
}

type parser struct {
	blocks []Block
	tags   []string
}

func (p *parser) emit(b Block) {
	p.flushTags()
	if b.Kind != KindTableRow && b.Text == "" {
		return
	}
	p.blocks = append(p.blocks, b)
}

func (p *parser) flushTags() {
	if len(p.tags) == 0 {
		return
	}
	p.blocks = append(p.blocks, Block{Kind: KindTags, Cells: p.tags})
	p.tags = nil
}

func (p *parser) walk(n *html.Node, depth int) {
	switch n.Type {
	case html.TextNode:
		if t := collapse(n.Data); t != "" {
			p.emit(Block{Kind: KindParagraph, Text: t})
		}
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c, depth)
		}
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Head, atom.Title:
		return
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		p.emit(Block{Kind: KindHeading, Level: int(n.Data[1] - '0'), Text: text(n)})
		return
	case atom.P:
		if tags := onlyTags(n); len(tags) > 0 {
			p.tags = append(p.tags, tags...)
			return
		}
		p.emit(Block{Kind: KindParagraph, Text: text(n)})
		return
	case atom.Li:
		p.emit(Block{Kind: KindListItem, Level: depth, Text: ownText(n)})
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom == atom.Ul || c.DataAtom == atom.Ol {
				p.walk(c, depth+1)
			}
		}
		return
	case atom.Tr:
		row := Block{Kind: KindTableRow}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom == atom.Th || c.DataAtom == atom.Td {
				row.Cells = append(row.Cells, text(c))
				row.Header = row.Header || c.DataAtom == atom.Th
			}
		}
		if len(row.Cells) > 0 {
			p.emit(row)
		}
		return
	}

	if hasClass(n, "highlight-box") {
		p.emit(Block{Kind: KindHighlight, Text: blockText(n)})
		return
	}
	if hasClass(n, "tag") {
		if t := text(n); t != "" {
			p.tags = append(p.tags, t)
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, depth)
	}
}

// onlyTags returns the labels of n when all its content is tag spans.
func onlyTags(n *html.Node) []string {
	var tags []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode && collapse(c.Data) == "":
		case c.Type == html.ElementNode && hasClass(c, "tag"):
			tags = append(tags, text(c))
		default:
			return nil
		}
	}
	return tags
}

// text returns the collapsed text content of n.
func text(n *html.Node) string {
	var b strings.Builder
	collect(n, &b)
	return collapse(b.String())
}

// ownText is text without nested lists.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == atom.Ul || c.DataAtom == atom.Ol {
			continue
		}
		collect(c, &b)
	}
	return collapse(b.String())
}

// blockText keeps line breaks between block-level children.
func blockText(n *html.Node) string {
	var lines []string
	var b strings.Builder
	flush := func() {
		if t := collapse(b.String()); t != "" {
			lines = append(lines, t)
		}
		b.Reset()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isBlockElement(c) {
			flush()
			if c.DataAtom == atom.Ul || c.DataAtom == atom.Ol {
				for li := c.FirstChild; li != nil; li = li.NextSibling {
					if t := text(li); t != "" {
						lines = append(lines, "• "+t)
					}
				}
				continue
			}
			b.WriteString(text(c))
			flush()
			continue
		}
		collect(c, &b)
	}
	flush()
	return strings.Join(lines, "\n")
}

func isBlockElement(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Ul, atom.Ol, atom.Li, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Table, atom.Tr, atom.Td, atom.Th, atom.Br:
		return true
	}
	return false
}

func collect(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}
	block := isBlockElement(n)
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, b)
	}
	if block {
		b.WriteByte(' ')
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
