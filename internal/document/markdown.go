package document

import (
	"strings"

	"charm.land/glamour/v2"
)

// Markdown renders the document as CommonMark for the terminal view.
func (d Document) Markdown() string {
	var b strings.Builder
	blocks := d.Blocks
	for i := 0; i < len(blocks); i++ {
		blk := blocks[i]
		switch blk.Kind {
		case KindHeading:
			b.WriteString(strings.Repeat("#", blk.Level) + " " + escape(blk.Text) + "\n\n")
		case KindParagraph:
			b.WriteString(escape(blk.Text) + "\n\n")
		case KindListItem:
			for ; i < len(blocks) && blocks[i].Kind == KindListItem; i++ {
				b.WriteString(strings.Repeat("  ", blocks[i].Level) + "- " + escape(blocks[i].Text) + "\n")
			}
			i--
			b.WriteString("\n")
		case KindTableRow:
			j := i
			for j < len(blocks) && blocks[j].Kind == KindTableRow {
				j++
			}
			writeTable(&b, blocks[i:j])
			i = j - 1
		case KindHighlight:
			for _, line := range strings.Split(blk.Text, "\n") {
				b.WriteString("> " + escape(line) + "\n")
			}
			b.WriteString("\n")
		case KindTags:
			tags := make([]string, len(blk.Cells))
			for k, t := range blk.Cells {
				tags[k] = "`" + strings.ReplaceAll(t, "`", "'") + "`"
			}
			b.WriteString(strings.Join(tags, " ") + "\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeTable(b *strings.Builder, rows []Block) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Cells))
	}
	row := func(cells []string) {
		b.WriteString("|")
		for k := 0; k < width; k++ {
			cell := ""
			if k < len(cells) {
				cell = strings.ReplaceAll(escape(cells[k]), "|", `\|`)
			}
			b.WriteString(" " + cell + " |")
		}
		b.WriteString("\n")
	}

	// The first row is the header whether or not it used <th>.
	row(rows[0].Cells)
	b.WriteString("|" + strings.Repeat(" --- |", width) + "\n")
	for _, r := range rows[1:] {
		row(r.Cells)
	}
	b.WriteString("\n")
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"<", `\<`,
)

func escape(s string) string {
	return mdEscaper.Replace(s)
}

// Render lays the document out for a terminal of the given width. It
// falls back to plain markdown when glamour fails.
func (d Document) Render(width int) string {
	md := d.Markdown()
	if width > 120 {
		width = 120
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
