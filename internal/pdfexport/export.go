// Package pdfexport writes a lesson plan and its rendered images to an A4
// landscape PDF.
package pdfexport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/abhisek/eduvision/internal/document"
	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/logger"
)

// ErrEmptyDocument is returned when there is nothing to export.
var ErrEmptyDocument = errors.New("nothing to export")

// FailureNotice is shown when an export fails.
const FailureNotice = "PDF 生成失敗，請稍後再試。"

const (
	margin      = 10.0 // mm
	jpegQuality = 98
	// maxImagePx bounds the longest side of embedded images.
	maxImagePx = 2400
	fontFamily = "huninn"
)

// FileName returns eduvision-plan-YYYY-MM-DD.pdf for now.
func FileName(now time.Time) string {
	return "eduvision-plan-" + now.Format("2006-01-02") + ".pdf"
}

// Exporter renders plans to PDF files.
type Exporter struct {
	font      FontSource
	outputDir string
	log       *logger.Logger
}

// NewExporter creates an Exporter writing into outputDir. Without a
// configured font it falls back to the core Helvetica font, which only
// covers Latin text.
func NewExporter(font FontSource, outputDir string, log *logger.Logger) *Exporter {
	if outputDir == "" {
		outputDir = "."
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Exporter{font: font, outputDir: outputDir, log: log}
}

// Export writes the plan in html, followed by every completed image in
// gallery, and returns the path of the PDF.
func (e *Exporter) Export(ctx context.Context, html string, gallery images.Gallery, now time.Time) (string, error) {
	doc := document.Parse(document.StripPrompts(html))
	rendered := completed(gallery)
	if doc.Empty() && len(rendered) == 0 {
		return "", ErrEmptyDocument
	}

	pdf, tr, err := e.newPDF(ctx)
	if err != nil {
		return "", err
	}
	w := &writer{pdf: pdf, tr: tr}

	pdf.AddPage()
	w.title("EduVision 教學計劃")
	for i := range doc.Blocks {
		w.block(doc.Blocks, i)
	}
	for i, img := range rendered {
		if err := w.image(i+1, img); err != nil {
			e.log.Warn("skip image in pdf", "id", img.ID, "error", err)
		}
	}

	if err := pdf.Error(); err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(e.outputDir, FileName(now))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	e.log.Info("pdf exported", "path", path, "blocks", len(doc.Blocks), "images", len(rendered))
	return path, nil
}

func (e *Exporter) newPDF(ctx context.Context) (*fpdf.Fpdf, func(string) string, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin+6)
	pdf.SetTitle("EduVision 教學計劃", true)
	pdf.SetCreator("EduVision", true)
	pdf.AliasNbPages("")

	family := "Helvetica"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if e.font.Configured() {
		data, err := e.font.Load(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("load font: %w", err)
		}
		pdf.AddUTF8FontFromBytes(fontFamily, "", data)
		family = fontFamily
		tr = func(s string) string { return s }
	}
	pdf.SetFont(family, "", 11)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(family, "", 9)
		pdf.SetTextColor(148, 163, 184)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("EduVision AI Generated • Page %d / {nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	return pdf, tr, nil
}

func completed(g images.Gallery) []images.GeneratedImage {
	var out []images.GeneratedImage
	for _, img := range g {
		if img.Status == images.StatusCompleted && img.URL != "" {
			out = append(out, img)
		}
	}
	return out
}

// writer lays blocks out on the page.
type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	// inTable tracks the table currently being written.
	inTable bool
}

func (w *writer) font(size float64, r, g, b int) {
	w.pdf.SetFontSize(size)
	w.pdf.SetTextColor(r, g, b)
}

func (w *writer) title(s string) {
	w.font(22, 30, 41, 59)
	w.pdf.CellFormat(0, 12, w.tr(s), "", 1, "C", false, 0, "")
	w.pdf.Ln(4)
}

func (w *writer) block(blocks []document.Block, i int) {
	pdf := w.pdf
	b := blocks[i]
	if b.Kind != document.KindTableRow && w.inTable {
		w.inTable = false
		pdf.Ln(3)
	}

	switch b.Kind {
	case document.KindHeading:
		switch b.Level {
		case 1:
			w.font(18, 30, 41, 59)
			pdf.MultiCell(0, 9, w.tr(b.Text), "", "C", false)
		case 2:
			pdf.Ln(4)
			w.font(14, 67, 56, 202)
			pdf.SetFillColor(224, 231, 255)
			pdf.MultiCell(0, 8, w.tr(b.Text), "", "L", true)
		default:
			pdf.Ln(2)
			w.font(12, 51, 65, 85)
			pdf.MultiCell(0, 7, w.tr(b.Text), "", "L", false)
		}
		pdf.Ln(2)
	case document.KindParagraph:
		w.font(11, 51, 65, 85)
		pdf.MultiCell(0, 6, w.tr(b.Text), "", "J", false)
		pdf.Ln(1)
	case document.KindListItem:
		w.font(11, 51, 65, 85)
		left, _, _, _ := pdf.GetMargins()
		pdf.SetX(left + 5 + float64(b.Level)*6)
		pdf.CellFormat(5, 6, w.tr("•"), "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 6, w.tr(b.Text), "", "L", false)
	case document.KindHighlight:
		pdf.Ln(2)
		w.font(11, 55, 48, 163)
		pdf.SetFillColor(241, 245, 249)
		pdf.SetDrawColor(99, 102, 241)
		pdf.MultiCell(0, 6, w.tr(b.Text), "L", "L", true)
		pdf.Ln(2)
	case document.KindTags:
		w.font(10, 67, 56, 202)
		pdf.MultiCell(0, 6, w.tr(strings.Join(b.Cells, "  ·  ")), "", "C", false)
		pdf.Ln(2)
	case document.KindTableRow:
		w.tableRow(b, columns(blocks, i))
	}
}

// columns returns the cell count of the widest row in the table that
// contains blocks[i].
func columns(blocks []document.Block, i int) int {
	start, end := i, i
	for start > 0 && blocks[start-1].Kind == document.KindTableRow {
		start--
	}
	for end < len(blocks) && blocks[end].Kind == document.KindTableRow {
		end++
	}
	n := 1
	for _, b := range blocks[start:end] {
		n = max(n, len(b.Cells))
	}
	return n
}

func (w *writer) tableRow(b document.Block, cols int) {
	pdf := w.pdf
	w.inTable = true
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	cellW := (pageW - left - right) / float64(cols)

	if b.Header {
		w.font(10, 30, 41, 59)
		pdf.SetFillColor(224, 231, 255)
	} else {
		w.font(10, 51, 65, 85)
	}
	pdf.SetDrawColor(203, 213, 225)

	// Rows are as tall as their tallest cell.
	lines := 1
	for _, c := range b.Cells {
		lines = max(lines, len(pdf.SplitText(w.tr(c), cellW-2)))
	}
	const lineH = 5.5
	rowH := float64(lines) * lineH
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+rowH > pageH-margin-6 {
		pdf.AddPage()
	}

	x, y := pdf.GetX(), pdf.GetY()
	for i := 0; i < cols; i++ {
		text := ""
		if i < len(b.Cells) {
			text = w.tr(b.Cells[i])
		}
		cx := x + float64(i)*cellW
		pdf.Rect(cx, y, cellW, rowH, rectStyle(b.Header))
		pdf.SetXY(cx, y)
		pdf.MultiCell(cellW, lineH, text, "", "L", false)
	}
	pdf.SetXY(x, y+rowH)
}

func rectStyle(header bool) string {
	if header {
		return "FD"
	}
	return "D"
}

func (w *writer) image(n int, img images.GeneratedImage) error {
	_, data, err := images.DecodeDataURI(img.URL)
	if err != nil {
		return err
	}
	jpg, width, height, err := toJPEG(data)
	if err != nil {
		return err
	}

	pdf := w.pdf
	opts := fpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader(img.ID, opts, bytes.NewReader(jpg))
	if !pdf.Ok() {
		return pdf.Error()
	}

	pdf.AddPage()
	w.font(14, 67, 56, 202)
	pdf.CellFormat(0, 8, w.tr(fmt.Sprintf("圖卡 %d", n)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, pageH := pdf.GetPageSize()
	boxW := pageW - 2*margin
	boxH := pageH - pdf.GetY() - margin - 8
	scale := min(boxW/float64(width), boxH/float64(height))
	drawW, drawH := float64(width)*scale, float64(height)*scale
	x := margin + (boxW-drawW)/2
	pdf.ImageOptions(img.ID, x, pdf.GetY(), drawW, drawH, false, opts, 0, "")
	return nil
}

// toJPEG decodes PNG, JPEG or WebP data, bounds its size and re-encodes it
// as a JPEG.
func toJPEG(data []byte) ([]byte, int, int, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, 0, 0, fmt.Errorf("decode image: empty bounds")
	}
	if longest := max(w, h); longest > maxImagePx {
		ratio := float64(maxImagePx) / float64(longest)
		w, h = max(1, int(float64(w)*ratio)), max(1, int(float64(h)*ratio))
	}

	// JPEG has no alpha: flatten onto white.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, 0, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), w, h, nil
}
