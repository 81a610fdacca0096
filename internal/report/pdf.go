package report

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"marketbrief/internal/digest"
)

// Layout constants, in points on a Letter page.
const (
	pageMargin   = 40.0
	titleHeight  = 18.0
	lineHeight   = 14.0
	blockGap     = 10.0
	imageGap     = 20.0
	imageBoxW    = 500.0
	imageBoxH    = 300.0
	maxLineChars = 120

	maxImageBytes = 10 << 20
)

// Renderer lays out the multilingual digest set into a paginated PDF.
type Renderer struct {
	outputDir  string
	httpClient *http.Client
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{
		outputDir:  outputDir,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Render writes daily_summary_YYYYMMDD.pdf for the given run date and returns
// its path. The English digest comes first, the first image right after it,
// then every other language in insertion order with the second image placed
// after the language at overall position index 1. Image fetch and decode
// failures are logged and skipped; the document is always laid out. Output is
// byte-identical for identical inputs: the embedded timestamps are pinned to
// the run date.
func (r *Renderer) Render(set *digest.Set, images []string, date time.Time) (string, error) {
	pinned := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCreationDate(pinned)
	pdf.SetModificationDate(pinned)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin+50)
	pdf.AddPage()

	writeBlock(pdf, "English Summary", set.English())
	if len(images) > 0 {
		r.placeImage(pdf, images[0])
	}

	for i, lang := range set.Languages() {
		if digest.IsEnglish(lang) {
			continue
		}
		writeBlock(pdf, capitalize(lang)+" Summary", set.Get(lang))
		if i == 1 && len(images) > 1 {
			r.placeImage(pdf, images[1])
		}
	}

	name := fmt.Sprintf("daily_summary_%s.pdf", date.Format("20060102"))
	path := filepath.Join(r.outputDir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	slog.Info("pdf saved", "path", path)
	return path, nil
}

func writeBlock(pdf *fpdf.Fpdf, title, text string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, titleHeight, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(text, "\n") {
		pdf.CellFormat(0, lineHeight, clipLine(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(blockGap)
}

// placeImage fetches the URL and draws it scaled into the bounding box at the
// current position, starting a new page first when the remaining vertical
// space is too small. Any failure leaves the document untouched.
func (r *Renderer) placeImage(pdf *fpdf.Fpdf, url string) {
	data, kind, w, h, err := r.fetchImage(url)
	if err != nil {
		slog.Warn("skipping image", "url", url, "error", err)
		return
	}

	drawW, drawH := scaleToFit(w, h, imageBoxW, imageBoxH)

	opts := fpdf.ImageOptions{ImageType: kind}
	pdf.RegisterImageOptionsReader(url, opts, bytes.NewReader(data))
	pdf.ImageOptions(url, pageMargin, 0, drawW, drawH, true, opts, 0, "")
	pdf.Ln(imageGap)
}

func (r *Renderer) fetchImage(url string) (data []byte, kind string, w, h float64, err error) {
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("image fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", 0, 0, fmt.Errorf("image fetch: unexpected status %d", resp.StatusCode)
	}

	data, err = io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("image read: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("image decode: %w", err)
	}
	switch format {
	case "png", "jpeg", "gif":
	default:
		return nil, "", 0, 0, fmt.Errorf("image decode: unsupported format %q", format)
	}

	return data, format, float64(cfg.Width), float64(cfg.Height), nil
}

// scaleToFit shrinks w x h to fit the box, preserving aspect ratio and never
// upscaling.
func scaleToFit(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	return w * scale, h * scale
}

func clipLine(line string) string {
	runes := []rune(line)
	if len(runes) <= maxLineChars {
		return line
	}
	return string(runes[:maxLineChars])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
