// Package worksheet renders printable practice sheets: a page of problems
// followed by an answer key.
package worksheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/louisbranch/mathdrill/internal/core/arith"
	"github.com/louisbranch/mathdrill/internal/platform/i18n/catalog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxProblems bounds the size of a single worksheet.
const MaxProblems = 500

// ErrInvalidCount reports a problem count outside 1..MaxProblems.
var ErrInvalidCount = errors.New("invalid problem count")

// Config controls page layout.
type Config struct {
	PageSize   string
	MarginsMM  float64
	FontFamily string
}

// DefaultConfig returns an A4 layout with Helvetica.
func DefaultConfig() Config {
	return Config{
		PageSize:   "A4",
		MarginsMM:  15,
		FontFamily: "Helvetica",
	}
}

// Sheet is a titled list of problems ready to render.
type Sheet struct {
	Locale   string
	Title    string
	Answers  string
	Problems []arith.Calculation
}

// Build generates count problems from settings and titles the sheet in locale.
// Each problem gets its own budget of maxAttempts draws per operand.
func Build(ctx context.Context, src arith.Source, settings arith.Settings, count, maxAttempts int, locale string) (Sheet, error) {
	if count <= 0 || count > MaxProblems {
		return Sheet{}, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidCount, count, MaxProblems)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	problems := make([]arith.Calculation, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return Sheet{}, err
		}
		calc, err := arith.Generate(src, settings, maxAttempts)
		if err != nil {
			return Sheet{}, fmt.Errorf("generate problem %d: %w", len(problems)+1, err)
		}
		problems = append(problems, calc)
	}

	bundle := catalog.Default()
	locale = bundle.ResolveLocale(locale)
	printer := bundle.Printer(locale)
	operation := cases.Title(language.Make(locale)).String(operationName(printer, settings.Modes()))
	return Sheet{
		Locale:   locale,
		Title:    printer.Sprintf("drill.worksheet.title", operation),
		Answers:  printer.Sprintf("drill.worksheet.answers", operation),
		Problems: problems,
	}, nil
}

func operationName(printer *message.Printer, modes []arith.Operator) string {
	var hasAdd, hasSubtract bool
	for _, mode := range modes {
		switch mode {
		case arith.OperatorAdd:
			hasAdd = true
		case arith.OperatorSubtract:
			hasSubtract = true
		}
	}
	switch {
	case hasAdd && hasSubtract:
		return printer.Sprintf("drill.operator.mixed")
	case hasSubtract:
		return printer.Sprintf("drill.operator.subtract")
	default:
		return printer.Sprintf("drill.operator.add")
	}
}

// Renderer writes sheets as PDF documents.
type Renderer struct {
	cfg Config
}

// NewRenderer returns a renderer; zero fields in cfg take DefaultConfig values.
func NewRenderer(cfg Config) *Renderer {
	def := DefaultConfig()
	if strings.TrimSpace(cfg.PageSize) == "" {
		cfg.PageSize = def.PageSize
	}
	if cfg.MarginsMM <= 0 {
		cfg.MarginsMM = def.MarginsMM
	}
	if strings.TrimSpace(cfg.FontFamily) == "" {
		cfg.FontFamily = def.FontFamily
	}
	return &Renderer{cfg: cfg}
}

// Render writes sheet to w.
func (r *Renderer) Render(w io.Writer, sheet Sheet) error {
	pdf := r.document(sheet)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render worksheet: %w", err)
	}
	return nil
}

// WriteFile renders sheet to path.
func (r *Renderer) WriteFile(path string, sheet Sheet) error {
	pdf := r.document(sheet)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write worksheet %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) document(sheet Sheet) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", r.cfg.PageSize, "")
	pdf.SetMargins(r.cfg.MarginsMM, r.cfg.MarginsMM, r.cfg.MarginsMM)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	printer := catalog.Default().Printer(sheet.Locale)

	pdf.SetTitle(sheet.Title, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-r.cfg.MarginsMM)
		pdf.SetFont(r.cfg.FontFamily, "I", 9)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	// problems
	pdf.AddPage()
	pdf.SetFont(r.cfg.FontFamily, "B", 22)
	pdf.CellFormat(0, 15, tr(sheet.Title), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont(r.cfg.FontFamily, "", 14)
	answerLine := tr(printer.Sprintf("drill.worksheet.answer_line"))
	for i, calc := range sheet.Problems {
		prompt := printer.Sprintf("drill.prompt", calc.A, calc.Operator.Symbol(), calc.B)
		pdf.MultiCell(0, 8, tr(fmt.Sprintf("%d. %s", i+1, prompt)), "", "L", false)
		pdf.MultiCell(0, 8, answerLine, "", "L", false)
	}

	// answer key
	pdf.AddPage()
	pdf.SetFont(r.cfg.FontFamily, "B", 22)
	pdf.CellFormat(0, 15, tr(sheet.Answers), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont(r.cfg.FontFamily, "", 14)
	for i, calc := range sheet.Problems {
		line := printer.Sprintf("%d %s %d = %d", calc.A, calc.Operator.Symbol(), calc.B, calc.C)
		pdf.MultiCell(0, 8, tr(fmt.Sprintf("%d. %s", i+1, line)), "", "L", false)
	}
	return pdf
}
