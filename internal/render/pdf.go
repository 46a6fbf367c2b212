package render

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"mostruario-service/internal/catalog/model"
)

const pageBreakAt = 250.0 // mm, manual break threshold for image rows

// WritePDF draws the assembled report onto A4 pages. Image references that
// do not resolve to a readable file under staticDir are skipped; the report
// always completes.
func WritePDF(w io.Writer, rep model.Report, staticDir string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Produto: "+rep.Header.Name))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr("Fornecedor: "+rep.Header.SupplierCode+"    Marca: "+rep.Header.Brand))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Última atualização: "+rep.Header.LastUpdated))
	pdf.Ln(10)

	drawImageRow(pdf, rep.Images, staticDir, 60)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Acabamentos Disponíveis:"))
	pdf.Ln(10)

	for _, g := range rep.Groups {
		if pdf.GetY() > pageBreakAt {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, tr(g.Category))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		for _, e := range g.Entries {
			if pdf.GetY() > pageBreakAt {
				pdf.AddPage()
			}
			line := "- " + e.FinishName
			if e.Status != "" {
				line += " (" + e.Status
				if e.StatusDate != "" {
					line += ", " + e.StatusDate
				}
				line += ")"
			}
			if e.Composition != "" {
				line += "  " + e.Composition
			}
			pdf.Cell(150, 6, tr(line))

			if path := assetFile(staticDir, e.Image); path != "" {
				pdf.ImageOptions(path, 165, pdf.GetY()-2, 22, 22, false,
					fpdf.ImageOptions{ReadDpi: true}, 0, "")
				pdf.Ln(24)
			} else {
				pdf.Ln(6)
			}
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

// drawImageRow lays existing images side by side and advances the cursor
// below the row.
func drawImageRow(pdf *fpdf.Fpdf, images []string, staticDir string, size float64) {
	x := 10.0
	y := pdf.GetY()
	drawn := false
	for _, img := range images {
		path := assetFile(staticDir, img)
		if path == "" {
			continue
		}
		if x+size > 200 {
			break
		}
		pdf.ImageOptions(path, x, y, size, size, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		x += size + 5
		drawn = true
	}
	if drawn {
		pdf.SetY(y + size + 6)
	}
}

// assetFile maps a root-relative public path back to a file on disk; "" when
// the file is missing or unreadable.
func assetFile(staticDir, public string) string {
	if public == "" || !strings.HasPrefix(public, "/static/") {
		return ""
	}
	p := filepath.Join(staticDir, filepath.FromSlash(strings.TrimPrefix(public, "/static/")))
	st, err := os.Stat(p)
	if err != nil || st.IsDir() {
		return ""
	}
	return p
}
