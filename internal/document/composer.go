// Package document renders the quotation proposal PDF from the wizard
// state and the derived selection.
package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"quoting-engine/internal/catalog"
	"quoting-engine/internal/model"
	"quoting-engine/internal/selection"
)

// Layout constants: A4 portrait in points, single column, greedy page
// breaks once the cursor passes breakY. No widow/orphan control.
const (
	marginX   = 56.0
	marginY   = 56.0
	lineH     = 18.0
	breakY    = 760.0
	wrapWidth = 95
)

// line is one rendered row of the document.
type line struct {
	Text   string
	Bold   bool
	Size   float64
	Indent float64
	Gap    float64 // extra vertical advance before the row
	Muted  bool
}

type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Generate renders the proposal for the current state. It fails only if
// the PDF primitive fails; callers treat that as report-only.
func (c *Composer) Generate(st *model.WizardState, view selection.View) (*Artifact, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	y := marginY
	for _, ln := range c.build(st, view) {
		y += ln.Gap
		if y > breakY {
			pdf.AddPage()
			y = marginY
		}
		style := ""
		if ln.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, ln.Size)
		if ln.Muted {
			pdf.SetTextColor(120, 120, 120)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Text(marginX+ln.Indent, y, tr(ln.Text))
		y += lineH
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render proposal pdf: %w", err)
	}

	return &Artifact{
		ID:        uuid.New().String(),
		Pages:     pdf.PageCount(),
		Size:      buf.Len(),
		CreatedAt: time.Now().UTC(),
		data:      buf.Bytes(),
	}, nil
}

// build produces the document rows in order: header, client block, risk
// block, comparison per selected offer, chosen-plan summary, consent
// boilerplate, disclaimer.
func (c *Composer) build(st *model.WizardState, view selection.View) []line {
	var out []line
	add := func(ln line) {
		if ln.Size == 0 {
			ln.Size = 10
		}
		out = append(out, ln)
	}

	add(line{Text: "Propuesta de Seguro - " + st.Line.Label(), Bold: true, Size: 16})
	add(line{Text: fmt.Sprintf("Asesor: %s  -  Email: %s", st.AdvisorName, st.AdvisorEmail)})
	add(line{Text: fmt.Sprintf("Cliente: %s  -  Tel: %s  -  Email: %s", st.Client.Name, st.Client.Phone, st.Client.Email)})
	add(line{Text: "Prioridades: " + orND(strings.Join(st.Client.Priorities, ", "))})

	switch st.Line {
	case model.LineAuto:
		add(line{Text: fmt.Sprintf("Vehiculo: %s %s %d - VIN %s", st.Auto.Make, st.Auto.Model, st.Auto.Year, st.Auto.VIN)})
		add(line{Text: fmt.Sprintf("Placas: %s - Uso: %s - Valor factura: %s",
			st.Auto.Plates, st.Auto.Use, selection.FormatMoney(st.Auto.InvoiceValue))})
	case model.LineHealth:
		add(line{Text: fmt.Sprintf("Edad: %d - Sexo: %s - Fuma: %s - Hospital: %s",
			st.Health.Age, st.Health.Sex, st.Health.Smoker, st.Health.PreferredHospital)})
	default:
		add(line{Text: fmt.Sprintf("Edad: %d - Sexo: %s - Fuma: %s - Beneficiarios: %s",
			st.Life.Age, st.Life.Sex, st.Life.Smoker, st.Life.Beneficiaries)})
		add(line{Text: "Suma deseada: " + selection.FormatMoney(st.Life.DesiredSum)})
	}

	add(line{Text: "Comparativa (resumen)", Bold: true, Size: 12, Gap: lineH})

	criteria := catalog.CriteriaFor(st.Line)
	items := view.Selected
	if len(items) == 0 {
		all := catalog.PoliciesFor(st.Line)
		if len(all) > 3 {
			all = all[:3]
		}
		items = all
	}

	for i, p := range items {
		add(line{Text: fmt.Sprintf("%d. %s", i+1, p.Display()), Bold: true})
		for _, crit := range criteria {
			v, ok := p.Feature(crit.Key)
			add(line{
				Text:   fmt.Sprintf("- %s: %s%s", crit.Label, selection.FormatValue(crit, v, ok), selection.Suffix(st.Line, crit.Key)),
				Indent: 14,
			})
		}
		add(line{Text: "", Gap: 6})
	}

	if view.Chosen != nil {
		p := *view.Chosen
		add(line{Text: "Plan seleccionado", Bold: true, Gap: lineH})
		deductible := "N/D"
		if d, ok := p.Feature("deductible"); ok {
			deductible = selection.FormatNumber(d) + "%"
		}
		add(line{Text: fmt.Sprintf("%s  |  Costo anual: %s  |  Deducible: %s",
			p.Display(), selection.FormatMoney(view.AnnualCost), deductible)})
	}

	add(line{Text: "Consentimientos y privacidad (demo)", Bold: true, Gap: lineH})
	consent := "El cliente ha sido informado de coberturas, exclusiones y deducibles. " +
		"Autoriza el tratamiento de datos para cotizar y emitir la poliza."
	for _, w := range wrap(consent, wrapWidth) {
		add(line{Text: w})
	}

	add(line{
		Text:  "*Documento demostrativo sin validez legal. Condiciones generales disponibles con cada aseguradora.",
		Size:  8,
		Muted: true,
		Gap:   lineH,
	})

	return out
}

func orND(s string) string {
	if s == "" {
		return "N/D"
	}
	return s
}

// wrap splits text on word boundaries so no row exceeds width runes.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	var rows []string
	var cur string
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if len(cur)+1+len(w) > width {
			rows = append(rows, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	if cur != "" {
		rows = append(rows, cur)
	}
	return rows
}
