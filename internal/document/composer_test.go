package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoting-engine/internal/model"
	"quoting-engine/internal/selection"
	"quoting-engine/internal/wizard"
)

func autoFixture(t *testing.T) (*model.WizardState, selection.View) {
	t.Helper()
	st := wizard.New(model.LineAuto, "Luis Valencia", "asesor@demo.mx")
	st.SelectedIDs = []string{"axa-plus", "qualitas-flex"}
	st.ChosenID = "axa-plus"
	return st, selection.Build(st)
}

func joined(rows []line) string {
	var b strings.Builder
	for _, ln := range rows {
		b.WriteString(ln.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestBuildAutoProposalContent(t *testing.T) {
	st, view := autoFixture(t)
	text := joined(NewComposer().build(st, view))

	assert.Contains(t, text, "Propuesta de Seguro - Auto")
	assert.Contains(t, text, "Asesor: Luis Valencia")
	assert.Contains(t, text, "Cliente: Maria Lopez")
	assert.Contains(t, text, "Vehiculo: Nissan Versa 2022")
	assert.Contains(t, text, "Comparativa (resumen)")
	assert.Contains(t, text, "AXA")
	assert.Contains(t, text, "Qualitas")
	assert.NotContains(t, text, "GNP", "unselected offers stay out of the comparison")
	assert.Contains(t, text, "Plan seleccionado")
	assert.Contains(t, text, "Costo anual: $10,548") // 879 * 12
	assert.Contains(t, text, "Consentimientos y privacidad (demo)")
}

func TestBuildFallsBackToTopThreeWhenNothingSelected(t *testing.T) {
	st, _ := autoFixture(t)
	st.SelectedIDs = nil
	view := selection.Build(st)

	text := joined(NewComposer().build(st, view))
	assert.Contains(t, text, "1. AXA")
	assert.Contains(t, text, "2. GNP")
	assert.Contains(t, text, "3. Qualitas")
}

func TestBuildLifeProposalRiskBlock(t *testing.T) {
	st := wizard.New(model.LineLife, "a", "b")
	text := joined(NewComposer().build(st, selection.Build(st)))

	assert.Contains(t, text, "Propuesta de Seguro - Vida")
	assert.Contains(t, text, "Beneficiarios: Juan (50%), Ana (50%)")
	assert.Contains(t, text, "Suma deseada: $1,000,000")
}

func TestBuildDeductibleFallsBackToND(t *testing.T) {
	st := wizard.New(model.LineLife, "a", "b")
	view := selection.Build(st)
	require.NotNil(t, view.Chosen)
	_, ok := view.Chosen.Feature("deductible")
	require.False(t, ok, "life offers carry no deductible")

	text := joined(NewComposer().build(st, view))
	assert.Contains(t, text, "Deducible: N/D")
}

func TestGenerateProducesPDFArtifact(t *testing.T) {
	st, view := autoFixture(t)

	art, err := NewComposer().Generate(st, view)
	require.NoError(t, err)
	require.True(t, art.Live())

	data := art.Data()
	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Equal(t, len(data), art.Size)
	assert.GreaterOrEqual(t, art.Pages, 1)
	assert.NotEmpty(t, art.ID)

	art.Release()
	assert.False(t, art.Live())
	assert.Nil(t, art.Data())
}

func TestWrapRespectsWidth(t *testing.T) {
	rows := wrap("uno dos tres cuatro cinco seis siete", 10)
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.LessOrEqual(t, len(r), 10)
	}
	assert.Equal(t, "uno dos tres cuatro cinco seis siete", strings.Join(rows, " "))
}
