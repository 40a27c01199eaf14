package model

// Wizard steps. The flow never self-terminates; StepIssuance is simply
// the last reachable step.
const (
	StepDiscovery = iota
	StepComparison
	StepApplication
	StepQuotation
	StepIssuance

	StepFirst = StepDiscovery
	StepLast  = StepIssuance
)

// MaxSelected bounds the comparison subset.
const MaxSelected = 3

var stepLabels = [...]string{
	"Descubrimiento",
	"Comparacion",
	"Solicitud",
	"Cotizacion",
	"Emision",
}

// StepLabel returns the display label for a step, or "" out of range.
func StepLabel(n int) string {
	if n < StepFirst || n > StepLast {
		return ""
	}
	return stepLabels[n]
}

type ClientProfile struct {
	Name       string   `json:"name"`
	CURP       string   `json:"curp"`
	RFC        string   `json:"rfc"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
	Priorities []string `json:"priorities"`
}

type AutoRisk struct {
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Trim         string  `json:"trim"`
	VIN          string  `json:"vin"`
	Plates       string  `json:"plates"`
	Use          string  `json:"use"`
	InvoiceValue float64 `json:"invoice_value"`
}

type HealthRisk struct {
	Age               int    `json:"age"`
	Sex               string `json:"sex"`
	Smoker            string `json:"smoker"`
	PreferredHospital string `json:"preferred_hospital"`
}

type LifeRisk struct {
	Age           int     `json:"age"`
	Sex           string  `json:"sex"`
	Smoker        string  `json:"smoker"`
	Beneficiaries string  `json:"beneficiaries"`
	DesiredSum    float64 `json:"desired_sum"`
}

type BillingProfile struct {
	PaymentMethod string `json:"payment_method"`
	Frequency     string `json:"frequency"`
	Holder        string `json:"holder"`
	TaxAddress    string `json:"tax_address"`
}

// FileRef records an attachment by name only; no content is stored.
type FileRef struct {
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
}

// ChecklistEntry is a required document for one product line. Entries are
// keyed by a generated ID so equal labels on two lines never share state.
type ChecklistEntry struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Custom bool     `json:"custom"`
	File   *FileRef `json:"file,omitempty"`
}

// WizardState is the mutable aggregate owned by one quoting session.
// All three risk variants are kept simultaneously so switching product
// lines does not discard form data; only the selection defaults reset.
type WizardState struct {
	Step         int                              `json:"step"`
	Line         ProductLine                      `json:"line"`
	AdvisorName  string                           `json:"advisor_name"`
	AdvisorEmail string                           `json:"advisor_email"`
	Client       ClientProfile                    `json:"client"`
	Auto         AutoRisk                         `json:"auto"`
	Health       HealthRisk                       `json:"health"`
	Life         LifeRisk                         `json:"life"`
	Billing      BillingProfile                   `json:"billing"`
	Checklists   map[ProductLine][]ChecklistEntry `json:"checklists"`
	SelectedIDs  []string                         `json:"selected_ids"`
	ChosenID     string                           `json:"chosen_id,omitempty"`
	DispatchRef  string                           `json:"dispatch_ref,omitempty"`
}
