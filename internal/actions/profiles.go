package actions

import (
	"strings"

	json "github.com/goccy/go-json"

	"quoting-engine/internal/model"
)

// Profile updates are partial: only fields present in the properties are
// applied, everything else keeps its current value.

type updateClientProps struct {
	Name       *string   `json:"name"`
	CURP       *string   `json:"curp"`
	RFC        *string   `json:"rfc"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Address    *string   `json:"address"`
	Priorities *[]string `json:"priorities"`
}

type UpdateClientHandler struct{}

func (h *UpdateClientHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	var props updateClientProps
	json.Unmarshal(action.Properties, &props)

	if props.Name != nil && strings.TrimSpace(*props.Name) == "" {
		return []model.Message{{
			Level:   model.LevelCritical,
			Code:    "INVALID_NAME",
			Message: "Client name is empty or blank",
		}}
	}
	return nil
}

func (h *UpdateClientHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props updateClientProps
	json.Unmarshal(action.Properties, &props)

	c := &state.Client
	setString(&c.Name, props.Name)
	setString(&c.CURP, props.CURP)
	setString(&c.RFC, props.RFC)
	setString(&c.Email, props.Email)
	setString(&c.Phone, props.Phone)
	setString(&c.Address, props.Address)
	if props.Priorities != nil {
		var cleaned []string
		for _, p := range *props.Priorities {
			if p = strings.TrimSpace(p); p != "" {
				cleaned = append(cleaned, p)
			}
		}
		c.Priorities = cleaned
	}
	return nil
}

type autoRiskProps struct {
	Make         *string  `json:"make"`
	Model        *string  `json:"model"`
	Year         *int     `json:"year"`
	Trim         *string  `json:"trim"`
	VIN          *string  `json:"vin"`
	Plates       *string  `json:"plates"`
	Use          *string  `json:"use"`
	InvoiceValue *float64 `json:"invoice_value"`
}

type healthRiskProps struct {
	Age               *int    `json:"age"`
	Sex               *string `json:"sex"`
	Smoker            *string `json:"smoker"`
	PreferredHospital *string `json:"preferred_hospital"`
}

type lifeRiskProps struct {
	Age           *int     `json:"age"`
	Sex           *string  `json:"sex"`
	Smoker        *string  `json:"smoker"`
	Beneficiaries *string  `json:"beneficiaries"`
	DesiredSum    *float64 `json:"desired_sum"`
}

type updateRiskProps struct {
	Auto   *autoRiskProps   `json:"auto"`
	Health *healthRiskProps `json:"health"`
	Life   *lifeRiskProps   `json:"life"`
}

// UpdateRiskHandler patches the tagged risk variants. Any of the three
// may be updated regardless of the active line, matching the original
// flow where all variants persist across line switches.
type UpdateRiskHandler struct{}

func (h *UpdateRiskHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	var props updateRiskProps
	if err := json.Unmarshal(action.Properties, &props); err != nil {
		return []model.Message{{
			Level:   model.LevelCritical,
			Code:    "INVALID_RISK_PROPERTIES",
			Message: "Malformed risk profile properties: " + err.Error(),
		}}
	}
	return nil
}

func (h *UpdateRiskHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props updateRiskProps
	json.Unmarshal(action.Properties, &props)

	if a := props.Auto; a != nil {
		setString(&state.Auto.Make, a.Make)
		setString(&state.Auto.Model, a.Model)
		setInt(&state.Auto.Year, a.Year)
		setString(&state.Auto.Trim, a.Trim)
		setString(&state.Auto.VIN, a.VIN)
		setString(&state.Auto.Plates, a.Plates)
		setString(&state.Auto.Use, a.Use)
		setFloat(&state.Auto.InvoiceValue, a.InvoiceValue)
	}
	if g := props.Health; g != nil {
		setInt(&state.Health.Age, g.Age)
		setString(&state.Health.Sex, g.Sex)
		setString(&state.Health.Smoker, g.Smoker)
		setString(&state.Health.PreferredHospital, g.PreferredHospital)
	}
	if l := props.Life; l != nil {
		setInt(&state.Life.Age, l.Age)
		setString(&state.Life.Sex, l.Sex)
		setString(&state.Life.Smoker, l.Smoker)
		setString(&state.Life.Beneficiaries, l.Beneficiaries)
		setFloat(&state.Life.DesiredSum, l.DesiredSum)
	}
	return nil
}

type updateBillingProps struct {
	PaymentMethod *string `json:"payment_method"`
	Frequency     *string `json:"frequency"`
	Holder        *string `json:"holder"`
	TaxAddress    *string `json:"tax_address"`
}

type UpdateBillingHandler struct{}

func (h *UpdateBillingHandler) Validate(state *model.WizardState, action *model.Action) []model.Message {
	return nil
}

func (h *UpdateBillingHandler) Apply(state *model.WizardState, action *model.Action) []model.Message {
	var props updateBillingProps
	json.Unmarshal(action.Properties, &props)

	setString(&state.Billing.PaymentMethod, props.PaymentMethod)
	setString(&state.Billing.Frequency, props.Frequency)
	setString(&state.Billing.Holder, props.Holder)
	setString(&state.Billing.TaxAddress, props.TaxAddress)
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
