// Package selection derives the comparison subset and chosen offer from
// the wizard state. Everything here is recomputed on read; the catalogs
// are small enough that caching buys nothing.
package selection

import (
	"strings"

	"quoting-engine/internal/catalog"
	"quoting-engine/internal/model"
)

// Filter returns the offers whose "{brand} {name}" contains the query,
// case-insensitively. Blank queries return the full catalog.
func Filter(line model.ProductLine, query string) []model.PolicyOffer {
	all := catalog.PoliciesFor(line)
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return all
	}
	var out []model.PolicyOffer
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Brand+" "+p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

// Toggle removes id if present, otherwise adds it while the set holds
// fewer than MaxSelected members. A fourth selection is a silent no-op.
func Toggle(set []string, id string) []string {
	for i, v := range set {
		if v == id {
			return append(append([]string{}, set[:i]...), set[i+1:]...)
		}
	}
	if len(set) >= model.MaxSelected {
		return set
	}
	return append(append([]string{}, set...), id)
}

// Selected resolves ids to offers, preserving catalog order.
func Selected(line model.ProductLine, ids []string) []model.PolicyOffer {
	var out []model.PolicyOffer
	for _, p := range catalog.PoliciesFor(line) {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// ResolveChosen returns the offer for chosenID if it belongs to the
// line's catalog, else the first catalog entry, else nothing.
func ResolveChosen(line model.ProductLine, chosenID string) (model.PolicyOffer, bool) {
	if p, ok := catalog.Find(line, chosenID); ok {
		return p, true
	}
	all := catalog.PoliciesFor(line)
	if len(all) == 0 {
		return model.PolicyOffer{}, false
	}
	return all[0], true
}

// AnnualCost is the monthly premium times twelve; zero when absent.
func AnnualCost(p model.PolicyOffer) float64 {
	return p.Features[model.FeaturePriceMonthly] * 12
}

// View is the derived snapshot served alongside the wizard state and
// consumed by the document composer.
type View struct {
	Selected   []model.PolicyOffer `json:"selected"`
	Chosen     *model.PolicyOffer  `json:"chosen,omitempty"`
	AnnualCost float64             `json:"annual_cost"`
}

// Build computes the derived view for the current state.
func Build(st *model.WizardState) View {
	v := View{Selected: Selected(st.Line, st.SelectedIDs)}
	if chosen, ok := ResolveChosen(st.Line, st.ChosenID); ok {
		v.Chosen = &chosen
		v.AnnualCost = AnnualCost(chosen)
	}
	return v
}
