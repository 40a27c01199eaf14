package selection

import (
	"testing"

	"quoting-engine/internal/catalog"
	"quoting-engine/internal/model"
	"quoting-engine/internal/wizard"
)

func TestFilter(t *testing.T) {
	all := Filter(model.LineAuto, "")
	if len(all) != len(catalog.PoliciesFor(model.LineAuto)) {
		t.Fatalf("blank query must return the full catalog, got %d", len(all))
	}
	if got := Filter(model.LineAuto, "   "); len(got) != len(all) {
		t.Fatalf("whitespace query must return the full catalog, got %d", len(got))
	}

	got := Filter(model.LineAuto, "QUALITAS")
	if len(got) != 1 || got[0].ID != "qualitas-flex" {
		t.Fatalf("case-insensitive brand match failed: %v", got)
	}

	got = Filter(model.LineHealth, "elite")
	if len(got) != 1 || got[0].ID != "gnp-medica-elite" {
		t.Fatalf("name match failed: %v", got)
	}

	if got := Filter(model.LineLife, "zeppelin"); len(got) != 0 {
		t.Fatalf("no-match query must return nothing, got %v", got)
	}
}

func TestToggleNeverExceedsThree(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	var set []string
	// Any toggle sequence keeps the set within capacity.
	for i := 0; i < 50; i++ {
		set = Toggle(set, ids[i%len(ids)])
		if len(set) > model.MaxSelected {
			t.Fatalf("set grew past capacity: %v", set)
		}
	}
}

func TestToggleSemantics(t *testing.T) {
	set := Toggle(nil, "a")
	set = Toggle(set, "b")
	set = Toggle(set, "c")
	set = Toggle(set, "d") // silent no-op at capacity
	if len(set) != 3 {
		t.Fatalf("expected 3 members, got %v", set)
	}
	set = Toggle(set, "b")
	if len(set) != 2 || set[0] != "a" || set[1] != "c" {
		t.Fatalf("remove failed: %v", set)
	}
	set = Toggle(set, "d")
	if len(set) != 3 || set[2] != "d" {
		t.Fatalf("re-add after removal failed: %v", set)
	}
}

func TestResolveChosen(t *testing.T) {
	p, ok := ResolveChosen(model.LineAuto, "gnp-elite")
	if !ok || p.ID != "gnp-elite" {
		t.Fatalf("expected gnp-elite, got %+v", p)
	}

	// Unknown id falls back to the first catalog entry.
	p, ok = ResolveChosen(model.LineAuto, "stale-id")
	if !ok || p.ID != "axa-plus" {
		t.Fatalf("expected axa-plus fallback, got %+v", p)
	}

	if _, ok := ResolveChosen("boat", "anything"); ok {
		t.Fatal("empty catalog must resolve to nothing")
	}
}

func TestAnnualCostRoundTrip(t *testing.T) {
	for _, line := range model.Lines() {
		for _, p := range catalog.PoliciesFor(line) {
			want := p.Features[model.FeaturePriceMonthly] * 12
			if got := AnnualCost(p); got != want {
				t.Fatalf("%s/%s: annual cost %v, want %v", line, p.ID, got, want)
			}
		}
	}
	if got := AnnualCost(model.PolicyOffer{Features: map[string]float64{}}); got != 0 {
		t.Fatalf("missing price must cost 0, got %v", got)
	}
}

func TestBuildView(t *testing.T) {
	st := wizard.New(model.LineAuto, "Luis Valencia", "asesor@demo.mx")
	view := Build(st)
	if len(view.Selected) != 2 {
		t.Fatalf("expected 2 seeded selections, got %d", len(view.Selected))
	}
	if view.Chosen == nil || view.Chosen.ID != "axa-plus" {
		t.Fatalf("expected chosen axa-plus, got %+v", view.Chosen)
	}
	if view.AnnualCost != 879*12 {
		t.Fatalf("expected annual cost %v, got %v", 879*12, view.AnnualCost)
	}

	// Selected offers come back in catalog order regardless of toggle order.
	st.SelectedIDs = []string{"qualitas-flex", "axa-plus"}
	view = Build(st)
	if view.Selected[0].ID != "axa-plus" || view.Selected[1].ID != "qualitas-flex" {
		t.Fatalf("selected not in catalog order: %v", view.Selected)
	}
}
