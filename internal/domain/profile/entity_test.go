package profile

import "testing"

func TestDaysIn(t *testing.T) {
	p := Profile{Visits: []Visit{
		{Country: "Portugal", Days: 20},
		{Country: "portugal", Days: 10},
		{Country: "Spain", Days: 5},
		{Country: "", Days: 99},
	}}

	if got := p.DaysIn([]string{"Portugal"}); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if got := p.DaysIn([]string{"Portugal", "Spain"}); got != 35 {
		t.Fatalf("expected 35, got %d", got)
	}
	if got := p.DaysIn(nil); got != 0 {
		t.Fatalf("expected 0 for no countries, got %d", got)
	}
}

func TestVisitsIn(t *testing.T) {
	p := Profile{Visits: []Visit{
		{Country: "Portugal", Days: 20},
		{Country: "Spain", Days: 5},
	}}
	got := p.VisitsIn([]string{" portugal "})
	if len(got) != 1 || got[0].Days != 20 {
		t.Fatalf("expected the Portugal visit, got %v", got)
	}
}

func TestSharedTags(t *testing.T) {
	p := Profile{Tags: []string{"Yoga", "van life"}}
	got := p.SharedTags([]string{"yoga", "photography", "VAN LIFE"})
	if len(got) != 2 {
		t.Fatalf("expected 2 shared tags, got %v", got)
	}
	if !p.HasTag(" YOGA ") {
		t.Fatalf("expected case-insensitive tag lookup")
	}
}
