package picture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectAllCombinations(t *testing.T) {
	bp := Breakpoints{Small: 768, Large: 1024}
	const (
		small = "(min-width: 768px)"
		large = "(min-width: 1024px)"
	)
	tests := []struct {
		name    string
		devices DeviceSet
		want    Selection
	}{
		{
			name:    "none",
			devices: 0,
			want:    Selection{DeviceAgnostic: true, Tiers: []TierSelection{{Tier: Universal}}},
		},
		{
			name:    "mobile",
			devices: NewDeviceSet(Mobile),
			want:    Selection{Tiers: []TierSelection{{Tier: Mobile}}},
		},
		{
			name:    "tablet",
			devices: NewDeviceSet(Tablet),
			want:    Selection{Tiers: []TierSelection{{Tier: Tablet}}},
		},
		{
			name:    "desktop",
			devices: NewDeviceSet(Desktop),
			want:    Selection{Tiers: []TierSelection{{Tier: Desktop}}},
		},
		{
			name:    "mobile tablet",
			devices: NewDeviceSet(Mobile, Tablet),
			want: Selection{Tiers: []TierSelection{
				{Tier: Tablet, Classes: []string{HiddenSmallDown}, Media: small},
				{Tier: Mobile, Classes: []string{HiddenSmallUp}},
			}},
		},
		{
			name:    "mobile desktop",
			devices: NewDeviceSet(Mobile, Desktop),
			want: Selection{Tiers: []TierSelection{
				{Tier: Desktop, Classes: []string{HiddenMediumDown}, Media: small},
				{Tier: Mobile, Classes: []string{HiddenMediumUp}},
			}},
		},
		{
			name:    "tablet desktop",
			devices: NewDeviceSet(Tablet, Desktop),
			want: Selection{Tiers: []TierSelection{
				{Tier: Desktop, Classes: []string{HiddenMediumDown}, Media: large},
				{Tier: Tablet, Classes: []string{HiddenMediumUp}},
			}},
		},
		{
			name:    "all",
			devices: AllDevices,
			want: Selection{Tiers: []TierSelection{
				{Tier: Desktop, Classes: []string{HiddenMediumDown}, Media: large},
				{Tier: Tablet, Classes: []string{HiddenMediumUp, HiddenSmallDown}, Media: small},
				{Tier: Mobile, Classes: []string{HiddenSmallUp}},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.devices, bp)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Select(%s) mismatch (-want +got):\n%s", tt.devices, diff)
			}
		})
	}
}

func TestSelectActiveTiersMatchDevices(t *testing.T) {
	for mask := DeviceSet(0); mask <= AllDevices; mask++ {
		devices := mask & AllDevices
		sel := Select(devices, DefaultBreakpoints)
		if devices.Empty() {
			if !sel.Active(Universal) || len(sel.Tiers) != 1 {
				t.Errorf("%s: want universal only, got %+v", devices, sel.Tiers)
			}
			if sel.Tiers[0].Media != "" {
				t.Errorf("%s: universal must not carry a media query", devices)
			}
			continue
		}
		if sel.Active(Universal) {
			t.Errorf("%s: universal must not be combined with device tiers", devices)
		}
		for _, tier := range Devices {
			if sel.Active(tier) != devices.Has(tier) {
				t.Errorf("%s: Active(%s) = %v", devices, tier, sel.Active(tier))
			}
		}
		if ts, ok := sel.Lookup(Mobile); ok && ts.Media != "" {
			t.Errorf("%s: mobile must not carry a media query", devices)
		}
	}
}

func TestSelectMobileDesktopPrecedence(t *testing.T) {
	bp := Breakpoints{Small: 600, Large: 1200}
	sel := Select(NewDeviceSet(Mobile, Desktop), bp)

	mobile, _ := sel.Lookup(Mobile)
	if diff := cmp.Diff([]string{HiddenMediumUp}, mobile.Classes); diff != "" {
		t.Errorf("mobile classes (-want +got):\n%s", diff)
	}
	desktop, _ := sel.Lookup(Desktop)
	if desktop.Media != "(min-width: 600px)" {
		t.Errorf("desktop media = %q, want small breakpoint", desktop.Media)
	}
	if sel.Active(Tablet) {
		t.Error("tablet must be inactive")
	}
}

func TestHoverState(t *testing.T) {
	var h HoverState
	if h != Resting {
		t.Fatalf("initial state = %s, want resting", h)
	}
	h.Enter()
	if !h.IsHovering() {
		t.Fatalf("after Enter state = %s, want hovering", h)
	}
	h.Leave()
	if h != Resting {
		t.Fatalf("after Leave state = %s, want resting", h)
	}
	h.Toggle()
	h.Toggle()
	if h != Resting {
		t.Fatalf("after two toggles state = %s, want resting", h)
	}
}

func TestPlanHoverRoundTrip(t *testing.T) {
	res := newTestResolver(t)
	req := Request{Name: "x", Extension: "jpeg", Devices: AllDevices, Hover: true}

	var h HoverState
	initial := res.Plan(req, h, "")
	h.Enter()
	hovering := res.Plan(req, h, "")
	h.Leave()
	back := res.Plan(req, h, "")

	if diff := cmp.Diff(initial, back); diff != "" {
		t.Errorf("enter+leave changed the plan (-initial +back):\n%s", diff)
	}
	for i, e := range hovering.Entries {
		if e.SrcSet != initial.Entries[i].AltSrcSet || e.AltSrcSet != initial.Entries[i].SrcSet {
			t.Errorf("%s: hovering did not swap srcsets", e.Tier)
		}
	}
	mobile := hovering.Entries[len(hovering.Entries)-1]
	if mobile.Tier != Mobile || mobile.URL != "url:/m-x-01.jpeg" {
		t.Errorf("hovering mobile = %+v, want -01 file", mobile)
	}
	if initial.Entries[len(initial.Entries)-1].URL != "url:/m-x-02.jpeg" {
		t.Errorf("resting mobile URL = %q, want -02 file", initial.Entries[len(initial.Entries)-1].URL)
	}
}

func TestPlanWithoutHoverVariantIgnoresState(t *testing.T) {
	res := newTestResolver(t)
	req := Request{Name: "bed", Extension: "png"}
	resting := res.Plan(req, Resting, "")
	hovering := res.Plan(req, Hovering, "")
	resting.State = hovering.State
	if diff := cmp.Diff(resting, hovering); diff != "" {
		t.Errorf("plan changed with hover state (-resting +hovering):\n%s", diff)
	}
}

func TestPlanEntries(t *testing.T) {
	res := newTestResolver(t)
	plan := res.Plan(Request{Name: "bed", Extension: "png", Devices: NewDeviceSet(Mobile, Tablet)}, Resting, "photo rounded")
	want := []PlanEntry{
		{
			Tier:   Tablet,
			URL:    "url:/t-bed.png",
			SrcSet: "srcset:/t-bed.png",
			Class:  "photo rounded " + HiddenSmallDown,
			Media:  "(min-width: 768px)",
			Type:   "image/png",
		},
		{
			Tier:   Mobile,
			URL:    "url:/m-bed.png",
			SrcSet: "srcset:/m-bed.png",
			Class:  "photo rounded " + HiddenSmallUp,
			Type:   "image/png",
		},
	}
	if diff := cmp.Diff(want, plan.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if plan.DeviceAgnostic {
		t.Error("plan must not be device agnostic")
	}
}

func TestSelectReturnsIndependentClasses(t *testing.T) {
	first := Select(AllDevices, DefaultBreakpoints)
	mobile, _ := first.Lookup(Mobile)
	mobile.Classes[0] = "mutated"

	second := Select(AllDevices, DefaultBreakpoints)
	got, _ := second.Lookup(Mobile)
	if diff := cmp.Diff([]string{HiddenSmallUp}, got.Classes); diff != "" {
		t.Errorf("editing one selection leaked into the next (-want +got):\n%s", diff)
	}
}
