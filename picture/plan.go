package picture

import "strings"

// PlanEntry is everything needed to emit the <source> and fallback <img>
// for one active tier.
type PlanEntry struct {
	Tier   Tier
	URL    string
	SrcSet string
	// Alternate URLs for the other hover state; empty without a hover variant.
	AltURL    string
	AltSrcSet string
	Class     string
	Media     string
	Type      string
}

// RenderPlan is the resolved markup decision for one request and hover state.
type RenderPlan struct {
	DeviceAgnostic bool
	State          HoverState
	HasHover       bool
	Entries        []PlanEntry
}

// Tiers returns the active tiers in render order.
func (p RenderPlan) Tiers() []Tier {
	out := make([]Tier, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Tier
	}
	return out
}

// Plan resolves r for the given hover state. imageClass is prepended to each
// tier's visibility classes. Without a hover variant both states render the
// rest image.
func (res *Resolver) Plan(r Request, state HoverState, imageClass string) RenderPlan {
	sources := res.Build(r)
	sel := Select(r.Devices, res.breakpoints)
	plan := RenderPlan{
		DeviceAgnostic: sel.DeviceAgnostic,
		State:          state,
		HasHover:       r.Hover,
		Entries:        make([]PlanEntry, 0, len(sel.Tiers)),
	}
	mime := "image/" + r.Extension
	for _, ts := range sel.Tiers {
		src := sources[ts.Tier]
		e := PlanEntry{
			Tier:   ts.Tier,
			URL:    src.URL,
			SrcSet: src.SrcSet,
			Class:  joinClasses(imageClass, ts.Classes...),
			Media:  ts.Media,
			Type:   mime,
		}
		if src.HasHover() {
			e.AltURL, e.AltSrcSet = src.HoverURL, src.HoverSrcSet
			if state.IsHovering() {
				e.URL, e.AltURL = e.AltURL, e.URL
				e.SrcSet, e.AltSrcSet = e.AltSrcSet, e.SrcSet
			}
		}
		plan.Entries = append(plan.Entries, e)
	}
	return plan
}

func joinClasses(base string, extra ...string) string {
	parts := strings.Fields(base)
	for _, c := range extra {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
