package picture

import "fmt"

// Visibility classes from the site's utility stylesheet.
const (
	HiddenSmallUp    = "u-hidden--sm-up"
	HiddenMediumUp   = "u-hidden--md-up"
	HiddenSmallDown  = "u-hidden--sm-down"
	HiddenMediumDown = "u-hidden--md-down"
)

type breakpoint int

const (
	noMedia breakpoint = iota
	smallUp
	largeUp
)

type tierRule struct {
	classes []string
	media   breakpoint
}

// selectionRules holds every non-empty targeted set. Each tier is hidden in
// the range claimed by a narrower or wider active neighbour, and only the
// wider tiers carry a min-width media query.
var selectionRules = map[DeviceSet]map[Tier]tierRule{
	NewDeviceSet(Mobile):  {Mobile: {}},
	NewDeviceSet(Tablet):  {Tablet: {}},
	NewDeviceSet(Desktop): {Desktop: {}},
	NewDeviceSet(Mobile, Tablet): {
		Mobile: {classes: []string{HiddenSmallUp}},
		Tablet: {classes: []string{HiddenSmallDown}, media: smallUp},
	},
	NewDeviceSet(Mobile, Desktop): {
		Mobile:  {classes: []string{HiddenMediumUp}},
		Desktop: {classes: []string{HiddenMediumDown}, media: smallUp},
	},
	NewDeviceSet(Tablet, Desktop): {
		Tablet:  {classes: []string{HiddenMediumUp}},
		Desktop: {classes: []string{HiddenMediumDown}, media: largeUp},
	},
	AllDevices: {
		Mobile:  {classes: []string{HiddenSmallUp}},
		Tablet:  {classes: []string{HiddenMediumUp, HiddenSmallDown}, media: smallUp},
		Desktop: {classes: []string{HiddenMediumDown}, media: largeUp},
	},
}

// renderOrder is the order <source> elements are emitted in: wider tiers
// first so their min-width queries are tested before the unconditional ones.
var renderOrder = []Tier{Universal, Desktop, Tablet, Mobile}

// TierSelection is the markup decision for one active tier.
type TierSelection struct {
	Tier    Tier
	Classes []string
	Media   string
}

// Selection lists the active tiers in render order.
type Selection struct {
	DeviceAgnostic bool
	Tiers          []TierSelection
}

// Active reports whether t is rendered.
func (s Selection) Active(t Tier) bool {
	_, ok := s.Lookup(t)
	return ok
}

// Lookup returns the selection for t.
func (s Selection) Lookup(t Tier) (TierSelection, bool) {
	for _, ts := range s.Tiers {
		if ts.Tier == t {
			return ts, true
		}
	}
	return TierSelection{}, false
}

// Select decides which tiers to render for devices. An empty set renders
// only the universal tier, without media queries or visibility classes.
// The returned selection owns its slices.
func Select(devices DeviceSet, bp Breakpoints) Selection {
	devices &= AllDevices
	if devices.Empty() {
		return Selection{
			DeviceAgnostic: true,
			Tiers:          []TierSelection{{Tier: Universal}},
		}
	}
	rules := selectionRules[devices]
	sel := Selection{Tiers: make([]TierSelection, 0, len(rules))}
	for _, t := range renderOrder {
		rule, ok := rules[t]
		if !ok {
			continue
		}
		sel.Tiers = append(sel.Tiers, TierSelection{
			Tier:    t,
			Classes: append([]string(nil), rule.classes...),
			Media:   bp.media(rule.media),
		})
	}
	return sel
}

func (b Breakpoints) media(at breakpoint) string {
	switch at {
	case smallUp:
		return fmt.Sprintf("(min-width: %dpx)", b.Small)
	case largeUp:
		return fmt.Sprintf("(min-width: %dpx)", b.Large)
	default:
		return ""
	}
}
