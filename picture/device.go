package picture

import (
	"fmt"
	"strings"
)

// Tier is a device-targeted image variant.
type Tier int

const (
	Universal Tier = iota
	Mobile
	Tablet
	Desktop
)

// Devices lists the targetable tiers in their canonical order.
var Devices = []Tier{Mobile, Tablet, Desktop}

var tierNames = [...]string{
	Universal: "universal",
	Mobile:    "mobile",
	Tablet:    "tablet",
	Desktop:   "desktop",
}

func (t Tier) String() string {
	if t < Universal || t > Desktop {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// File specifiers prepended to the image name. UniversalSpecifier names
// shared assets in the asset pipeline but is never part of a generated path.
const (
	UniversalSpecifier = "u-"
	MobileSpecifier    = "m-"
	TabletSpecifier    = "t-"
	DesktopSpecifier   = "d-"
)

// prefix returns the file-name prefix for t inside a generated path.
func (t Tier) prefix() string {
	switch t {
	case Mobile:
		return MobileSpecifier
	case Tablet:
		return TabletSpecifier
	case Desktop:
		return DesktopSpecifier
	default:
		return ""
	}
}

// InvalidTierError reports a targeted device outside mobile, tablet and desktop.
type InvalidTierError struct {
	Value string
}

func (e *InvalidTierError) Error() string {
	return fmt.Sprintf("picture: invalid targeted device %q (want mobile, tablet or desktop)", e.Value)
}

// ParseTier parses a targeted device name, ignoring case and surrounding space.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mobile":
		return Mobile, nil
	case "tablet":
		return Tablet, nil
	case "desktop":
		return Desktop, nil
	}
	return 0, &InvalidTierError{Value: s}
}

// DeviceSet is a set of targeted device tiers. The zero value is empty,
// which means the image is device agnostic.
type DeviceSet uint8

// AllDevices targets mobile, tablet and desktop.
const AllDevices = DeviceSet(1<<Mobile | 1<<Tablet | 1<<Desktop)

// NewDeviceSet returns a set holding tiers. Universal is ignored.
func NewDeviceSet(tiers ...Tier) DeviceSet {
	var s DeviceSet
	for _, t := range tiers {
		s = s.With(t)
	}
	return s
}

// ParseDevices parses device names into a set. A nil slice targets all
// devices; an empty, non-nil slice is device agnostic.
func ParseDevices(names []string) (DeviceSet, error) {
	if names == nil {
		return AllDevices, nil
	}
	var s DeviceSet
	for _, n := range names {
		t, err := ParseTier(n)
		if err != nil {
			return 0, err
		}
		s = s.With(t)
	}
	return s, nil
}

// With returns s plus t.
func (s DeviceSet) With(t Tier) DeviceSet {
	if t < Mobile || t > Desktop {
		return s
	}
	return s | 1<<t
}

// Has reports whether t is targeted.
func (s DeviceSet) Has(t Tier) bool {
	if t < Mobile || t > Desktop {
		return false
	}
	return s&(1<<t) != 0
}

// Empty reports whether no device is targeted.
func (s DeviceSet) Empty() bool {
	return s&AllDevices == 0
}

// Tiers returns the targeted tiers in canonical order.
func (s DeviceSet) Tiers() []Tier {
	var out []Tier
	for _, t := range Devices {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s DeviceSet) String() string {
	if s.Empty() {
		return "[]"
	}
	names := make([]string, 0, 3)
	for _, t := range s.Tiers() {
		names = append(names, t.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
