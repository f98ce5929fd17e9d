package light

import (
	"fmt"
	"strings"
)

// ShadowType selects how occluders themselves are lit by a light. The light
// only carries the value; shadow geometry decides what it means.
type ShadowType int

const (
	// ShadowIlluminated lights the occluders that intersect the light.
	ShadowIlluminated ShadowType = iota
	// ShadowSolid leaves occluders unlit.
	ShadowSolid
	// ShadowOccluded lights an occluder only when no other occluder hides it.
	ShadowOccluded
)

func (s ShadowType) String() string {
	switch s {
	case ShadowIlluminated:
		return "illuminated"
	case ShadowSolid:
		return "solid"
	case ShadowOccluded:
		return "occluded"
	default:
		return fmt.Sprintf("ShadowType(%d)", int(s))
	}
}

// ParseShadowType converts a config name into a ShadowType.
func ParseShadowType(s string) (ShadowType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "illuminated":
		return ShadowIlluminated, nil
	case "solid":
		return ShadowSolid, nil
	case "occluded":
		return ShadowOccluded, nil
	default:
		return ShadowIlluminated, fmt.Errorf("unknown shadow type %q", s)
	}
}
