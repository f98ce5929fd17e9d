package light

import (
	"math"
	"strings"
)

// DirtyFlags records which tracked light attributes changed since the
// consumer last cleared them.
type DirtyFlags uint32

const (
	DirtyCastsShadows DirtyFlags = 1 << 0
	DirtyPosition     DirtyFlags = 1 << 1
	DirtyRadius       DirtyFlags = 1 << 2
	DirtyRange        DirtyFlags = 1 << 3
	DirtyEnabled      DirtyFlags = 1 << 4

	DirtyAll DirtyFlags = math.MaxInt32
)

var dirtyNames = []struct {
	flag DirtyFlags
	name string
}{
	{DirtyCastsShadows, "CastsShadows"},
	{DirtyPosition, "Position"},
	{DirtyRadius, "Radius"},
	{DirtyRange, "Range"},
	{DirtyEnabled, "Enabled"},
}

func (f DirtyFlags) String() string {
	if f == 0 {
		return "None"
	}
	if f == DirtyAll {
		return "All"
	}
	var parts []string
	for _, n := range dirtyNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Property identifies a configurable light attribute.
type Property int

const (
	PropEnabled Property = iota
	PropCastsShadows
	PropPosition
	PropRange
	PropRadius
	PropIntensity
	PropShadowType
	PropColor
	PropTexture
)

type propertyInfo struct {
	name      string
	validated bool
	flag      DirtyFlags
}

// properties declares, per attribute, whether its setter validates the
// argument and which dirty flag a change raises. A zero flag means the
// attribute is not tracked and consumers have to poll it.
var properties = [...]propertyInfo{
	PropEnabled:      {name: "Enabled", flag: DirtyEnabled},
	PropCastsShadows: {name: "CastsShadows", flag: DirtyCastsShadows},
	PropPosition:     {name: "Position", flag: DirtyPosition},
	PropRange:        {name: "Range", validated: true, flag: DirtyRange},
	PropRadius:       {name: "Radius", validated: true, flag: DirtyRadius},
	PropIntensity:    {name: "Intensity"},
	PropShadowType:   {name: "ShadowType"},
	PropColor:        {name: "Color"},
	PropTexture:      {name: "Texture"},
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(properties) {
		return "Unknown"
	}
	return properties[p].name
}

// Flag returns the dirty flag raised when the property changes, or 0 if the
// property is untracked.
func (p Property) Flag() DirtyFlags {
	if p < 0 || int(p) >= len(properties) {
		return 0
	}
	return properties[p].flag
}

// Tracked reports whether changes to the property raise a dirty flag.
func (p Property) Tracked() bool {
	return p.Flag() != 0
}

// Validated reports whether the property's setter can reject its argument.
func (p Property) Validated() bool {
	if p < 0 || int(p) >= len(properties) {
		return false
	}
	return properties[p].validated
}

// assign stores v into dst when it differs and raises the property's flag.
func assign[T comparable](l *Light, p Property, dst *T, v T) {
	if *dst == v {
		return
	}
	*dst = v
	l.dirty |= p.Flag()
}
