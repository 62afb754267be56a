// Package theme defines the three-role color contract shared by every layout
// variant and the merge rule that keeps it fully populated.
package theme

// Palette is the three-role color set used to style a rendered invitation.
// A resolved palette is always fully populated; partial customization is an
// Override concern, never a Palette one.
type Palette struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Accent    string `json:"accent" yaml:"accent"`
}

// IsComplete reports whether all three roles are set. The registry asserts
// this for every template default at boot.
func (p Palette) IsComplete() bool {
	return p.Primary != "" && p.Secondary != "" && p.Accent != ""
}

// Override is a tenant's partial palette customization. An empty field means
// "keep the template default" for that role.
type Override struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`
}

// IsZero reports whether the override changes nothing.
func (o Override) IsZero() bool {
	return o == Override{}
}

// Resolve merges an optional override into a default palette field by field.
// Each of the three roles is independently defaultable; absent or empty
// override fields retain the default. Color syntax is not validated here,
// only completeness of the result.
func Resolve(def Palette, override *Override) Palette {
	if override == nil {
		return def
	}
	resolved := def
	if override.Primary != "" {
		resolved.Primary = override.Primary
	}
	if override.Secondary != "" {
		resolved.Secondary = override.Secondary
	}
	if override.Accent != "" {
		resolved.Accent = override.Accent
	}
	return resolved
}
