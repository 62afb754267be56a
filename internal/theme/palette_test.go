package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var elegantRose = Palette{Primary: "#e35d72", Secondary: "#2d3b4c", Accent: "#f9d5da"}

func TestResolve(t *testing.T) {
	t.Run("nil override returns default unchanged", func(t *testing.T) {
		assert.Equal(t, elegantRose, Resolve(elegantRose, nil))
	})

	t.Run("zero override returns default unchanged", func(t *testing.T) {
		assert.Equal(t, elegantRose, Resolve(elegantRose, &Override{}))
	})

	t.Run("single-field override keeps remaining defaults", func(t *testing.T) {
		got := Resolve(elegantRose, &Override{Primary: "#000000"})
		assert.Equal(t, Palette{
			Primary:   "#000000",
			Secondary: "#2d3b4c",
			Accent:    "#f9d5da",
		}, got)
	})

	t.Run("full override replaces every role", func(t *testing.T) {
		got := Resolve(elegantRose, &Override{Primary: "#111", Secondary: "#222", Accent: "#333"})
		assert.Equal(t, Palette{Primary: "#111", Secondary: "#222", Accent: "#333"}, got)
	})
}

// TestResolveAlwaysComplete checks the color contract property: whatever the
// override looks like, a complete default resolves to a complete palette.
func TestResolveAlwaysComplete(t *testing.T) {
	hexish := rapid.StringMatching(`(#[0-9a-f]{6})?`)
	rapid.Check(t, func(rt *rapid.T) {
		override := Override{
			Primary:   hexish.Draw(rt, "primary"),
			Secondary: hexish.Draw(rt, "secondary"),
			Accent:    hexish.Draw(rt, "accent"),
		}
		got := Resolve(elegantRose, &override)
		if !got.IsComplete() {
			rt.Fatalf("resolved palette incomplete: %+v", got)
		}
		// Per-field: override wins iff non-empty.
		wantPrimary := elegantRose.Primary
		if override.Primary != "" {
			wantPrimary = override.Primary
		}
		if got.Primary != wantPrimary {
			rt.Fatalf("primary = %q, want %q", got.Primary, wantPrimary)
		}
	})
}
