package hostrouter

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestValidSlug(t *testing.T) {
	valid := []string{
		"abc",
		"janith-and-sanduni",
		"a1b",
		"123",
		"x-y-z",
		strings.Repeat("a", 63),
	}
	for _, s := range valid {
		if !ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"ab",                     // too short
		strings.Repeat("a", 64),  // too long
		"-abc",                   // leading hyphen
		"abc-",                   // trailing hyphen
		"ABC",                    // uppercase
		"ab.c",                   // dot
		"ab_c",                   // underscore
		"a b",                    // space
		"café",                   // non-ASCII
	}
	for _, s := range invalid {
		if ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = true, want false", s)
		}
	}
}

// TestValidSlugMatchesGrammar cross-checks the hand-rolled validator against
// the grammar stated as a regular expression.
func TestValidSlugMatchesGrammar(t *testing.T) {
	gen := rapid.StringMatching(`[a-z0-9-]{0,70}`)
	rapid.Check(t, func(rt *rapid.T) {
		s := gen.Draw(rt, "slug")
		want := len(s) >= 3 && len(s) <= 63 &&
			s[0] != '-' && s[len(s)-1] != '-'
		if got := ValidSlug(s); got != want {
			rt.Fatalf("ValidSlug(%q) = %v, want %v", s, got, want)
		}
	})
}

// TestResolveIsPureFunction drives the resolver with arbitrary hosts and
// paths and checks determinism plus the "never rewrite an invalid label"
// guarantee.
func TestResolveIsPureFunction(t *testing.T) {
	resolver := NewResolver("example.com", "localhost", []string{"www", "api", "admin"})
	hostGen := rapid.StringMatching(`[a-zA-Z0-9.\-]{1,40}(\.example\.com)?(:[0-9]{1,5})?`)
	pathGen := rapid.StringMatching(`/[a-z0-9/\-]{0,20}`)

	rapid.Check(t, func(rt *rapid.T) {
		host := hostGen.Draw(rt, "host")
		path := pathGen.Draw(rt, "path")

		first := resolver.Resolve(host, path)
		second := resolver.Resolve(host, path)
		if first != second {
			rt.Fatalf("Resolve not deterministic for (%q, %q): %+v vs %+v", host, path, first, second)
		}

		if first.Kind == KindTenant {
			if !ValidSlug(first.Slug) {
				rt.Fatalf("tenant decision with invalid slug %q from host %q", first.Slug, host)
			}
			if resolver.IsReserved(first.Slug) {
				rt.Fatalf("tenant decision with reserved slug %q from host %q", first.Slug, host)
			}
			if want := "/" + first.Slug + path; first.RewrittenPath != want {
				rt.Fatalf("rewritten path = %q, want %q", first.RewrittenPath, want)
			}
		}
	})
}
