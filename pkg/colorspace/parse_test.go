package colorspace

import (
	"fmt"
	"math"
	"testing"
)

func TestParseToneHexForms(t *testing.T) {
	full, ok := ParseTone("#ff69b4")
	if !ok {
		t.Fatal("#ff69b4 should parse")
	}
	bare, ok := ParseTone("ff69b4")
	if !ok {
		t.Fatal("bare hex should parse")
	}
	if full != bare {
		t.Errorf("hash and bare hex disagree: %+v vs %+v", full, bare)
	}

	short, ok := ParseTone("#f6b")
	if !ok {
		t.Fatal("#f6b should parse")
	}
	expanded, _ := ParseTone("#ff66bb")
	if short != expanded {
		t.Errorf("#f6b should expand to #ff66bb: %+v vs %+v", short, expanded)
	}
}

func TestParseToneOklchEquivalence(t *testing.T) {
	hex, ok := ParseTone("#ff69b4")
	if !ok {
		t.Fatal("hex should parse")
	}
	lit := fmt.Sprintf("oklch(%.6f %.6f %.6f)", hex.L, hex.C, hex.H)
	parsed, ok := ParseTone(lit)
	if !ok {
		t.Fatalf("%q should parse", lit)
	}
	const eps = 1e-5
	if math.Abs(parsed.L-hex.L) > eps || math.Abs(parsed.C-hex.C) > eps || math.Abs(parsed.H-hex.H) > eps {
		t.Errorf("oklch literal drifted: %+v vs %+v", parsed, hex)
	}
}

func TestParseToneOklchPercent(t *testing.T) {
	a, ok := ParseTone("oklch(70% 0.15 340)")
	if !ok {
		t.Fatal("percent literal should parse")
	}
	b, _ := ParseTone("oklch(0.7 0.15 340)")
	if a != b {
		t.Errorf("70%% and 0.7 should parse identically: %+v vs %+v", a, b)
	}
}

func TestParseToneNamed(t *testing.T) {
	pink, ok := ParseTone("hotpink")
	if !ok {
		t.Fatal("hotpink should resolve")
	}
	hex, _ := ParseTone("#ff69b4") // hotpink's sRGB value
	if pink != hex {
		t.Errorf("hotpink should match #ff69b4: %+v vs %+v", pink, hex)
	}

	// Black is valid at zero lightness.
	black, ok := ParseTone("black")
	if !ok {
		t.Fatal("black should resolve")
	}
	if black.L > 0.001 {
		t.Errorf("black should have zero lightness, got %v", black.L)
	}

	// Case and whitespace are normalized.
	if upper, ok := ParseTone("  HotPink "); !ok || upper != pink {
		t.Error("named parsing should be case-insensitive and trimmed")
	}
}

func TestParseToneNameFallsThroughToHex(t *testing.T) {
	// "abc" is not a color name but is valid 3-digit hex.
	got, ok := ParseTone("abc")
	if !ok {
		t.Fatal("abc should parse as hex")
	}
	want, _ := ParseTone("#aabbcc")
	if got != want {
		t.Errorf("abc should parse as #aabbcc: %+v vs %+v", got, want)
	}
}

func TestParseToneRejects(t *testing.T) {
	invalid := []string{
		"",
		"not-a-color-xyz",
		"#ff",
		"#ff69b",
		"#gggggg",
		"oklch(0.7 0.15)",
		"oklch(0.7, 0.15, 340, 1)",
		"rgb(1 2 3)",
		"zzzzzz",
	}
	for _, tok := range invalid {
		if _, ok := ParseTone(tok); ok {
			t.Errorf("ParseTone(%q) should fail", tok)
		}
	}
}
