// Package palette derives ordered color palettes from seed streams.
//
// A palette's first entry is always the background/base color (the
// "primary"); the remaining entries are accents ("secondary"), kept
// darker and less saturated so the primary reads as the dominant tone.
// When the caller supplies tone constraints, hues are jittered around
// the selected tone; without tones the whole palette shares a single
// seeded hue and only lightness and chroma vary, producing a monotone
// look.
package palette

import (
	"math"

	"github.com/matzehuels/hashvatar/pkg/colorspace"
	"github.com/matzehuels/hashvatar/pkg/seed"
)

// SeedsPerColor is how many seed values one palette entry consumes.
const SeedsPerColor = 3

// hueJitter is the maximum deviation, in degrees, from a selected
// tone's hue.
const hueJitter = 30

// Derivation ranges. Primaries sit in the light, saturated band;
// secondaries sit lower and lean on the tone's own chroma.
const (
	primaryLightMin   = 0.58
	primaryLightSpan  = 0.22
	primaryChromaMin  = 0.13
	primaryChromaSpan = 0.18

	secondaryLightMin   = 0.32
	secondaryLightSpan  = 0.25
	secondaryChromaSpan = 0.10
	secondaryToneBias   = 0.55

	monoPrimaryLightMin    = 0.55
	monoPrimaryLightSpan   = 0.28
	monoPrimaryChromaMin   = 0.08
	monoPrimaryChromaSpan  = 0.10
	monoSecondaryLightMin  = 0.30
	monoSecondaryLightSpan = 0.30
	monoSecondaryChromaMin = 0.04
	monoSecondaryChromaSpn = 0.08
)

// Generate derives a single color from three seed values in [0,1).
//
// With tones, hueSeed both selects a tone (by index) and jitters the
// hue within ±30° of it. Without tones, every entry shares baseHue and
// the seeds drive only lightness and chroma. Secondary colors use
// darker, less saturated ranges than the primary. Chroma is capped by
// the colorspace package.
func Generate(hueSeed, lightSeed, chromaSeed float64, tones []colorspace.Color, secondary bool, baseHue float64) colorspace.Color {
	if len(tones) > 0 {
		n := len(tones)
		tone := tones[int(math.Floor(hueSeed*float64(n)))%n]
		hue := tone.H + hueSeed*2*hueJitter - hueJitter
		if secondary {
			return colorspace.New(
				secondaryLightMin+lightSeed*secondaryLightSpan,
				tone.C*secondaryToneBias+chromaSeed*secondaryChromaSpan,
				hue,
			)
		}
		return colorspace.New(
			primaryLightMin+lightSeed*primaryLightSpan,
			primaryChromaMin+chromaSeed*primaryChromaSpan,
			hue,
		)
	}

	if secondary {
		return colorspace.New(
			monoSecondaryLightMin+lightSeed*monoSecondaryLightSpan,
			monoSecondaryChromaMin+chromaSeed*monoSecondaryChromaSpn,
			baseHue,
		)
	}
	return colorspace.New(
		monoPrimaryLightMin+lightSeed*monoPrimaryLightSpan,
		monoPrimaryChromaMin+chromaSeed*monoPrimaryChromaSpan,
		baseHue,
	)
}

// FromSeeds derives len(seeds)/3 colors from an already-drawn seed
// stream. Index 0 is the primary; the shared monotone hue comes from
// the first seed value.
func FromSeeds(seeds []float64, tones []colorspace.Color) []colorspace.Color {
	count := len(seeds) / SeedsPerColor
	if count == 0 {
		return nil
	}
	baseHue := seeds[0] * 360
	out := make([]colorspace.Color, count)
	for i := range out {
		out[i] = Generate(
			seeds[SeedsPerColor*i],
			seeds[SeedsPerColor*i+1],
			seeds[SeedsPerColor*i+2],
			tones, i > 0, baseHue,
		)
	}
	return out
}

// FromHash derives count colors from an input string, drawing 3×count
// seed values. Tone tokens that fail to parse are dropped; if none
// survive, derivation falls back to monotone.
func FromHash(input string, toneTokens []string, count int) []colorspace.Color {
	return FromSeeds(seed.Values(input, SeedsPerColor*count), ParseTones(toneTokens))
}

// ParseTones parses tone tokens per colorspace.ParseTone, silently
// dropping malformed entries and preserving order.
func ParseTones(tokens []string) []colorspace.Color {
	var out []colorspace.Color
	for _, tok := range tokens {
		if c, ok := colorspace.ParseTone(tok); ok {
			out = append(out, c)
		}
	}
	return out
}
