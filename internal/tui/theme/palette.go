package theme

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timesynx/internal/overlap"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Base        lipgloss.Color
	Warning     lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnWarning lipgloss.Color

	levels   [4]lipgloss.Color
	levelBgs [4]lipgloss.Color
	levelFgs [4]lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	isLight := isLightTheme(t.Bg)
	p := &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Base:        lipgloss.Color(t.Base),
		Warning:     lipgloss.Color(t.Warning),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),
	}

	for level, hex := range map[overlap.Level]string{
		overlap.LevelNone:   t.None,
		overlap.LevelLow:    t.Low,
		overlap.LevelMedium: t.Medium,
		overlap.LevelHigh:   t.High,
	} {
		bg := levelBg(hex, t.Bg, isLight)
		p.levels[level] = lipgloss.Color(hex)
		p.levelBgs[level] = lipgloss.Color(bg)
		p.levelFgs[level] = lipgloss.Color(chooseTextColor(bg, t.Fg, t.Bg))
	}
	return p
}

// Level returns the foreground color for an overlap level.
func (p *Palette) Level(l overlap.Level) lipgloss.Color {
	return p.levels[clampLevel(l)]
}

// LevelBg returns the timeline cell background for an overlap level.
func (p *Palette) LevelBg(l overlap.Level) lipgloss.Color {
	return p.levelBgs[clampLevel(l)]
}

// TextOnLevel returns a readable foreground for LevelBg(l).
func (p *Palette) TextOnLevel(l overlap.Level) lipgloss.Color {
	return p.levelFgs[clampLevel(l)]
}

func clampLevel(l overlap.Level) overlap.Level {
	if l < overlap.LevelNone {
		return overlap.LevelNone
	}
	if l > overlap.LevelHigh {
		return overlap.LevelHigh
	}
	return l
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// levelBg softens a level color so timeline cells stay readable.
func levelBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.60)
	}
	return blendColors(accent, bg, 0.45)
}

// parseRGB splits "#rrggbb" into its channels.
func parseRGB(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// formatHexColor formats RGB values as a hex color string.
func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	result := make([]byte, 7)
	result[0] = '#'
	result[1] = hex[r>>4]
	result[2] = hex[r&0xf]
	result[3] = hex[g>>4]
	result[4] = hex[g&0xf]
	result[5] = hex[b>>4]
	result[6] = hex[b&0xf]
	return string(result)
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := parseRGB(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// blendColors mixes a toward b by ratio (0 keeps a, 1 gives b).
func blendColors(a, b string, ratio float64) string {
	ar, ag, ab, okA := parseRGB(a)
	br, bg, bb, okB := parseRGB(b)
	if !okA || !okB {
		return a
	}
	ratio = math.Max(0, math.Min(1, ratio))

	mix := func(x, y int) int {
		return int(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return formatHexColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
