package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour with its readable text colour. Every slot
// is adaptive, so the active light/dark flag picks the variant at render
// time.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Accent  ColourSet
	Surface ColourSet
	Raised  ColourSet
	Success ColourSet
	Danger  ColourSet
	Warning ColourSet
	Neutral ColourSet
}

// SpacingSize enumerates supported spacing tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// BorderVariant selects one of the theme borders.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
}

// TypographyVariant names a text style.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantHeading
	TypographyVariantSubtitle
	TypographyVariantMuted
	TypographyVariantEmphasis
)

// TypographyScale contains the text styles.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Emphasis lipgloss.Style
}

// Theme bundles everything components need to render.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Padding    spacingTable
	Typography TypographyScale
}

// DefaultTheme mirrors the site's light (white/gray-900 text) and dark
// (gray-900/white text) schemes with a blue-to-purple accent.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#2563eb", "#3b82f6"),
			OnBase:   ac("#ffffff", "#ffffff"),
			Muted:    ac("#1d4ed8", "#2563eb"),
			Contrast: ac("#dbeafe", "#1e3a8a"),
		},
		Accent: ColourSet{
			Base:     ac("#9333ea", "#a855f7"),
			OnBase:   ac("#ffffff", "#ffffff"),
			Muted:    ac("#7e22ce", "#9333ea"),
			Contrast: ac("#f3e8ff", "#3b0764"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#111827"),
			OnBase:   ac("#111827", "#ffffff"),
			Muted:    ac("#4b5563", "#d1d5db"),
			Contrast: ac("#2563eb", "#60a5fa"),
		},
		Raised: ColourSet{
			Base:     ac("#f3f4f6", "#1f2937"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#d1d5db", "#374151"),
			Contrast: ac("#2563eb", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#16a34a", "#22c55e"),
			OnBase:   ac("#ffffff", "#052e16"),
			Muted:    ac("#dcfce7", "#14532d"),
			Contrast: ac("#15803d", "#4ade80"),
		},
		Danger: ColourSet{
			Base:     ac("#dc2626", "#ef4444"),
			OnBase:   ac("#ffffff", "#ffffff"),
			Muted:    ac("#fee2e2", "#7f1d1d"),
			Contrast: ac("#b91c1c", "#fca5a5"),
		},
		Warning: ColourSet{
			Base:     ac("#ca8a04", "#eab308"),
			OnBase:   ac("#ffffff", "#422006"),
			Muted:    ac("#fef9c3", "#713f12"),
			Contrast: ac("#a16207", "#fde047"),
		},
		Neutral: ColourSet{
			Base:     ac("#6b7280", "#9ca3af"),
			OnBase:   ac("#f9fafb", "#111827"),
			Muted:    ac("#9ca3af", "#4b5563"),
			Contrast: ac("#374151", "#e5e7eb"),
		},
	}

	return Theme{
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.HiddenBorder(),
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
		},
		Padding:    spacingTable{0, 1, 2, 3, 4},
		Typography: defaultTypography(palette),
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Heading:  body.Bold(true),
		Subtitle: body.Foreground(p.Surface.Muted),
		Muted:    body.Foreground(p.Neutral.Base),
		Emphasis: body.Bold(true),
	}
}

// Light and dark variants live in the AdaptiveColors, so one theme serves
// both schemes.
var activeTheme = DefaultTheme()

// GetTheme returns the theme components render with.
func GetTheme() Theme {
	return activeTheme
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the style for variant from the current theme.
func TypographyStyle(variant TypographyVariant) lipgloss.Style {
	typo := GetTheme().Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantHeading:
		return typo.Heading
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantMuted:
		return typo.Muted
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

// StyleApplier applies one styling concern to a lipgloss.Style.
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers to base using the current theme.
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	theme := GetTheme()
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteRaised  PaletteSlot = func(p Palette) ColourSet { return p.Raised }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour tints the border with the slot's base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border sets the border shape.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(borderForVariant(theme, variant))
	}
}

func borderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingX sets left and right padding.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY sets top and bottom padding.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Typography layers a text style under base.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(variant))
	}
}

// CardBaseStyle is the bordered panel used for every card.
func CardBaseStyle() []StyleApplier {
	return []StyleApplier{
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
		PaddingX(SpacingSizeSmall),
		PaddingY(SpacingSizeNone),
	}
}
