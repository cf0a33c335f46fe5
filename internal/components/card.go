package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a Card.
type CardStyle struct {
	BorderStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	ContentStyle lipgloss.Style
	IconStyle    lipgloss.Style
	ListStyle    lipgloss.Style
	Width        int
}

// DefaultCardStyle returns a card style using the current theme.
func DefaultCardStyle() CardStyle {
	return CardStyle{
		BorderStyle:  Style(lipgloss.NewStyle(), CardBaseStyle()...),
		TitleStyle:   Style(lipgloss.NewStyle(), Typography(TypographyVariantHeading)),
		ContentStyle: Style(lipgloss.NewStyle(), Typography(TypographyVariantSubtitle)),
		IconStyle:    lipgloss.NewStyle(),
		ListStyle:    Style(lipgloss.NewStyle(), Typography(TypographyVariantBody)),
		Width:        40,
	}
}

// CardData is the content of a card.
type CardData struct {
	Icon        string
	Title       string
	Description string
	ListTitle   string
	Items       []string
	// Action is the label of the card's link or button, if any.
	Action string
}

// Card renders a bordered panel with an optional action at the bottom.
type Card struct {
	data        CardData
	style       CardStyle
	actionFocus bool
}

// NewCard creates a card with the default style.
func NewCard(data CardData) *Card {
	return &Card{data: data, style: DefaultCardStyle()}
}

// WithWidth sets the outer width including the border.
func (c *Card) WithWidth(width int) *Card {
	c.style.Width = width
	return c
}

// WithActionFocus highlights the card's action.
func (c *Card) WithActionFocus(focused bool) *Card {
	c.actionFocus = focused
	return c
}

// View renders the card.
func (c *Card) View() string {
	inner := c.innerWidth()
	block := lipgloss.NewStyle()
	if inner > 0 {
		block = block.Width(inner)
	}

	var content []string
	if header := c.renderHeader(); header != "" {
		content = append(content, block.Render(header))
	}
	if c.data.Description != "" {
		content = append(content, block.Inherit(c.style.ContentStyle).Render(c.data.Description))
	}
	if len(c.data.Items) > 0 {
		content = append(content, "")
		if c.data.ListTitle != "" {
			content = append(content, block.Inherit(c.style.TitleStyle).Render(c.data.ListTitle))
		}
		for _, item := range c.data.Items {
			bullet := Style(lipgloss.NewStyle(), Foreground(PaletteSuccess)).Render("✓ ")
			content = append(content, bullet+c.style.ListStyle.Render(item))
		}
	}
	if c.data.Action != "" {
		content = append(content, "", NewButton(c.data.Action, ButtonOptions{
			Variant: ButtonVariantLink,
			Focus:   c.actionFocus,
		}).View())
	}

	style := c.style.BorderStyle
	if c.actionFocus {
		style = Style(style, BorderColour(PalettePrimary))
	}
	return style.Render(strings.Join(content, "\n"))
}

func (c *Card) renderHeader() string {
	if c.data.Title == "" && c.data.Icon == "" {
		return ""
	}

	var header strings.Builder
	if c.data.Icon != "" {
		header.WriteString(c.style.IconStyle.Render(c.data.Icon))
		header.WriteString(" ")
	}
	header.WriteString(c.style.TitleStyle.Render(c.data.Title))
	return header.String()
}

func (c *Card) innerWidth() int {
	if c.style.Width <= 0 {
		return 0
	}
	frame := c.style.BorderStyle.GetHorizontalFrameSize()
	if c.style.Width <= frame {
		return 0
	}
	return c.style.Width - frame
}
