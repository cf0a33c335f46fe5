package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemeIsAdaptive(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "#ffffff", theme.Palette.Surface.Base.Light)
	assert.Equal(t, "#111827", theme.Palette.Surface.Base.Dark)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, 2, theme.Padding[SpacingSizeSmall])
	assert.True(t, theme.Typography.Title.GetBold())
}

func TestSpacingLookupFallsBackToMedium(t *testing.T) {
	table := GetTheme().Padding
	assert.Equal(t, 2, spacingLookup(table, SpacingSizeSmall))
	assert.Equal(t, 3, spacingLookup(table, SpacingSize(99)))
}

func TestStyleAppliesInOrder(t *testing.T) {
	style := Style(lipgloss.NewStyle(), PaddingX(SpacingSizeSmall), PaddingY(SpacingSizeSmall), PaddingX(SpacingSizeNone))
	assert.Equal(t, 2, style.GetPaddingTop())
	assert.Equal(t, 0, style.GetPaddingLeft())
}

func TestCardRendersContent(t *testing.T) {
	view := ansi.Strip(NewCard(CardData{
		Icon:        "🔒",
		Title:       "Network Security",
		Description: "Protect your business.",
		ListTitle:   "Key Features:",
		Items:       []string{"Security Audits"},
		Action:      "Learn More",
	}).WithWidth(40).View())

	assert.Contains(t, view, "🔒 Network Security")
	assert.Contains(t, view, "Protect your business.")
	assert.Contains(t, view, "Key Features:")
	assert.Contains(t, view, "✓ Security Audits")
	assert.Contains(t, view, "Learn More →")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestCardActionFocusShowsMarker(t *testing.T) {
	plain := ansi.Strip(NewCard(CardData{Title: "x", Action: "Go"}).View())
	focused := ansi.Strip(NewCard(CardData{Title: "x", Action: "Go"}).WithActionFocus(true).View())

	assert.NotContains(t, plain, "▸")
	assert.Contains(t, focused, "▸ Go")
}

func TestButtonStates(t *testing.T) {
	idle := ansi.Strip(NewButton("Submit Request", ButtonOptions{}).View())
	focused := ansi.Strip(NewButton("Submit Request", ButtonOptions{Focus: true}).View())
	disabled := ansi.Strip(NewButton("Submitting...", ButtonOptions{Focus: true, Disabled: true}).View())

	assert.Contains(t, idle, "Submit Request")
	assert.Contains(t, focused, "▸")
	assert.NotContains(t, disabled, "▸", "disabled buttons never show focus")
}

func TestAlertVariants(t *testing.T) {
	view := ansi.Strip(SuccessAlert("Done", "All good").View())
	assert.Contains(t, view, "Done")
	assert.Contains(t, view, "All good")

	errView := ansi.Strip(ErrorAlert("Broken").WithWidth(30).View())
	assert.Contains(t, errView, "Broken")
	assert.Equal(t, 30, lipgloss.Width(strings.Split(errView, "\n")[0]))
}

func TestGridAndColumns(t *testing.T) {
	assert.Equal(t, 1, Columns(30, 40, 3))
	assert.Equal(t, 2, Columns(90, 40, 3))
	assert.Equal(t, 3, Columns(200, 40, 3))
	assert.Equal(t, 1, Columns(100, 0, 3))

	grid := Grid([]string{"a", "b", "c"}, 2)
	require.Equal(t, 2, lipgloss.Height(grid))
}

func TestFadeAndBlankKeepFootprint(t *testing.T) {
	block := Hero("Title", "Subtitle", 30)

	faded := Fade(block)
	assert.Equal(t, lipgloss.Height(block), lipgloss.Height(faded))
	assert.Contains(t, ansi.Strip(faded), "Title")

	blank := Blank(block)
	assert.Equal(t, lipgloss.Height(block), lipgloss.Height(blank))
	assert.Empty(t, strings.TrimSpace(blank))
}
