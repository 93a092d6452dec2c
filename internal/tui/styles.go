package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // cyan accent
	colorShadow      = lipgloss.Color("#FF5252") // red, shadow frequency
	colorGift        = lipgloss.Color("#00E676") // green, gift frequency
	colorSiddhi      = lipgloss.Color("#FFD700") // gold, siddhi frequency
	colorMuted       = lipgloss.Color("#636363") // gray, de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // lighter gray, normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // off-white, primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // pure white, emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // dark surface, status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // darkest surface, footer bg
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)
)

// Wheel row styles.
var (
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Spectrum styles for the three frequencies of a key.
var (
	styleShadow = lipgloss.NewStyle().Foreground(colorShadow)
	styleGift   = lipgloss.NewStyle().Foreground(colorGift)
	styleSiddhi = lipgloss.NewStyle().Foreground(colorSiddhi)
)

// Detail panel styles.
var (
	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
