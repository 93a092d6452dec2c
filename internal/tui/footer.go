package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// CompactWidth is the terminal width below which the footer drops
// binding descriptions.
const CompactWidth = 72

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)
	return styleFooter.Width(f.Width).Render(line)
}

// ExplorerFooterBindings returns the footer bindings for the wheel
// explorer.
func ExplorerFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Partner, km.Top, km.Bottom, km.Quit}
}
