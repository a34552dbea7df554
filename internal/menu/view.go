package menu

import (
	"fmt"
	"strings"

	"github.com/uvmole/uvmole/internal/core"
	"github.com/uvmole/uvmole/internal/scan"
	"github.com/uvmole/uvmole/internal/ui"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenScanning:
		return fmt.Sprintf("\n  %s Measuring disk usage…\n\n%s",
			m.sp.View(), m.footer("esc: back  q: quit"))
	case screenAnalysis:
		return m.viewAnalysis()
	case screenCandidates:
		return m.viewCandidates()
	default:
		return m.viewMain()
	}
}

func (m Model) viewMain() string {
	var s strings.Builder
	s.WriteString("\n  " + ui.Title.Render("uvmole — uv disk space manager") + "\n")
	s.WriteString("  " + ui.Muted.Render(m.paths.BasePath) + "\n\n")

	for i, item := range menuItems {
		cursor := "  "
		line := item
		if i == m.cursor {
			cursor = "> "
			line = ui.Selected.Render(item)
		}
		s.WriteString("  " + cursor + line + "\n")
	}

	s.WriteString("\n" + m.footer("↑/↓: move  enter: select  q: quit"))
	return s.String()
}

func (m Model) viewAnalysis() string {
	a := m.analysis
	var s strings.Builder
	s.WriteString("\n  " + ui.Title.Render("Detailed analysis") + "\n\n")

	s.WriteString(fmt.Sprintf("  uv cache       %s\n", ui.Size.Render(core.FormatSize(a.cache.Total))))
	for _, sub := range a.cache.Subdirs {
		s.WriteString(fmt.Sprintf("    %-20s %s\n", sub.Name, core.FormatSize(sub.Size)))
	}

	venvTotal := scan.TotalSize(a.envs)
	s.WriteString(fmt.Sprintf("\n  environments   %s (%d found)\n",
		ui.Size.Render(core.FormatSize(venvTotal)), len(a.envs)))
	for _, env := range a.envs {
		s.WriteString(fmt.Sprintf("    %-50s %s\n", env.Path, core.FormatSize(env.Size)))
	}

	if len(a.packages) > 0 {
		s.WriteString("\n  " + ui.Muted.Render("largest packages in "+a.envs[0].Path) + "\n")
		s.WriteString(m.pkgTable.View() + "\n")
	}

	s.WriteString("\n" + m.footer("esc: back  q: quit"))
	return s.String()
}

func (m Model) viewCandidates() string {
	var s strings.Builder
	s.WriteString("\n  " + ui.Title.Render("Cleanup recommendations") + "\n\n")

	if len(m.candidates) == 0 {
		s.WriteString("  " + ui.Muted.Render("No removal candidates — every environment looks active.") + "\n")
		s.WriteString("\n" + m.footer("esc: back  q: quit"))
		return s.String()
	}

	var total int64
	for i, c := range m.candidates {
		total += c.Size
		s.WriteString(fmt.Sprintf("  %d. %s  %s\n", i+1, c.EnvPath,
			ui.Size.Render(core.FormatSize(c.Size))))
		s.WriteString("     " + ui.Warn.Render(strings.Join(c.Reasons, ", ")) + "\n")
	}
	s.WriteString(fmt.Sprintf("\n  potential savings: %s\n", ui.Size.Render(core.FormatSize(total))))
	s.WriteString("  " + ui.Muted.Render("run 'uvmole prune' to remove candidates") + "\n")

	s.WriteString("\n" + m.footer("esc: back  q: quit"))
	return s.String()
}

func (m Model) footer(hint string) string {
	return "  " + ui.Muted.Render(hint) + "\n"
}
