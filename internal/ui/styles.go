package ui

import "github.com/charmbracelet/lipgloss"

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorGood    = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarn    = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

// ─── Shared styles ───────────────────────────────────────────────────────────

var (
	// Title renders screen headers.
	Title = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	// Muted renders secondary detail (paths, hints, footers).
	Muted = lipgloss.NewStyle().Foreground(ColorMuted)

	// Size renders byte counts in listings.
	Size = lipgloss.NewStyle().Bold(true).Foreground(ColorGood)

	// Warn renders heuristic reasons and non-fatal problems.
	Warn = lipgloss.NewStyle().Foreground(ColorWarn)

	// Danger renders destructive-action labels.
	Danger = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)

	// Selected highlights the cursor row in list views.
	Selected = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)
