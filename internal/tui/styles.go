package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/stepwalk/core"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorAmber  = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
	colorBright = lipgloss.Color("255")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(11)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleCode    = lipgloss.NewStyle().Foreground(colorGray)
	styleActive  = lipgloss.NewStyle().Bold(true).Foreground(colorBright).Background(lipgloss.Color("24"))
	stylePane    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	styleCounter = lipgloss.NewStyle().Foreground(colorCyan)
)

var nodeStyles = map[core.NodeStatus]lipgloss.Style{
	core.NodeDefault:    lipgloss.NewStyle().Foreground(colorGray),
	core.NodeFrontier:   lipgloss.NewStyle().Foreground(colorAmber),
	core.NodeProcessing: lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	core.NodeVisited:    lipgloss.NewStyle().Foreground(colorBlue),
}

var edgeStyles = map[core.EdgeStatus]lipgloss.Style{
	core.EdgeDefault:    lipgloss.NewStyle().Foreground(colorGray),
	core.EdgeQueued:     lipgloss.NewStyle().Foreground(colorAmber),
	core.EdgeProcessing: lipgloss.NewStyle().Foreground(colorRed),
	core.EdgeVisited:    lipgloss.NewStyle().Foreground(colorBlue),
	core.EdgeUseless:    lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true),
}
