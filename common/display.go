// Package common provides common utilities for terminal display and formatting
package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Default colors for display styles
	PrimaryColor    = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor  = lipgloss.Color("#6B97F7") // Light Blue
	SuccessColor    = lipgloss.Color("#00FF00") // Bright Green
	WarningColor    = lipgloss.Color("#F5B041") // Yellow
	ErrorColor      = lipgloss.Color("#FF0000") // Bright Red
	NormalTextColor = lipgloss.Color("#FFFFFF") // White
)

// BoxWidth is the fixed width of DisplayBox
const BoxWidth = 60

// RemoveColors drops all color output from lipgloss renders
func RemoveColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ClearScreen erases the terminal and moves the cursor home
func ClearScreen(w io.Writer) {
	termenv.NewOutput(w).ClearScreen()
}

// DisplayBox creates a nice looking box around content
func DisplayBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0).
		Width(BoxWidth)

	titleStyle := NewTitleStyle()

	output := titleStyle.Render(title) + "\n\n" + content

	return boxStyle.Render(output)
}

// SectionTitle formats a section title
func SectionTitle(title string) string {
	return NewTitleStyle().Render(title)
}

// ListItem formats a list item with bullet point and proper spacing
func ListItem(label string, value string) string {
	contentStyle := lipgloss.NewStyle().
		Align(lipgloss.Left).
		PaddingLeft(4)

	itemStyle := lipgloss.NewStyle().
		Foreground(NormalTextColor)

	line := fmt.Sprintf("•  %-18s  %s", label, value)

	return contentStyle.Render(itemStyle.Render(line))
}

// ColoredLine renders a full line of text in the given color
func ColoredLine(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		PaddingLeft(2).
		Render(text)
}

// Separator renders a horizontal rule that fits inside DisplayBox
func Separator() string {
	return lipgloss.NewStyle().
		Foreground(SecondaryColor).
		PaddingLeft(2).
		Render(strings.Repeat("─", BoxWidth-6))
}

// NewTitleStyle returns a style for titles
func NewTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)
}
