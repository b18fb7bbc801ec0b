// Package tui implements the Bubble Tea demo program for drawer.
package tui

import (
	lipgloss "charm.land/lipgloss/v2"
)

// Tokyo Night color palette.
var (
	colorGreen  = lipgloss.Color("#9ece6a") // green
	colorYellow = lipgloss.Color("#e0af68") // yellow
	colorBlue   = lipgloss.Color("#7aa2f7") // blue
	colorGray   = lipgloss.Color("#565f89") // comment
	colorWhite  = lipgloss.Color("#c0caf5") // foreground
	colorRed    = lipgloss.Color("#f7768e") // red
	colorOrange = lipgloss.Color("#ff9e64") // orange
	colorPurple = lipgloss.Color("#bb9af7") // magenta
	colorPanel  = lipgloss.Color("#1f2335") // bg highlight
	colorInk    = lipgloss.Color("#1a1b26") // bg
)

// Banner ASCII art for the header.
const banner = `
 ╔╦╗╦═╗╔═╗╦ ╦╔═╗╦═╗
  ║║╠╦╝╠═╣║║║║╣ ╠╦╝
 ═╩╝╩╚═╩ ╩╚╩╝╚═╝╩╚═`

// bannerStyle styles the ASCII art banner.
var bannerStyle = lipgloss.NewStyle().
	Foreground(colorBlue).
	Bold(true).
	PaddingLeft(1).
	PaddingBottom(1)

// Launcher and footer styles.
var (
	launcherButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Bold(true).
				Foreground(colorInk)

	launcherKeyStyle = lipgloss.NewStyle().
				Foreground(colorInk).
				Faint(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// Menu panel styles.
var (
	panelStyle = lipgloss.NewStyle().
			Background(colorPanel).
			Foreground(colorWhite)

	sideMenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorPanel)

	sideMenuTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue).
				PaddingLeft(1)

	// Selected item style (matches border color).
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// Normal item style.
	normalStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	calendarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOrange).
			Background(colorPanel).
			Padding(0, 1)

	calendarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorOrange)
)

// Form styles, shared by the bottom sheet and the center dialog.
var (
	formIconStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	formDividerStyle = lipgloss.NewStyle().
				Foreground(colorGray)

	formCapsuleStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	formButtonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#3b4261")).
			Foreground(lipgloss.Color("#a9b1d6"))

	formButtonSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(colorOrange).
				Foreground(colorInk).
				Bold(true)
)
