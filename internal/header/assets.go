package header

import "github.com/hailey21/notion-blog/internal/scroll"

// CSS returns the stylesheet for the header and its progress bar.
func CSS() string {
	return Stylesheet + scroll.Style
}

// JS returns the client script for the theme toggle and progress bar.
func JS() string {
	return toggleScript + scroll.Script
}
