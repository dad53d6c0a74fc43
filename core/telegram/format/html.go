package format

import "html"

// EscapeHTML escapes user-provided text for Telegram HTML parse mode.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// Bold wraps already-safe text in bold tags.
func Bold(text string) string {
	return "<b>" + text + "</b>"
}

// Italic wraps already-safe text in italic tags.
func Italic(text string) string {
	return "<i>" + text + "</i>"
}

// Code wraps already-safe text in monospace tags.
func Code(text string) string {
	return "<code>" + text + "</code>"
}

// Underline wraps already-safe text in underline tags.
func Underline(text string) string {
	return "<u>" + text + "</u>"
}
