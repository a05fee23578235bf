// internal/util/util.go
package util

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// WriteFile writes data to path with 0o644 permissions, creating missing
// parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated. The ellipsis counts toward the limit.
func TruncateRunes(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes-1]) + "…"
}

// Center pads text with spaces to width runes, truncating when it does not fit.
func Center(text string, width int) string {
	text = TruncateRunes(text, width)
	gap := width - utf8.RuneCountInString(text)
	if gap <= 0 {
		return text
	}
	left := gap / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
}

// WrapToWidth wraps the given text to a specified width, breaking long words.
func WrapToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var cur strings.Builder
		runeCount := 0
		for _, w := range words {
			wLen := utf8.RuneCountInString(w)
			if runeCount > 0 && runeCount+1+wLen <= width {
				cur.WriteByte(' ')
				cur.WriteString(w)
				runeCount += 1 + wLen
				continue
			}
			if runeCount > 0 {
				out = append(out, cur.String())
				cur.Reset()
				runeCount = 0
			}
			r := []rune(w)
			for len(r) > width {
				out = append(out, string(r[:width]))
				r = r[width:]
			}
			cur.WriteString(string(r))
			runeCount = len(r)
		}
		out = append(out, cur.String())
	}
	return strings.Join(out, "\n")
}
