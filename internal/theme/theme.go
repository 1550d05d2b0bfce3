// Package theme cycles through the fixed list of color themes.
package theme

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Names lists the themes in cycle order.
var Names = []string{
	"default",
	"theme-ocean",
	"theme-sunset",
	"theme-forest",
	"theme-purple",
}

// StatusPrefix starts the line written after each change.
const StatusPrefix = "🎨 Theme changed to: "

// Cycler holds the current theme index. The zero value starts at "default".
type Cycler struct {
	mu    sync.Mutex
	index int
}

// Next advances to the following theme and returns the status line.
func (c *Cycler) Next() string {
	c.mu.Lock()
	c.index = (c.index + 1) % len(Names)
	name := Names[c.index]
	c.mu.Unlock()

	return StatusPrefix + DisplayName(name)
}

// Current returns the active theme name.
func (c *Cycler) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Names[c.index]
}

// DisplayName turns "theme-ocean" into "Ocean". The default theme is shown as
// "Original".
func DisplayName(name string) string {
	s := strings.TrimPrefix(name, "theme-")
	s = strings.Replace(s, "-", " ", 1)
	if r, size := utf8.DecodeRuneInString(s); r != utf8.RuneError {
		s = string(unicode.ToUpper(r)) + s[size:]
	}
	if s == "Default" {
		return "Original"
	}
	return s
}
