package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the lowercase reverse of tcell.KeyNames
var keysByName map[string]tcell.Key

func init() {
	keysByName = make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		keysByName[strings.ToLower(name)] = k
	}
}

// KeyByName resolves a tcell key name such as "Enter" or "Ctrl-C", case-insensitive
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KeyName returns the display label of a special key
func KeyName(k tcell.Key) string {
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return "?"
}

// RuneName returns the display label of a rune key
func RuneName(r rune) string {
	for name, alias := range runeAliases {
		if alias == r {
			return name
		}
	}
	return string(r)
}
