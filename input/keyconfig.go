package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sweeper/minefield"
)

// Keymap section names as they appear in the config file
const (
	SectionRunes = "runes"
	SectionKeys  = "keys"
)

// LoadKeyConfig turns keymap sections (section -> key -> action) into a sparse override KeyTable
// Only sections/keys present are populated
// Returns error on unknown sections, action names or key names
func LoadKeyConfig(sections map[string]map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	for name, section := range sections {
		switch strings.ToLower(name) {
		case SectionRunes:
			runeMap, err := parseRuneSection(name, section)
			if err != nil {
				return nil, err
			}
			kt.Runes = runeMap
		case SectionKeys:
			keyMap, err := parseSpecialKeySection(name, section)
			if err != nil {
				return nil, err
			}
			kt.SpecialKeys = keyMap
		default:
			return nil, fmt.Errorf("unknown keymap section [%s]", name)
		}
	}

	return kt, nil
}

// parseRuneSection parses rune key → action name bindings
func parseRuneSection(section string, data map[string]string) (map[rune]minefield.Command, error) {
	result := make(map[rune]minefield.Command, len(data))

	for keyStr, actionName := range data {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		cmd, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[r] = cmd
	}

	return result, nil
}

// parseSpecialKeySection parses tcell key name → action name bindings
func parseSpecialKeySection(section string, data map[string]string) (map[tcell.Key]minefield.Command, error) {
	result := make(map[tcell.Key]minefield.Command, len(data))

	for keyStr, actionName := range data {
		k, ok := KeyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}

		cmd, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[k] = cmd
	}

	return result, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name to a command; "none" unbinds
func resolveAction(name string) (minefield.Command, error) {
	cmd, ok := minefield.ParseCommand(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return minefield.CmdNone, fmt.Errorf("unknown action: %q", name)
	}
	return cmd, nil
}
