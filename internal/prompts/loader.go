// Package prompts holds the LLM prompt templates used for document
// extraction, embedded at compile time as JSON files of key → template.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFS embed.FS

// The embedded files are immutable, so they are parsed exactly once.
var (
	parseOnce sync.Once
	library   map[string]map[string]string
	parseErr  error
)

func load() (map[string]map[string]string, error) {
	parseOnce.Do(func() {
		entries, err := promptFS.ReadDir(".")
		if err != nil {
			parseErr = fmt.Errorf("failed to read embedded prompts: %w", err)
			return
		}
		library = make(map[string]map[string]string, len(entries))
		for _, entry := range entries {
			data, err := promptFS.ReadFile(entry.Name())
			if err != nil {
				parseErr = fmt.Errorf("failed to read prompt file %s: %w", entry.Name(), err)
				return
			}
			var templates map[string]string
			if err := json.Unmarshal(data, &templates); err != nil {
				parseErr = fmt.Errorf("failed to parse prompt file %s: %w", entry.Name(), err)
				return
			}
			library[entry.Name()] = templates
		}
	})
	return library, parseErr
}

// Get returns the template stored under key in the named embedded file.
func Get(filename, key string) (string, error) {
	lib, err := load()
	if err != nil {
		return "", err
	}
	templates, ok := lib[filename]
	if !ok {
		return "", fmt.Errorf("unknown prompt file %q", filename)
	}
	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for prompts whose absence is a packaging bug.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with the corresponding values.
func Format(template string, values map[string]string) string {
	out := template
	for name, value := range values {
		out = strings.ReplaceAll(out, "{{."+name+"}}", value)
	}
	return out
}

// List returns the sorted prompt keys defined in the named file.
func List(filename string) ([]string, error) {
	lib, err := load()
	if err != nil {
		return nil, err
	}
	templates, ok := lib[filename]
	if !ok {
		return nil, fmt.Errorf("unknown prompt file %q", filename)
	}
	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
