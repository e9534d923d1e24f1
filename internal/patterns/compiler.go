package patterns

import (
	"regexp"
	"strings"
)

// Format is a named pattern with {PLACEHOLDER} references to BasePatterns.
type Format struct {
	Name     string         // Format name for identification
	Pattern  string         // Pattern with {PLACEHOLDER} syntax
	Compiled *regexp.Regexp // Compiled regex (populated by Compile)
	Fields   []string       // Field names in capture order (for documentation)
}

// Compiler expands and compiles a set of formats and matches text against them.
// Text is upper-cased before matching, so patterns are written in upper case.
type Compiler struct {
	basePatterns map[string]string
	formats      []Format
}

// NewCompiler creates a compiler for formats. localPatterns are layered over
// BasePatterns and may override them.
func NewCompiler(formats []Format, localPatterns map[string]string) *Compiler {
	c := &Compiler{
		basePatterns: make(map[string]string, len(BasePatterns)+len(localPatterns)),
		formats:      make([]Format, len(formats)),
	}
	for k, v := range BasePatterns {
		c.basePatterns[k] = v
	}
	for k, v := range localPatterns {
		c.basePatterns[k] = v
	}
	copy(c.formats, formats)
	return c
}

// MustCompile is like NewCompiler followed by Compile but panics on a bad
// pattern. It is meant for package-level format tables.
func MustCompile(formats []Format, localPatterns map[string]string) *Compiler {
	c := NewCompiler(formats, localPatterns)
	if err := c.Compile(); err != nil {
		panic(err)
	}
	return c
}

// Compile expands all {PLACEHOLDER} references and compiles regexes.
func (c *Compiler) Compile() error {
	for i := range c.formats {
		re, err := regexp.Compile(c.expand(c.formats[i].Pattern))
		if err != nil {
			return err
		}
		c.formats[i].Compiled = re
	}
	return nil
}

func (c *Compiler) expand(pattern string) string {
	result := pattern
	for name, regex := range c.basePatterns {
		result = strings.ReplaceAll(result, "{"+name+"}", regex)
	}
	return result
}

// Match represents a successful pattern match with extracted fields.
type Match struct {
	FormatName string            // Name of the matched format
	Captures   map[string]string // Named capture group values
}

func captures(re *regexp.Regexp, match []string) map[string]string {
	out := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		out[name] = match[i]
	}
	return out
}

// Parse returns the first format that matches text, or nil.
func (c *Compiler) Parse(text string) *Match {
	upper := strings.ToUpper(text)
	for _, f := range c.formats {
		if f.Compiled == nil {
			continue
		}
		if m := f.Compiled.FindStringSubmatch(upper); m != nil {
			return &Match{FormatName: f.Name, Captures: captures(f.Compiled, m)}
		}
	}
	return nil
}

// GetCapture returns a capture value, or defaultVal when missing or empty.
func (m *Match) GetCapture(name string, defaultVal string) string {
	if m == nil {
		return defaultVal
	}
	if val, ok := m.Captures[name]; ok && val != "" {
		return val
	}
	return defaultVal
}

// FormatTrace contains debug information about a format match attempt.
type FormatTrace struct {
	Name     string            // Format name
	Matched  bool              // Whether the pattern matched
	Pattern  string            // The expanded regex pattern
	Captures map[string]string // Captured groups (if matched)
}

// ParseTrace contains complete trace information for a parse attempt.
type ParseTrace struct {
	Formats []FormatTrace // All format match attempts
	Match   *Match        // The first successful match (if any)
}

// ParseWithTrace tries every format and records the outcome of each.
func (c *Compiler) ParseWithTrace(text string) *ParseTrace {
	upper := strings.ToUpper(text)
	trace := &ParseTrace{Formats: make([]FormatTrace, 0, len(c.formats))}

	for _, f := range c.formats {
		ft := FormatTrace{Name: f.Name, Pattern: c.expand(f.Pattern)}
		if f.Compiled != nil {
			if m := f.Compiled.FindStringSubmatch(upper); m != nil {
				ft.Matched = true
				ft.Captures = captures(f.Compiled, m)
				if trace.Match == nil {
					trace.Match = &Match{FormatName: f.Name, Captures: ft.Captures}
				}
			}
		}
		trace.Formats = append(trace.Formats, ft)
	}
	return trace
}
