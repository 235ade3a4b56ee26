package stub

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// StubFile represents the contents of a declarative stub file. A file can
// contain either a single stub or a list of stubs.
type StubFile struct {
	Matcher  *MatcherEntry  `yaml:"matcher"`
	Response *ResponseEntry `yaml:"response"`

	// For detecting list format - populated by custom unmarshaling
	Stubs []StubFile `yaml:"-"`
}

// MatcherEntry declares a Route matcher.
type MatcherEntry struct {
	Method string            `yaml:"method,omitempty"`
	Path   string            `yaml:"path"`
	Query  map[string]string `yaml:"query,omitempty"`
	Body   any               `yaml:"body,omitempty"`
}

// ResponseEntry declares a static reply. Exactly one of JSON, Text, or
// Base64 must be set; Base64 additionally requires ContentType.
type ResponseEntry struct {
	Status      int               `yaml:"status,omitempty"`
	Headers     map[string]string `yaml:"headers,omitempty"`
	JSON        any               `yaml:"json,omitempty"`
	Text        *string           `yaml:"text,omitempty"`
	Base64      string            `yaml:"base64,omitempty"`
	ContentType string            `yaml:"contentType,omitempty"`
}

// UnmarshalYAML handles both the single-stub and list-of-stubs formats.
func (f *StubFile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var stubs []StubFile
		if err := node.Decode(&stubs); err != nil {
			return err
		}
		f.Stubs = stubs
		return nil
	}

	// Single stub - use an alias to avoid recursion
	type stubFileAlias StubFile
	alias := (*stubFileAlias)(f)
	return node.Decode(alias)
}

// LoadFile reads a YAML stub file and registers its stubs, in file order.
// Environment variable references (${VAR}) in the file are expanded before
// parsing.
func (g *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading stub file: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("stub file is empty: %s", path)
	}

	expanded := os.ExpandEnv(string(data))

	var content StubFile
	if err := yaml.Unmarshal([]byte(expanded), &content); err != nil {
		return fmt.Errorf("parsing stub file %s: %w", path, err)
	}

	entries := content.Stubs
	if entries == nil {
		entries = []StubFile{content}
	}

	for i, entry := range entries {
		if err := g.registerEntry(entry); err != nil {
			return fmt.Errorf("%s: stub[%d]: %w", path, i, err)
		}
	}
	return nil
}

// LoadGlob registers stubs from every file matching the glob pattern,
// in lexical file order. Supports ** for recursive directory matching.
// No matches is not an error.
func (g *Registry) LoadGlob(pattern string) error {
	matches, err := expandGlob(pattern)
	if err != nil {
		return fmt.Errorf("expanding glob pattern: %w", err)
	}

	sort.Strings(matches)

	for _, match := range matches {
		if err := g.LoadFile(match); err != nil {
			return err
		}
	}
	return nil
}

// registerEntry converts one file entry into a registration.
func (g *Registry) registerEntry(entry StubFile) error {
	if entry.Matcher == nil {
		return fmt.Errorf("missing matcher")
	}
	if entry.Matcher.Path == "" {
		return fmt.Errorf("matcher requires a path")
	}
	if entry.Response == nil {
		return fmt.Errorf("missing response")
	}

	route := &Route{
		Path:   entry.Matcher.Path,
		Method: entry.Matcher.Method,
		Query:  entry.Matcher.Query,
		Body:   entry.Matcher.Body,
	}

	reply, err := entry.Response.reply()
	if err != nil {
		return err
	}

	g.On(route, reply)
	return nil
}

// reply builds the declared reply, enforcing that exactly one body kind is
// set.
func (e *ResponseEntry) reply() (Reply, error) {
	status := e.Status
	if status == 0 {
		status = http.StatusOK
	}

	kinds := 0
	if e.JSON != nil {
		kinds++
	}
	if e.Text != nil {
		kinds++
	}
	if e.Base64 != "" {
		kinds++
	}
	if kinds > 1 {
		return nil, fmt.Errorf("response declares more than one of json, text, base64")
	}

	switch {
	case e.Text != nil:
		r := Text(*e.Text).WithStatus(status)
		for k, v := range e.Headers {
			r.WithHeader(k, v)
		}
		return r, nil
	case e.Base64 != "":
		if e.ContentType == "" {
			return nil, fmt.Errorf("base64 response requires contentType")
		}
		data, err := base64.StdEncoding.DecodeString(e.Base64)
		if err != nil {
			return nil, fmt.Errorf("decoding base64 response body: %w", err)
		}
		r := Bytes(data, e.ContentType).WithStatus(status)
		for k, v := range e.Headers {
			r.WithHeader(k, v)
		}
		return r, nil
	default:
		// JSON, including json: null for an empty body
		r := JSON(e.JSON).WithStatus(status)
		for k, v := range e.Headers {
			r.WithHeader(k, v)
		}
		return r, nil
	}
}

// expandGlob expands a glob pattern to matching file paths. Uses
// doublestar for ** support, falls back to filepath.Glob otherwise.
func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return doublestar.FilepathGlob(pattern)
	}
	return filepath.Glob(pattern)
}
