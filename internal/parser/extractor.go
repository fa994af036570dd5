// Package parser turns annotated Rust source into function signatures. The
// extractor locates #[tauri_bridge] items with a manual scan (attribute
// collection, header splitting, balanced-brace body capture) and hands the
// type syntax to the participle grammar in types.go.
package parser

import (
	"fmt"
	"strings"

	"github.com/NexRX/tauri-bridge/internal/errors"
	"github.com/NexRX/tauri-bridge/internal/models"
)

// BridgeAttribute is the attribute that marks a function for bridging
const BridgeAttribute = "#[tauri_bridge]"

// Extractor finds bridged function declarations in source text
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBridgedFunctions returns a signature for every #[tauri_bridge]
// function in content, in source order. The bridge attribute itself is
// stripped; every other attribute and doc comment on the item is preserved
// verbatim.
func (e *Extractor) ExtractBridgedFunctions(file, content string) ([]*models.FunctionSignature, error) {
	lines := strings.Split(content, "\n")
	var signatures []*models.FunctionSignature

	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != BridgeAttribute {
			continue
		}

		sig, next, err := e.extractItem(file, lines, i)
		if err != nil {
			return nil, err
		}
		signatures = append(signatures, sig)
		i = next
	}

	return signatures, nil
}

// extractItem parses one annotated item starting at the bridge attribute on
// line attrLine. It returns the signature and the index of the item's last
// line.
func (e *Extractor) extractItem(file string, lines []string, attrLine int) (*models.FunctionSignature, int, error) {
	location := errors.SourceLocation{File: file, Line: attrLine + 1}

	// Attributes and doc comments above the bridge attribute belong to the
	// item too; collect the contiguous run.
	var attrs []string
	for j := attrLine - 1; j >= 0; j-- {
		trimmed := strings.TrimSpace(lines[j])
		if isAttributeLine(trimmed) {
			attrs = append([]string{trimmed}, attrs...)
		} else {
			break
		}
	}

	// Attributes between the bridge attribute and the fn header
	i := attrLine + 1
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if isAttributeLine(trimmed) {
			attrs = append(attrs, trimmed)
			i++
			continue
		}
		break
	}

	if i >= len(lines) {
		return nil, 0, errors.New(errors.SyntaxErrorCode, "expected a function after %s", BridgeAttribute).WithLocation(location)
	}

	// The header runs from here to the opening brace of the body; the body
	// runs to its matching close brace.
	header, body, last, err := splitHeaderAndBody(lines, i)
	if err != nil {
		return nil, 0, errors.WrapParseError(fmt.Sprintf("function at %s", location), err)
	}

	sig, err := parseHeader(header)
	if err != nil {
		return nil, 0, errors.WrapParseError(fmt.Sprintf("function at %s", location), err)
	}

	sig.Attributes = attrs
	sig.Body = body
	sig.Location = models.SourceLocation{File: file, Line: attrLine + 1}
	return sig, last, nil
}

func isAttributeLine(trimmed string) bool {
	if trimmed == BridgeAttribute {
		return false
	}
	return strings.HasPrefix(trimmed, "#[") || strings.HasPrefix(trimmed, "///") || strings.HasPrefix(trimmed, "//!")
}

// splitHeaderAndBody joins lines from start into a header (up to the first
// top-level '{') and a balanced-brace body. It returns the index of the line
// holding the body's closing brace.
func splitHeaderAndBody(lines []string, start int) (header, body string, last int, err error) {
	var collected strings.Builder
	for j := start; j < len(lines); j++ {
		if j > start {
			collected.WriteString("\n")
		}
		collected.WriteString(lines[j])

		text := collected.String()
		open := strings.Index(text, "{")
		if open < 0 {
			continue
		}

		depth := 0
		for k := open; k < len(text); k++ {
			switch text[k] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return strings.TrimSpace(text[:open]), text[open : k+1], j, nil
				}
			}
		}
	}
	return "", "", 0, fmt.Errorf("unterminated function body")
}

// parseHeader splits a function header into its signature parts. The header
// has the form:
//
//	[pub[(...)]] [const] [async] fn name[<generics>](params) [-> Type] [where ...]
func parseHeader(header string) (*models.FunctionSignature, error) {
	rest := strings.TrimSpace(header)
	sig := &models.FunctionSignature{}

	if strings.HasPrefix(rest, "pub ") || strings.HasPrefix(rest, "pub(") {
		vis := "pub"
		rest = strings.TrimPrefix(rest, "pub")
		if strings.HasPrefix(rest, "(") {
			end := strings.Index(rest, ")")
			if end < 0 {
				return nil, fmt.Errorf("unterminated visibility restriction")
			}
			vis += rest[:end+1]
			rest = rest[end+1:]
		}
		sig.Visibility = vis
		rest = strings.TrimSpace(rest)
	}

	if strings.HasPrefix(rest, "const ") {
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "const "))
	}
	if strings.HasPrefix(rest, "async ") {
		sig.IsAsync = true
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "async "))
	}

	if !strings.HasPrefix(rest, "fn ") {
		return nil, fmt.Errorf("expected 'fn' in header %q", header)
	}
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "fn "))

	nameEnd := strings.IndexAny(rest, "<(")
	if nameEnd < 0 {
		return nil, fmt.Errorf("expected parameter list in header %q", header)
	}
	sig.Name = strings.TrimSpace(rest[:nameEnd])
	if sig.Name == "" {
		return nil, fmt.Errorf("missing function name in header %q", header)
	}
	rest = rest[nameEnd:]

	if strings.HasPrefix(rest, "<") {
		end := matchDelimiter(rest, '<', '>')
		if end < 0 {
			return nil, fmt.Errorf("unterminated generic parameter list in header %q", header)
		}
		sig.Generics = rest[:end+1]
		rest = strings.TrimSpace(rest[end+1:])
	}

	if !strings.HasPrefix(rest, "(") {
		return nil, fmt.Errorf("expected parameter list in header %q", header)
	}
	end := matchDelimiter(rest, '(', ')')
	if end < 0 {
		return nil, fmt.Errorf("unterminated parameter list in header %q", header)
	}
	params, err := parseParams(rest[1:end])
	if err != nil {
		return nil, err
	}
	sig.Parameters = params
	rest = strings.TrimSpace(rest[end+1:])

	if strings.HasPrefix(rest, "->") {
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "->"))
		returnText := rest
		if idx := topLevelWhere(rest); idx >= 0 {
			returnText = strings.TrimSpace(rest[:idx])
			sig.Where = strings.TrimSpace(rest[idx:])
		}
		returnType := ParseType(returnText)
		sig.ReturnType = &returnType
	} else if strings.HasPrefix(rest, "where") {
		sig.Where = rest
	}

	return sig, nil
}

// parseParams splits a raw parameter list on top-level commas and parses
// each "name: Type" pair. Receiver parameters (self in any form) carry no
// type annotation and are skipped; only typed arguments cross the bridge.
func parseParams(raw string) ([]models.Parameter, error) {
	var params []models.Parameter
	for _, part := range splitTopLevel(raw, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon < 0 {
			continue
		}
		name := strings.TrimSpace(part[:colon])
		name = strings.TrimPrefix(name, "mut ")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("parameter %q has no name", part)
		}
		params = append(params, models.Parameter{
			Name: name,
			Type: ParseType(part[colon+1:]),
		})
	}
	return params, nil
}

// splitTopLevel splits s on sep, ignoring separators nested inside angle
// brackets, parentheses, or square brackets
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			// The '>' of a '->' arrow is not a closing bracket
			if !(s[i] == '>' && i > 0 && s[i-1] == '-') {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}

// matchDelimiter returns the index of the close delimiter matching the open
// delimiter at s[0], or -1
func matchDelimiter(s string, open, close byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			if close == '>' && i > 0 && s[i-1] == '-' {
				continue
			}
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// topLevelWhere finds a top-level `where` keyword in the post-parameter
// segment of a header, or -1
func topLevelWhere(s string) int {
	depth := 0
	for i := 0; i+5 <= len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if !(s[i] == '>' && i > 0 && s[i-1] == '-') {
				depth--
			}
		}
		if depth == 0 && s[i:i+5] == "where" {
			before := i == 0 || s[i-1] == ' ' || s[i-1] == '\t' || s[i-1] == '\n'
			after := i+5 == len(s) || s[i+5] == ' ' || s[i+5] == '\t' || s[i+5] == '\n'
			if before && after {
				return i
			}
		}
	}
	return -1
}
