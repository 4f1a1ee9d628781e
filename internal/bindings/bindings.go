// Package bindings cross-references generated TypeScript client bindings
// against source analysis results to produce method descriptors. The binding
// is the authority on the invocable surface and parameter order; the source
// analysis is the authority on read/write classification.
package bindings

import (
	"errors"
	"regexp"
	"strings"

	"soroscope/internal/analysis"
	"soroscope/internal/builtins"
	"soroscope/internal/heuristics"
	"soroscope/internal/metadata"
	"soroscope/internal/scan"
)

var (
	ErrMissingInterface  = errors.New("binding has no client interface block")
	ErrMissingContractID = errors.New("binding has no contract identifier")
)

const interfaceMarker = "export interface Client"

var (
	methodStartPattern = regexp.MustCompile(`^\s*([A-Za-z_$][A-Za-z0-9_$]*)\s*:\s*\(`)

	// The generator wraps every return in this fixed two-level shape. The
	// greedy inner capture ends at the last >> so nested generics survive.
	returnWrapperPattern = regexp.MustCompile(`(?s)Promise<AssembledTransaction<(.*)>>`)

	// Leading destructured parameter object: ({a, b}: {a: T1, b: T2}.
	destructuredParamsPattern = regexp.MustCompile(`\(\s*\{([^}]*)\}\s*:\s*\{([^}]*)\}`)

	contractIDPattern = regexp.MustCompile(`contractId:\s*"([^"]+)"`)
)

// addressNameHints are parameter names that conventionally carry account
// addresses when no type is declared anywhere.
var addressNameHints = map[string]bool{
	"admin":     true,
	"owner":     true,
	"from":      true,
	"to":        true,
	"sender":    true,
	"recipient": true,
	"spender":   true,
	"operator":  true,
}

// ContractID recovers the deployed contract identifier from the binding's
// networks literal.
func ContractID(text string) (string, error) {
	m := contractIDPattern.FindStringSubmatch(text)
	if m == nil {
		return "", ErrMissingContractID
	}
	return m[1], nil
}

// ExtractMethods walks the client interface block and produces one
// descriptor per declared method. Classification prefers the resolved source
// analysis; methods unknown to the source fall back to the name and return
// type heuristic. Parameter types prefer the source declaration over the
// binding declaration over name inference.
func ExtractMethods(text string, resolved map[string]analysis.Resolution, declared map[string]map[string]string) ([]metadata.MethodDescriptor, error) {
	block, err := clientBlock(text)
	if err != nil {
		return nil, err
	}

	var methods []metadata.MethodDescriptor
	var docBuffer []string
	var span []string
	methodName := ""
	inDoc := false

	flush := func() {
		if methodName == "" {
			return
		}
		description := ""
		if len(docBuffer) > 0 {
			description = docBuffer[len(docBuffer)-1]
		}
		methods = append(methods, buildMethod(methodName, strings.Join(span, "\n"), description, resolved, declared))
		methodName = ""
		span = nil
		docBuffer = nil
	}

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)

		if methodName != "" {
			if trimmed == "" {
				flush()
				continue
			}
			span = append(span, line)
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "/**"):
			docBuffer = nil
			rest := strings.TrimPrefix(trimmed, "/**")
			if closed := strings.HasSuffix(rest, "*/"); closed {
				appendDocLine(&docBuffer, strings.TrimSuffix(rest, "*/"))
			} else {
				inDoc = true
				appendDocLine(&docBuffer, rest)
			}
		case inDoc:
			if strings.HasSuffix(trimmed, "*/") {
				appendDocLine(&docBuffer, strings.TrimSuffix(trimmed, "*/"))
				inDoc = false
				continue
			}
			appendDocLine(&docBuffer, trimmed)
		default:
			if m := methodStartPattern.FindStringSubmatch(line); m != nil {
				methodName = m[1]
				span = []string{line}
			}
		}
	}
	flush()

	return methods, nil
}

// clientBlock returns the text between the braces of the client interface.
func clientBlock(text string) (string, error) {
	idx := strings.Index(text, interfaceMarker)
	if idx < 0 {
		return "", ErrMissingInterface
	}
	open := strings.IndexByte(text[idx:], '{')
	if open < 0 {
		return "", ErrMissingInterface
	}
	open += idx
	return text[open+1 : scan.MatchBrace(text, open)], nil
}

// appendDocLine cleans one doc-comment line and buffers it unless it is
// decoration or generator boilerplate.
func appendDocLine(buffer *[]string, line string) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
	if cleaned == "" || isBoilerplate(cleaned) {
		return
	}
	*buffer = append(*buffer, cleaned)
}

// isBoilerplate recognizes the fixed lines the binding generator emits above
// every method.
func isBoilerplate(line string) bool {
	return strings.HasPrefix(line, "Construct and simulate") ||
		(strings.HasPrefix(line, "Returns an") && strings.Contains(line, "AssembledTransaction"))
}

func buildMethod(name, span, description string, resolved map[string]analysis.Resolution, declared map[string]map[string]string) metadata.MethodDescriptor {
	returnType := builtins.UnknownType
	if m := returnWrapperPattern.FindStringSubmatch(span); m != nil {
		returnType = strings.TrimSpace(m[1])
	}

	isReadOnly := false
	if res, ok := resolved[name]; ok {
		isReadOnly = res.IsReadOnly
	} else {
		isReadOnly = heuristics.Classify(name, returnType)
	}

	return metadata.MethodDescriptor{
		Name:        name,
		Parameters:  extractParameters(name, span, declared),
		ReturnType:  returnType,
		IsReadOnly:  isReadOnly,
		Description: description,
	}
}

// extractParameters merges the binding's destructured parameter object with
// source-declared types. The binding fixes the order; the execution-context
// parameter never appears in descriptors.
func extractParameters(method, span string, declared map[string]map[string]string) []metadata.ParameterDescriptor {
	params := []metadata.ParameterDescriptor{}

	m := destructuredParamsPattern.FindStringSubmatch(span)
	if m == nil {
		return params
	}

	bindingTypes := make(map[string]string)
	for _, entry := range splitTopLevel(m[2], ',') {
		name, typ, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		name = strings.TrimSuffix(strings.TrimSpace(name), "?")
		bindingTypes[name] = strings.TrimSpace(typ)
	}

	for _, raw := range splitTopLevel(m[1], ',') {
		name := strings.TrimSuffix(strings.TrimSpace(raw), "?")
		if name == "" || isContextParam(name, declared[method][name]) {
			continue
		}
		params = append(params, metadata.ParameterDescriptor{
			Name: name,
			Type: parameterType(name, bindingTypes[name], declared[method][name]),
		})
	}
	return params
}

// parameterType applies the declaration precedence for one parameter.
func parameterType(name, bindingType, sourceType string) string {
	if sourceType != "" {
		return sourceType
	}
	if bindingType != "" {
		return bindingType
	}
	if addressNameHints[name] {
		return "Address"
	}
	return builtins.UnknownType
}

func isContextParam(name, sourceType string) bool {
	if name == "env" || name == "_env" {
		return true
	}
	return builtins.IsEnvType(sourceType)
}

// splitTopLevel splits on sep outside any bracket nesting, so generic
// arguments keep their commas.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[', '{':
			depth++
		case '>', ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
