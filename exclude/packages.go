package exclude

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/viant/licensor/model"
)

// Packages matches packages against CEL expressions. The expressions see a
// "pkg" map with id.type, id.namespace, id.name, id.version, coordinates,
// declaredLicenses and excluded keys and must evaluate to a bool.
type Packages struct {
	expressions []*expression
}

type expression struct {
	text    string
	program cel.Program
}

// NewPackages compiles package exclusion expressions
func NewPackages(expressions ...string) (*Packages, error) {
	ret := &Packages{}
	if len(expressions) == 0 {
		return ret, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("pkg", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating CEL environment: %w", err)
	}
	for _, text := range expressions {
		if text == "" {
			return nil, fmt.Errorf("exclude expression can't be empty string")
		}
		ast, issues := env.Compile(text)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("error compiling exclude expression %q: %w", text, issues.Err())
		}
		program, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("error creating program for %q: %w", text, err)
		}
		ret.expressions = append(ret.expressions, &expression{text: text, program: program})
	}
	return ret, nil
}

// Len returns number of expressions
func (p *Packages) Len() int {
	if p == nil {
		return 0
	}
	return len(p.expressions)
}

// Match returns the first expression matching the package or an empty string.
func (p *Packages) Match(pkg *model.Package) (string, error) {
	if p.Len() == 0 || pkg == nil {
		return "", nil
	}
	input := map[string]any{"pkg": packageVariable(pkg)}
	for _, expr := range p.expressions {
		out, _, err := expr.program.Eval(input)
		if err != nil {
			return "", fmt.Errorf("error evaluating exclude expression %q for %v: %w", expr.text, pkg.Coordinates(), err)
		}
		matched, ok := out.Value().(bool)
		if !ok {
			return "", fmt.Errorf("exclude expression %q returned %T, expected bool", expr.text, out.Value())
		}
		if matched {
			return expr.text, nil
		}
	}
	return "", nil
}

func packageVariable(pkg *model.Package) map[string]any {
	declared := make([]any, 0, len(pkg.DeclaredLicenses))
	for _, license := range pkg.DeclaredLicenses {
		declared = append(declared, license)
	}
	return map[string]any{
		"id": map[string]any{
			"type":      pkg.ID.Type,
			"namespace": pkg.ID.Namespace,
			"name":      pkg.ID.Name,
			"version":   pkg.ID.Version,
		},
		"coordinates":      pkg.Coordinates(),
		"declaredLicenses": declared,
		"excluded":         pkg.Excluded,
	}
}
