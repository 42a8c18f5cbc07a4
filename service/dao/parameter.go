package dao

// Parameter represents a list filter
type Parameter struct {
	Name  string
	Value interface{}
}

// Values returns parameter value as string slice
func (p *Parameter) Values() []string {
	switch actual := p.Value.(type) {
	case string:
		return []string{actual}
	case []string:
		return actual
	}
	return nil
}

// NewParameter creates a parameter, a single value is stored as string
func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}
