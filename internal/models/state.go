package models

// ValueType declares how a state value is entered and displayed.
type ValueType string

const (
	ValuePercent ValueType = "percent"
	ValueScale   ValueType = "scale_1_10"
	ValueText    ValueType = "text"
	ValueYesNo   ValueType = "yes_no"
)

// ValueTypes returns all supported state value types.
func ValueTypes() []ValueType {
	return []ValueType{ValuePercent, ValueScale, ValueText, ValueYesNo}
}

// ParseValueType converts a string to a ValueType, defaulting to ValueText
// for unknown values.
func ParseValueType(s string) ValueType {
	switch ValueType(s) {
	case ValuePercent, ValueScale, ValueText, ValueYesNo:
		return ValueType(s)
	default:
		return ValueText
	}
}

// StateValue is one recorded wellbeing reading for a day.
type StateValue struct {
	Category  string `json:"category"`
	Value     string `json:"value"`
	ValueType string `json:"value_type"`
}

// DayState holds the wellbeing readings of a day, at most one per category.
type DayState struct {
	Values []StateValue `json:"значения"`
}

// Get returns the recorded value for a category name.
func (s *DayState) Get(category string) (string, bool) {
	for _, v := range s.Values {
		if v.Category == category {
			return v.Value, true
		}
	}
	return "", false
}

// Set records a value for a category, overwriting an existing entry
// in place rather than duplicating it.
func (s *DayState) Set(category, value string, valueType ValueType) {
	for i := range s.Values {
		if s.Values[i].Category == category {
			s.Values[i].Value = value
			s.Values[i].ValueType = string(valueType)
			return
		}
	}
	s.Values = append(s.Values, StateValue{
		Category:  category,
		Value:     value,
		ValueType: string(valueType),
	})
}

// StateCategory is a user-configurable wellbeing metric definition.
// The name acts as the identity key.
type StateCategory struct {
	Name        string    `yaml:"name" json:"name"`
	Type        ValueType `yaml:"type" json:"type"`
	Emoji       string    `yaml:"emoji" json:"emoji"`
	Color       string    `yaml:"color" json:"color"`
	Description string    `yaml:"description" json:"description"`
	Order       int       `yaml:"order" json:"order"`
}
