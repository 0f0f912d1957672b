// FILE: hydrogen-config/field.go
package config

import "fmt"

// Kind is the expected type of a configuration field.
type Kind int

const (
	KindBool Kind = iota + 1
	KindInt
	KindSize
	KindFloat
	KindString
	KindSensitive
	KindLevel
	KindSection
	KindIntList
	KindStringList
)

// String returns the kind name used in log messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindSize:
		return "size"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSensitive:
		return "sensitive"
	case KindLevel:
		return "level"
	case KindSection:
		return "section"
	case KindIntList:
		return "int-list"
	case KindStringList:
		return "string-list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field binds a document path to a destination.
// The value held by the destination before processing is the default.
type Field struct {
	Path  string
	Kind  Kind
	Dest  any
	Names []string // level names, KindLevel only
}

// BoolField binds a boolean.
func BoolField(path string, dest *bool) Field {
	return Field{Path: path, Kind: KindBool, Dest: dest}
}

// IntField binds an integer. Floats and booleans are rejected.
func IntField(path string, dest *int) Field {
	return Field{Path: path, Kind: KindInt, Dest: dest}
}

// SizeField is an integer that must not be negative.
func SizeField(path string, dest *int) Field {
	return Field{Path: path, Kind: KindSize, Dest: dest}
}

// FloatField binds a number. Integers are accepted.
func FloatField(path string, dest *float64) Field {
	return Field{Path: path, Kind: KindFloat, Dest: dest}
}

// StringField binds a string that is displayed as is.
func StringField(path string, dest *string) Field {
	return Field{Path: path, Kind: KindString, Dest: dest}
}

// SensitiveField is a string that is masked wherever it is displayed.
func SensitiveField(path string, dest *string) Field {
	return Field{Path: path, Kind: KindSensitive, Dest: dest}
}

// LevelField accepts an index into names or one of the names.
func LevelField(path string, dest *int, names []string) Field {
	return Field{Path: path, Kind: KindLevel, Dest: dest, Names: names}
}

// SectionField only reports whether the object at path is present.
func SectionField(path string) Field {
	return Field{Path: path, Kind: KindSection}
}

// IntListField decodes an array of integers. Elements may be references.
func IntListField(path string, dest *[]int) Field {
	return Field{Path: path, Kind: KindIntList, Dest: dest}
}

// StringListField decodes an array of strings. A single string is a one-element list.
func StringListField(path string, dest *[]string) Field {
	return Field{Path: path, Kind: KindStringList, Dest: dest}
}

// check rejects descriptors the processor cannot handle.
func (f Field) check() error {
	if _, err := parsePath(f.Path); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}

	var ok bool
	switch f.Kind {
	case KindBool:
		var p *bool
		p, ok = f.Dest.(*bool)
		ok = ok && p != nil
	case KindInt, KindSize:
		var p *int
		p, ok = f.Dest.(*int)
		ok = ok && p != nil
	case KindLevel:
		var p *int
		p, ok = f.Dest.(*int)
		ok = ok && p != nil && len(f.Names) > 0
	case KindFloat:
		var p *float64
		p, ok = f.Dest.(*float64)
		ok = ok && p != nil
	case KindString, KindSensitive:
		var p *string
		p, ok = f.Dest.(*string)
		ok = ok && p != nil
	case KindIntList:
		var p *[]int
		p, ok = f.Dest.(*[]int)
		ok = ok && p != nil
	case KindStringList:
		var p *[]string
		p, ok = f.Dest.(*[]string)
		ok = ok && p != nil
	case KindSection:
		ok = f.Dest == nil
	default:
		return fmt.Errorf("%w: %s: unknown kind %s", ErrInvalidField, f.Path, f.Kind)
	}

	if !ok {
		return fmt.Errorf("%w: %s: destination %T does not suit kind %s", ErrInvalidField, f.Path, f.Dest, f.Kind)
	}
	return nil
}

// current reads the destination value.
func (f Field) current() any {
	switch d := f.Dest.(type) {
	case *bool:
		return *d
	case *int:
		return *d
	case *float64:
		return *d
	case *string:
		return *d
	case *[]int:
		return append([]int(nil), (*d)...)
	case *[]string:
		return append([]string(nil), (*d)...)
	}
	return nil
}
