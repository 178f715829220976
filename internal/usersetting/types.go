package usersetting

import (
	"strconv"
	"strings"
)

// ValueType declares how a consumer interprets the stored string value.
// The numeric values are persisted and must stay stable.
type ValueType int

const (
	// TypeString is a plain string value.
	TypeString ValueType = iota
	// TypeInt is an integer value.
	TypeInt
	// TypeFloat is a floating point value.
	TypeFloat
	// TypeObject is a JSON object.
	TypeObject
	// TypeArray is a JSON array.
	TypeArray
	// TypeBoolean is a boolean value.
	TypeBoolean
)

var valueTypeNames = [...]string{"string", "int", "float", "object", "array", "boolean"}

// String returns the lower case name of the value type.
func (v ValueType) String() string {
	if !v.Valid() {
		return "ValueType(" + strconv.Itoa(int(v)) + ")"
	}

	return valueTypeNames[v]
}

// Valid reports whether v is one of the known value types.
func (v ValueType) Valid() bool {
	return v >= TypeString && v <= TypeBoolean
}

// ParseValueType accepts either a type name ("string", "boolean", ...) or the
// numeric tag ("0" to "5").
func ParseValueType(s string) (ValueType, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	for i, name := range valueTypeNames {
		if s == name {
			return ValueType(i), nil
		}
	}

	// a couple of aliases seen in hand written definition files
	switch s {
	case "bool":
		return TypeBoolean, nil
	case "integer":
		return TypeInt, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || !ValueType(n).Valid() {
		return 0, &UnknownValueTypeError{Value: s}
	}

	return ValueType(n), nil
}

// Options describes a single setting.
//
// Default resolution:
//
//	DefaultValue    required, nil means undefined, "" is a legal default
//	ValueType       required, nil means undefined
//	UserValue       nil means no user value, written as NULL in the full shape
//	LinuxDefault    "" means no override
//	MacDefault      "" means no override
//	WindowsDefault  "" means no override
//	InsertOrIgnore  false means a strict insert which fails on a duplicate key
type Options struct {
	DefaultValue   *string
	ValueType      *ValueType
	UserValue      *string
	LinuxDefault   string
	MacDefault     string
	WindowsDefault string
	InsertOrIgnore bool
}

// Config is one entry of a batch insert.
type Config struct {
	Key     string
	Options Options
}

// Shape is the column subset used for a single insert.
type Shape int

const (
	// ShapeSimple populates key, defaultValue and valueType.
	ShapeSimple Shape = iota
	// ShapeFull populates all seven columns.
	ShapeFull
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	if s == ShapeFull {
		return "full"
	}

	return "simple"
}

// ShapeOf picks the row shape for opts. The full shape is used when a user
// value is present or any platform default is non-empty.
func ShapeOf(opts Options) Shape {
	hasUserValue := opts.UserValue != nil
	hasPlatformDefaults := opts.LinuxDefault != "" || opts.MacDefault != "" || opts.WindowsDefault != ""

	if hasUserValue || hasPlatformDefaults {
		return ShapeFull
	}

	return ShapeSimple
}

// Ptr returns a pointer to v. Handy for filling the optional fields of Options.
func Ptr[T any](v T) *T {
	return &v
}
