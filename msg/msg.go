// Package msg holds one typed struct per validation-error template named
// in the error handling design. Centralizing wording here keeps every
// caller of the dispatcher from hand-formatting strings, and keeps the
// wording testable in isolation from the keyword logic that triggers it.
package msg

import (
	"fmt"
	"strings"
)

// TypeMismatch backs "Expected T - got U."
type TypeMismatch struct {
	Want []string
	Got  string
}

func (m TypeMismatch) String() string {
	return fmt.Sprintf("Expected %s - got %s.", strings.Join(m.Want, ", "), m.Got)
}

// MissingProperty backs "Missing property."
type MissingProperty struct{}

func (MissingProperty) String() string { return "Missing property." }

// PropertiesNotAllowed backs "Properties not allowed: k1, k2, …"
type PropertiesNotAllowed struct {
	Names []string
}

func (m PropertiesNotAllowed) String() string {
	return fmt.Sprintf("Properties not allowed: %s.", strings.Join(m.Names, ", "))
}

// NotInEnum backs "Not in enum list: …"
type NotInEnum struct {
	Values []string
}

func (m NotInEnum) String() string {
	return fmt.Sprintf("Not in enum list: %s.", strings.Join(m.Values, ", "))
}

// FormatMismatch backs "Does not match <fmt> format."
type FormatMismatch struct {
	Format string
}

func (m FormatMismatch) String() string {
	return fmt.Sprintf("Does not match %s format.", m.Format)
}

// Minimum backs "<v> < minimum(<m>)" and its exclusive/inclusive variants.
type Minimum struct {
	Value     string
	Bound     string
	Exclusive bool
}

func (m Minimum) String() string {
	op := "<"
	if m.Exclusive {
		op = "<="
	}
	return fmt.Sprintf("%s %s minimum(%s)", m.Value, op, m.Bound)
}

// Maximum backs "<v> > maximum(<m>)" and its exclusive/inclusive variants.
type Maximum struct {
	Value     string
	Bound     string
	Exclusive bool
}

func (m Maximum) String() string {
	op := ">"
	if m.Exclusive {
		op = ">="
	}
	return fmt.Sprintf("%s %s maximum(%s)", m.Value, op, m.Bound)
}

// NotMultipleOf backs "Not multiple of <d>."
type NotMultipleOf struct {
	Divisor string
}

func (m NotMultipleOf) String() string {
	return fmt.Sprintf("Not multiple of %s.", m.Divisor)
}

// StringLength backs "String is too (long|short): <n>/<m>."
type StringLength struct {
	Long   bool
	Length int
	Bound  int
}

func (m StringLength) String() string {
	which := "short"
	if m.Long {
		which = "long"
	}
	return fmt.Sprintf("String is too %s: %d/%d.", which, m.Length, m.Bound)
}

// PatternMismatch backs "String does not match '<pat>'"
type PatternMismatch struct {
	Pattern string
}

func (m PatternMismatch) String() string {
	return fmt.Sprintf("String does not match '%s'", m.Pattern)
}

// ItemCount backs "Not enough items: <n>/<m>." and "Too many items: <n>/<m>."
type ItemCount struct {
	TooMany bool
	Count   int
	Bound   int
}

func (m ItemCount) String() string {
	if m.TooMany {
		return fmt.Sprintf("Too many items: %d/%d.", m.Count, m.Bound)
	}
	return fmt.Sprintf("Not enough items: %d/%d.", m.Count, m.Bound)
}

// UniqueItemsRequired backs "Unique items required."
type UniqueItemsRequired struct{}

func (UniqueItemsRequired) String() string { return "Unique items required." }

// OneOfMultipleMatched backs "Expected only one to match."
type OneOfMultipleMatched struct{}

func (OneOfMultipleMatched) String() string { return "Expected only one to match." }

// NotMatched backs the "not" keyword's "Should not match."
type NotMatched struct{}

func (NotMatched) String() string { return "Should not match." }

// PropertyCount backs minProperties/maxProperties bound violations.
type PropertyCount struct {
	TooMany bool
	Count   int
	Bound   int
}

func (m PropertyCount) String() string {
	if m.TooMany {
		return fmt.Sprintf("Too many properties: %d/%d.", m.Count, m.Bound)
	}
	return fmt.Sprintf("Not enough properties: %d/%d.", m.Count, m.Bound)
}

// UnknownType backs "Cannot validate type '<name>'"
type UnknownType struct {
	Name string
}

func (m UnknownType) String() string {
	return fmt.Sprintf("Cannot validate type '%s'", m.Name)
}
