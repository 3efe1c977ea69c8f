package migration

import (
	"fmt"
	"strings"
)

// ColumnType is a MySQL column type keyword.
type ColumnType int

const (
	Varchar ColumnType = iota
	SmallInt
	MediumInt
	Int
	BigInt
	Decimal
	Text
	Double
	Float
	Date
	DateTime
	Timestamp
	Time
	Enum
	Set
)

var columnTypeKeywords = [...]string{
	Varchar:   "VARCHAR",
	SmallInt:  "SMALLINT",
	MediumInt: "MEDIUMINT",
	Int:       "INT",
	BigInt:    "BIGINT",
	Decimal:   "DECIMAL",
	Text:      "TEXT",
	Double:    "DOUBLE",
	Float:     "FLOAT",
	Date:      "DATE",
	DateTime:  "DATETIME",
	Timestamp: "TIMESTAMP",
	Time:      "TIME",
	Enum:      "ENUM",
	Set:       "SET",
}

// ColumnTypes lists every column type in declaration order.
func ColumnTypes() []ColumnType {
	types := make([]ColumnType, len(columnTypeKeywords))
	for i := range columnTypeKeywords {
		types[i] = ColumnType(i)
	}
	return types
}

// String returns the bare SQL keyword.
func (t ColumnType) String() string {
	if t < 0 || int(t) >= len(columnTypeKeywords) {
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
	return columnTypeKeywords[t]
}

// Render returns the keyword followed by "(constraint)" when constraint is
// non-empty. The constraint is passed through verbatim.
func (t ColumnType) Render(constraint string) string {
	if constraint == "" {
		return t.String()
	}
	return t.String() + "(" + constraint + ")"
}

// IsInteger reports whether t is one of the integer types.
func (t ColumnType) IsInteger() bool {
	switch t {
	case SmallInt, MediumInt, Int, BigInt:
		return true
	}
	return false
}

// IsNumeric reports whether t accepts the UNSIGNED attribute.
func (t ColumnType) IsNumeric() bool {
	switch t {
	case Decimal, Double, Float:
		return true
	}
	return t.IsInteger()
}

// ParseColumnType maps a keyword such as "varchar" or "BIGINT" to its type.
func ParseColumnType(s string) (ColumnType, error) {
	kw := strings.ToUpper(strings.TrimSpace(s))
	for i, k := range columnTypeKeywords {
		if k == kw {
			return ColumnType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown column type %q", s)
}
