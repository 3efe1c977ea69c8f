package migration

import "strings"

// Column describes one table column as it appears in a CREATE TABLE or
// ALTER TABLE statement.
type Column struct {
	Name       string
	Type       ColumnType
	Constraint string // type modifier rendered in parentheses, e.g. "255" or "10,2"

	Unique        bool
	PrimaryKey    bool
	AutoIncrement bool
	Unsigned      bool
	Nullable      bool
}

// NewColumn returns a plain column with every flag cleared.
func NewColumn(name string, typ ColumnType, constraint string) Column {
	return Column{
		Name:          name,
		Type:          typ,
		Constraint:    constraint,
		Unique:        false,
		PrimaryKey:    false,
		AutoIncrement: false,
		Unsigned:      false,
		Nullable:      false,
	}
}

// PrimaryKeyColumn returns an unsigned primary key column, the usual shape
// of a surrogate id.
func PrimaryKeyColumn(name string, typ ColumnType, constraint string, autoIncrement bool) Column {
	return Column{
		Name:          name,
		Type:          typ,
		Constraint:    constraint,
		Unique:        false,
		PrimaryKey:    true,
		AutoIncrement: autoIncrement,
		Unsigned:      true,
		Nullable:      false,
	}
}

// NullableColumn returns a column rendered with an explicit NULL.
func NullableColumn(name string, typ ColumnType, constraint string) Column {
	return Column{
		Name:          name,
		Type:          typ,
		Constraint:    constraint,
		Unique:        false,
		PrimaryKey:    false,
		AutoIncrement: false,
		Unsigned:      false,
		Nullable:      true,
	}
}

// UniqueColumn returns a non-null column carrying a UNIQUE constraint.
func UniqueColumn(name string, typ ColumnType, constraint string) Column {
	return Column{
		Name:          name,
		Type:          typ,
		Constraint:    constraint,
		Unique:        true,
		PrimaryKey:    false,
		AutoIncrement: false,
		Unsigned:      false,
		Nullable:      false,
	}
}

// Render produces the column definition fragment.
//
// At most one of NULL, PRIMARY KEY and UNIQUE is emitted, in that order of
// precedence. NOT NULL is never written; it is the implied default.
func (c Column) Render() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte(' ')
	b.WriteString(c.Type.Render(c.Constraint))

	if c.Unsigned {
		b.WriteString(" UNSIGNED")
	}

	switch {
	case c.Nullable:
		b.WriteString(" NULL")
	case c.PrimaryKey:
		b.WriteString(" PRIMARY KEY")
	case c.Unique:
		b.WriteString(" UNIQUE")
	}

	if c.AutoIncrement {
		b.WriteString(" AUTO_INCREMENT")
	}
	return b.String()
}

func (c Column) String() string {
	return c.Render()
}
