package migration

import "strings"

// Statement is a single DDL statement. The set of implementations is closed.
type Statement interface {
	// TableName is the table the statement acts on (the old name for renames).
	TableName() string
	// Render returns the statement text on one line, without a trailing semicolon.
	Render() string

	statement()
}

// CreateTable creates Table with Columns unless it already exists.
type CreateTable struct {
	Table   string
	Columns []Column
}

// DropTable drops Table.
type DropTable struct {
	Table string
}

// RenameTable renames Table to NewName.
type RenameTable struct {
	Table   string
	NewName string
}

// AddColumn appends Column to Table.
type AddColumn struct {
	Table  string
	Column Column
}

// ChangeColumn replaces the column OldName with Column, which may carry a new name.
type ChangeColumn struct {
	Table   string
	OldName string
	Column  Column
}

// ModifyColumn redefines Column in place; its name is unchanged.
type ModifyColumn struct {
	Table  string
	Column Column
}

func (s CreateTable) TableName() string  { return s.Table }
func (s DropTable) TableName() string    { return s.Table }
func (s RenameTable) TableName() string  { return s.Table }
func (s AddColumn) TableName() string    { return s.Table }
func (s ChangeColumn) TableName() string { return s.Table }
func (s ModifyColumn) TableName() string { return s.Table }

func (CreateTable) statement()  {}
func (DropTable) statement()    {}
func (RenameTable) statement()  {}
func (AddColumn) statement()    {}
func (ChangeColumn) statement() {}
func (ModifyColumn) statement() {}

// Render omits the column list entirely when there are no columns.
func (s CreateTable) Render() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(s.Table)
	if len(s.Columns) == 0 {
		return b.String()
	}

	b.WriteString(" (")
	for i, col := range s.Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(col.Render())
	}
	b.WriteByte(')')
	return b.String()
}

// Render returns "DROP TABLE <table>".
func (s DropTable) Render() string {
	return "DROP TABLE " + s.Table
}

// Render returns "ALTER TABLE <table> RENAME <new name>".
func (s RenameTable) Render() string {
	return "ALTER TABLE " + s.Table + " RENAME " + s.NewName
}

// Render returns "ALTER TABLE <table> ADD <column definition>".
func (s AddColumn) Render() string {
	return "ALTER TABLE " + s.Table + " ADD " + s.Column.Render()
}

// Render returns "ALTER TABLE <table> CHANGE <old name> <column definition>".
func (s ChangeColumn) Render() string {
	return "ALTER TABLE " + s.Table + " CHANGE " + s.OldName + " " + s.Column.Render()
}

// Render returns "ALTER TABLE <table> MODIFY <column definition>".
func (s ModifyColumn) Render() string {
	return "ALTER TABLE " + s.Table + " MODIFY " + s.Column.Render()
}

// Columns returns the column definitions carried by s, in order.
func Columns(s Statement) []Column {
	switch st := s.(type) {
	case CreateTable:
		return st.Columns
	case AddColumn:
		return []Column{st.Column}
	case ChangeColumn:
		return []Column{st.Column}
	case ModifyColumn:
		return []Column{st.Column}
	}
	return nil
}

// Op returns the snake_case operation name of s, as used in plan files.
func Op(s Statement) string {
	switch s.(type) {
	case CreateTable:
		return OpCreateTable
	case DropTable:
		return OpDropTable
	case RenameTable:
		return OpRenameTable
	case AddColumn:
		return OpAddColumn
	case ChangeColumn:
		return OpChangeColumn
	case ModifyColumn:
		return OpModifyColumn
	}
	return ""
}

// Operation names.
const (
	OpCreateTable  = "create_table"
	OpDropTable    = "drop_table"
	OpRenameTable  = "rename_table"
	OpAddColumn    = "add_column"
	OpChangeColumn = "change_column"
	OpModifyColumn = "modify_column"
)
