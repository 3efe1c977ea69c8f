package migration

import "fmt"

// LintColumn returns the reasons MySQL is likely to reject or misread the
// column definition. Rendering is unaffected.
func LintColumn(c Column) []string {
	var reasons []string
	if c.Name == "" {
		reasons = append(reasons, "column name is empty")
	}

	switch c.Type {
	case Varchar:
		if c.Constraint == "" {
			reasons = append(reasons, "VARCHAR requires a length")
		}
	case Enum, Set:
		if c.Constraint == "" {
			reasons = append(reasons, fmt.Sprintf("%s requires a value list", c.Type))
		} else if _, err := ParseEnumValues(c.Constraint); err != nil {
			reasons = append(reasons, err.Error())
		}
	}

	if c.Unsigned && !c.Type.IsNumeric() {
		reasons = append(reasons, fmt.Sprintf("UNSIGNED has no effect on %s", c.Type))
	}
	if c.AutoIncrement && !c.Type.IsInteger() {
		reasons = append(reasons, fmt.Sprintf("AUTO_INCREMENT is not valid on %s", c.Type))
	}
	if c.Nullable && c.PrimaryKey {
		reasons = append(reasons, "PRIMARY KEY is dropped because the column is nullable")
	} else if c.Nullable && c.Unique {
		reasons = append(reasons, "UNIQUE is dropped because the column is nullable")
	}
	return reasons
}

// LintStatement applies LintColumn to every column of s and adds
// statement-level checks. Column reasons are prefixed with the column name.
func LintStatement(s Statement) []string {
	var reasons []string
	if s.TableName() == "" {
		reasons = append(reasons, "table name is empty")
	}

	switch st := s.(type) {
	case CreateTable:
		if len(st.Columns) == 0 {
			reasons = append(reasons, "CREATE TABLE without columns is rejected by MySQL")
		}
	case RenameTable:
		if st.NewName == "" {
			reasons = append(reasons, "new table name is empty")
		} else if st.NewName == st.Table {
			reasons = append(reasons, "table is renamed to its own name")
		}
	case ChangeColumn:
		if st.OldName == "" {
			reasons = append(reasons, "old column name is empty")
		}
	}

	for _, col := range Columns(s) {
		for _, r := range LintColumn(col) {
			reasons = append(reasons, fmt.Sprintf("%s: %s", col.Name, r))
		}
	}
	return reasons
}
