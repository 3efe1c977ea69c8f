package main

import (
	"fmt"

	"github.com/Limetric/ddlplan/migration"
	"vitess.io/vitess/go/vt/sqlparser"
)

// checkStatement parses sql with the MySQL grammar and confirms the parsed
// statement is of the kind its migration op produces.
func checkStatement(parser *sqlparser.Parser, sql, op string) error {
	stmt, err := parser.Parse(sql)
	if err != nil {
		return fmt.Errorf("syntax: %w", err)
	}

	var ok bool
	switch op {
	case migration.OpCreateTable:
		_, ok = stmt.(*sqlparser.CreateTable)
	case migration.OpDropTable:
		_, ok = stmt.(*sqlparser.DropTable)
	case migration.OpRenameTable:
		switch stmt.(type) {
		case *sqlparser.AlterTable, *sqlparser.RenameTable:
			ok = true
		}
	case migration.OpAddColumn, migration.OpChangeColumn, migration.OpModifyColumn:
		_, ok = stmt.(*sqlparser.AlterTable)
	default:
		// Hook statements carry no op; any parseable statement is accepted.
		ok = true
	}
	if !ok {
		return fmt.Errorf("parsed as %T, not %s", stmt, op)
	}

	// The parser falls back to a partial parse for DDL it cannot read fully
	// and reports no error.
	if ddl, isDDL := stmt.(sqlparser.DDLStatement); isDDL && !ddl.IsFullyParsed() {
		return fmt.Errorf("syntax: %T only partially parsed", stmt)
	}
	return nil
}

// checkPlan syntax-checks every hook statement and rendered item and returns
// one message per failure.
func checkPlan(before []string, items []migration.Item, after []string) []string {
	parser := sqlparser.NewTestParser()

	var problems []string
	for i, s := range before {
		if err := checkStatement(parser, s, ""); err != nil {
			problems = append(problems, fmt.Sprintf("before hook statement %d: %v\n  SQL: %s", i+1, err, s))
		}
	}
	for i, it := range items {
		sql := it.Statement.Render()
		if err := checkStatement(parser, sql, migration.Op(it.Statement)); err != nil {
			problems = append(problems, fmt.Sprintf("migration[%d] (version %d): %v\n  SQL: %s", i, it.Version, err, sql))
		}
	}
	for i, s := range after {
		if err := checkStatement(parser, s, ""); err != nil {
			problems = append(problems, fmt.Sprintf("after hook statement %d: %v\n  SQL: %s", i+1, err, s))
		}
	}
	return problems
}

// collectLintWarnings gathers LintStatement reasons for every item.
func collectLintWarnings(items []migration.Item) []string {
	var warnings []string
	for i, it := range items {
		for _, r := range migration.LintStatement(it.Statement) {
			warnings = append(warnings, fmt.Sprintf("migration[%d] %s %s: %s",
				i, migration.Op(it.Statement), it.Statement.TableName(), r))
		}
	}
	return warnings
}
