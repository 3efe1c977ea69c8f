package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/Limetric/ddlplan/migration"
)

func TestWritePlanTable(t *testing.T) {
	items := []migration.Item{
		{Version: 3, Statement: migration.DropTable{Table: "sessions"}},
		{Version: 4, Statement: migration.RenameTable{Table: "users", NewName: "accounts"}},
	}

	var buf bytes.Buffer
	if err := writePlanTable(&buf, items, 0); err != nil {
		t.Fatalf("writePlanTable() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"VERSION", "OP", "TABLE", "SQL",
		"drop_table", "sessions", "DROP TABLE sessions",
		"rename_table", "ALTER TABLE users RENAME accounts",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines < 3 {
		t.Errorf("table output has %d lines, want at least 3:\n%s", lines, out)
	}
}

func TestWritePlanTable_Wrapped(t *testing.T) {
	items := []migration.Item{
		{Version: 1, Statement: migration.CreateTable{Table: "users", Columns: []migration.Column{
			migration.PrimaryKeyColumn("id", migration.BigInt, "", true),
			migration.NewColumn("display_name", migration.Varchar, "255"),
		}}},
	}

	var buf bytes.Buffer
	if err := writePlanTable(&buf, items, minSQLWidth); err != nil {
		t.Fatalf("writePlanTable() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"create_table", "users", "AUTO_INCREMENT"} {
		if !strings.Contains(out, want) {
			t.Errorf("wrapped table output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalSQLWidth_NotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := terminalSQLWidth(f); got != 0 {
		t.Fatalf("terminalSQLWidth(file) = %d, want 0", got)
	}
}
