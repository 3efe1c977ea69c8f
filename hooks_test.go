package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			"single statement",
			"SELECT 1",
			[]string{"SELECT 1"},
		},
		{
			"two statements",
			"SELECT 1; SELECT 2;",
			[]string{"SELECT 1", "SELECT 2"},
		},
		{
			"empty statements skipped",
			"SELECT 1;; ;SELECT 2;",
			[]string{"SELECT 1", "SELECT 2"},
		},
		{
			"semicolon inside single quotes",
			"INSERT INTO t VALUES ('a;b'); SELECT 2",
			[]string{"INSERT INTO t VALUES ('a;b')", "SELECT 2"},
		},
		{
			"doubled single quote",
			"SELECT 'it''s;'; SELECT 2",
			[]string{"SELECT 'it''s;'", "SELECT 2"},
		},
		{
			"backslash escaped quote",
			`SELECT 'a\';b'; SELECT 2`,
			[]string{`SELECT 'a\';b'`, "SELECT 2"},
		},
		{
			"double-quoted string with semicolon",
			`SELECT "a;b"; SELECT 2;`,
			[]string{`SELECT "a;b"`, "SELECT 2"},
		},
		{
			"backtick identifier with semicolon",
			"CREATE TABLE `odd;name` (id INT); SELECT 2",
			[]string{"CREATE TABLE `odd;name` (id INT)", "SELECT 2"},
		},
		{
			"dash comment with semicolon",
			"-- cleanup; later\nDELETE FROM t; SELECT 1",
			[]string{"-- cleanup; later\nDELETE FROM t", "SELECT 1"},
		},
		{
			"hash comment with semicolon",
			"# note; here\nSELECT 1; SELECT 2",
			[]string{"# note; here\nSELECT 1", "SELECT 2"},
		},
		{
			"double dash without space is not a comment",
			"SELECT 1--1; SELECT 2",
			[]string{"SELECT 1--1", "SELECT 2"},
		},
		{
			"block comment with semicolon",
			"/* comment; still comment */ SELECT 1; SELECT 2;",
			[]string{"/* comment; still comment */ SELECT 1", "SELECT 2"},
		},
		{
			"multiline statements",
			"ALTER TABLE users\n  ADD age INT;\nDROP TABLE sessions;\n",
			[]string{"ALTER TABLE users\n  ADD age INT", "DROP TABLE sessions"},
		},
		{
			"empty input",
			"",
			nil,
		},
		{
			"only whitespace",
			"   \n\t  ",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitStatements(tt.sql)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitStatements(%q) =\n  %v\nwant:\n  %v", tt.sql, got, tt.want)
			}
		})
	}
}

func TestLoadHookStatements(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.sql"), []byte("SET NAMES utf8mb4;\nSET foreign_key_checks = 0;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.sql"), []byte("SELECT 1"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &PlanConfig{configDir: dir}
	got, err := loadHookStatements(cfg, []string{"a.sql", "b.sql"}, "before")
	if err != nil {
		t.Fatalf("loadHookStatements() error: %v", err)
	}
	want := []string{"SET NAMES utf8mb4", "SET foreign_key_checks = 0", "SELECT 1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("loadHookStatements() = %v, want %v", got, want)
	}
}

func TestLoadHookStatements_NoFiles(t *testing.T) {
	got, err := loadHookStatements(&PlanConfig{}, nil, "after")
	if err != nil || got != nil {
		t.Fatalf("loadHookStatements(nil) = %v, %v; want nil, nil", got, err)
	}
}

func TestLoadHookStatements_MissingFile(t *testing.T) {
	cfg := &PlanConfig{configDir: t.TempDir()}
	_, err := loadHookStatements(cfg, []string{"missing.sql"}, "after")
	if err == nil || !strings.Contains(err.Error(), "hook after: read missing.sql") {
		t.Fatalf("loadHookStatements() error = %v", err)
	}
}
