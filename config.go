package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Limetric/ddlplan/migration"
	"gopkg.in/yaml.v3"
)

// PlanConfig is the decoded form of a migration plan file.
type PlanConfig struct {
	Hooks      HooksConfig       `toml:"hooks" yaml:"hooks"`
	Migrations []MigrationConfig `toml:"migration" yaml:"migrations"`

	// Items holds the statements built from Migrations, in file order.
	Items []migration.Item `toml:"-" yaml:"-"`

	// configDir is the directory containing the plan file, used to resolve relative hook paths.
	configDir string
}

// HooksConfig lists raw SQL files copied around the rendered statements.
type HooksConfig struct {
	Before []string `toml:"before" yaml:"before"`
	After  []string `toml:"after" yaml:"after"`
}

// MigrationConfig describes one statement. Which fields are required depends on Op.
type MigrationConfig struct {
	Version    int            `toml:"version" yaml:"version"`
	Op         string         `toml:"op" yaml:"op"`
	Table      string         `toml:"table" yaml:"table"`
	NewName    string         `toml:"new_name" yaml:"new_name"`       // rename_table
	ColumnName string         `toml:"column_name" yaml:"column_name"` // change_column: old name
	Column     *ColumnConfig  `toml:"column" yaml:"column"`           // add/change/modify_column
	Columns    []ColumnConfig `toml:"columns" yaml:"columns"`         // create_table
}

// ColumnConfig mirrors migration.Column with a string type keyword.
type ColumnConfig struct {
	Name          string   `toml:"name" yaml:"name"`
	Type          string   `toml:"type" yaml:"type"`
	Constraint    string   `toml:"constraint" yaml:"constraint"`
	Values        []string `toml:"values" yaml:"values"` // ENUM/SET values, quoted on render
	Unique        bool     `toml:"unique" yaml:"unique"`
	PrimaryKey    bool     `toml:"primary_key" yaml:"primary_key"`
	AutoIncrement bool     `toml:"auto_increment" yaml:"auto_increment"`
	Unsigned      bool     `toml:"unsigned" yaml:"unsigned"`
	Nullable      bool     `toml:"nullable" yaml:"nullable"`
}

// loadPlan reads a TOML or YAML plan file and builds its migration items.
func loadPlan(path string) (*PlanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var cfg PlanConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAMLPlan(data, &cfg)
	default:
		err = decodeTOMLPlan(data, &cfg)
	}
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve plan path: %w", err)
	}
	cfg.configDir = filepath.Dir(absPath)

	if len(cfg.Migrations) == 0 {
		return nil, fmt.Errorf("plan has no migrations")
	}

	cfg.Items = make([]migration.Item, 0, len(cfg.Migrations))
	for i, m := range cfg.Migrations {
		item, err := m.item()
		if err != nil {
			return nil, fmt.Errorf("migration[%d]: %w", i, err)
		}
		cfg.Items = append(cfg.Items, item)
	}

	return &cfg, nil
}

func decodeTOMLPlan(data []byte, cfg *PlanConfig) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse plan: %w", err)
	}
	if unknown := md.Undecoded(); len(unknown) > 0 {
		keys := make([]string, len(unknown))
		for i, k := range unknown {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown plan keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAMLPlan(data []byte, cfg *PlanConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse plan: %w", err)
	}
	return nil
}

// resolvePath resolves a path relative to the plan file directory.
func (c *PlanConfig) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.configDir, p)
}

func (m MigrationConfig) item() (migration.Item, error) {
	if m.Version < 0 {
		return migration.Item{}, fmt.Errorf("version must not be negative, got %d", m.Version)
	}
	if strings.TrimSpace(m.Table) == "" {
		return migration.Item{}, fmt.Errorf("table is required")
	}

	stmt, err := m.statement()
	if err != nil {
		return migration.Item{}, err
	}
	return migration.Item{Version: m.Version, Statement: stmt}, nil
}

func (m MigrationConfig) statement() (migration.Statement, error) {
	switch m.Op {
	case migration.OpCreateTable:
		cols := make([]migration.Column, 0, len(m.Columns))
		for i, cc := range m.Columns {
			col, err := cc.column()
			if err != nil {
				return nil, fmt.Errorf("columns[%d]: %w", i, err)
			}
			cols = append(cols, col)
		}
		return migration.CreateTable{Table: m.Table, Columns: cols}, nil

	case migration.OpDropTable:
		return migration.DropTable{Table: m.Table}, nil

	case migration.OpRenameTable:
		if m.NewName == "" {
			return nil, fmt.Errorf("new_name is required for %s", m.Op)
		}
		return migration.RenameTable{Table: m.Table, NewName: m.NewName}, nil

	case migration.OpAddColumn, migration.OpChangeColumn, migration.OpModifyColumn:
		if m.Column == nil {
			return nil, fmt.Errorf("column is required for %s", m.Op)
		}
		col, err := m.Column.column()
		if err != nil {
			return nil, fmt.Errorf("column: %w", err)
		}
		switch m.Op {
		case migration.OpAddColumn:
			return migration.AddColumn{Table: m.Table, Column: col}, nil
		case migration.OpModifyColumn:
			return migration.ModifyColumn{Table: m.Table, Column: col}, nil
		}
		if m.ColumnName == "" {
			return nil, fmt.Errorf("column_name is required for %s", m.Op)
		}
		return migration.ChangeColumn{Table: m.Table, OldName: m.ColumnName, Column: col}, nil

	case "":
		return nil, fmt.Errorf("op is required")
	default:
		return nil, fmt.Errorf("op must be one of: %s, %s, %s, %s, %s, %s; got %q",
			migration.OpCreateTable, migration.OpDropTable, migration.OpRenameTable,
			migration.OpAddColumn, migration.OpChangeColumn, migration.OpModifyColumn, m.Op)
	}
}

func (cc ColumnConfig) column() (migration.Column, error) {
	if cc.Name == "" {
		return migration.Column{}, fmt.Errorf("name is required")
	}
	typ, err := migration.ParseColumnType(cc.Type)
	if err != nil {
		return migration.Column{}, fmt.Errorf("%s: %w", cc.Name, err)
	}

	constraint := cc.Constraint
	if len(cc.Values) > 0 {
		if constraint != "" {
			return migration.Column{}, fmt.Errorf("%s: constraint and values are mutually exclusive", cc.Name)
		}
		constraint = migration.EnumValues(cc.Values...)
	}

	return migration.Column{
		Name:          cc.Name,
		Type:          typ,
		Constraint:    constraint,
		Unique:        cc.Unique,
		PrimaryKey:    cc.PrimaryKey,
		AutoIncrement: cc.AutoIncrement,
		Unsigned:      cc.Unsigned,
		Nullable:      cc.Nullable,
	}, nil
}
