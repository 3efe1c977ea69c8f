package main

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// loadHookStatements reads each SQL file and returns its statements in order.
func loadHookStatements(cfg *PlanConfig, files []string, phase string) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	log.Printf("  loading %s hooks (%d files)...", phase, len(files))

	var stmts []string
	for _, f := range files {
		data, err := os.ReadFile(cfg.resolvePath(f))
		if err != nil {
			return nil, fmt.Errorf("hook %s: read %s: %w", phase, f, err)
		}
		s := splitStatements(string(data))
		log.Printf("    %s: %d statements", f, len(s))
		stmts = append(stmts, s...)
	}
	return stmts, nil
}

// splitStatements splits MySQL script text on semicolons, ignoring empty
// entries and semicolons inside quotes or comments.
func splitStatements(sql string) []string {
	var stmts []string
	var current strings.Builder
	var quote byte // one of ' " ` while inside a quoted span
	inLineComment := false
	inBlockComment := false

	for i := 0; i < len(sql); i++ {
		c := sql[i]

		if inLineComment {
			current.WriteByte(c)
			if c == '\n' {
				inLineComment = false
			}
			continue
		}

		if inBlockComment {
			current.WriteByte(c)
			if c == '*' && i+1 < len(sql) && sql[i+1] == '/' {
				current.WriteByte(sql[i+1])
				i++
				inBlockComment = false
			}
			continue
		}

		if quote != 0 {
			current.WriteByte(c)
			switch {
			case c == '\\' && quote != '`' && i+1 < len(sql):
				current.WriteByte(sql[i+1])
				i++
			case c == quote:
				// A doubled quote character is an escaped quote.
				if i+1 < len(sql) && sql[i+1] == quote {
					current.WriteByte(sql[i+1])
					i++
				} else {
					quote = 0
				}
			}
			continue
		}

		switch {
		case c == '-' && isDashComment(sql, i):
			current.WriteString("--")
			i++
			inLineComment = true
		case c == '#':
			current.WriteByte(c)
			inLineComment = true
		case c == '/' && i+1 < len(sql) && sql[i+1] == '*':
			current.WriteString("/*")
			i++
			inBlockComment = true
		case c == '\'' || c == '"' || c == '`':
			current.WriteByte(c)
			quote = c
		case c == ';':
			if s := strings.TrimSpace(current.String()); s != "" {
				stmts = append(stmts, s)
			}
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	// Trailing statement without semicolon
	if s := strings.TrimSpace(current.String()); s != "" {
		stmts = append(stmts, s)
	}

	return stmts
}

// isDashComment reports whether sql[i:] starts a "-- " comment. MySQL needs
// whitespace (or end of input) after the two dashes.
func isDashComment(sql string, i int) bool {
	if i+1 >= len(sql) || sql[i+1] != '-' {
		return false
	}
	if i+2 == len(sql) {
		return true
	}
	switch sql[i+2] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
