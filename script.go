package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Limetric/ddlplan/migration"
)

// writeScript writes before-hook statements, the rendered items and then
// after-hook statements, each terminated by ";". A "-- version N" line
// precedes every run of items sharing a version.
func writeScript(w io.Writer, before []string, items []migration.Item, after []string) error {
	bw := bufio.NewWriter(w)

	for _, s := range before {
		fmt.Fprintf(bw, "%s;\n", s)
	}

	for i, it := range items {
		if i == 0 || it.Version != items[i-1].Version {
			fmt.Fprintf(bw, "-- version %d\n", it.Version)
		}
		fmt.Fprintf(bw, "%s;\n", it.Statement.Render())
	}

	for _, s := range after {
		fmt.Fprintf(bw, "%s;\n", s)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}

// writeScriptFile writes the script to path, creating or truncating it.
func writeScriptFile(path string, before []string, items []migration.Item, after []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	return writeScript(f, before, items, after)
}
