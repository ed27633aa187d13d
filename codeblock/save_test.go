/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package codeblock

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSaveAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	blocks := []Block{
		{Language: "python", Code: "print(1)"},
		{Language: "text", Code: "not code"},
		{Language: "go", Code: "package main"},
	}

	saved, err := SaveAll(context.Background(), dir, blocks)
	if err != nil {
		t.Fatalf("SaveAll() = %v", err)
	}

	// The text block is skipped but still consumes its index: numbering
	// has a gap at 2.
	want := []string{
		filepath.Join(dir, "ai_task_implementation_1.py"),
		filepath.Join(dir, "ai_task_implementation_3.go"),
	}
	if diff := cmp.Diff(want, saved); diff != "" {
		t.Errorf("SaveAll() mismatch (-want +got):\n%s", diff)
	}

	got, err := os.ReadFile(want[0])
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(got) != "print(1)" {
		t.Errorf("file content = %q, want %q", got, "print(1)")
	}
}

func TestSaveAllNoSupportedBlocks(t *testing.T) {
	dir := t.TempDir()
	saved, err := SaveAll(context.Background(), dir, []Block{{Language: "text", Code: "nope"}})
	if err != nil {
		t.Fatalf("SaveAll() = %v", err)
	}
	if len(saved) != 0 {
		t.Errorf("saved = %v, want none", saved)
	}
}

func TestSaveAllCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if _, err := SaveAll(context.Background(), dir, []Block{{Language: "python", Code: "x = 1"}}); err != nil {
		t.Fatalf("SaveAll() = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ai_task_implementation_1.py")); err != nil {
		t.Errorf("expected file missing: %v", err)
	}
}
