/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package codeblock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chainguard-dev/clog"
)

// FileName returns the deterministic implementation file name for the
// block at 1-based position index with the given extension.
func FileName(index int, ext string) string {
	return fmt.Sprintf("ai_task_implementation_%d%s", index, ext)
}

// SaveAll writes the supported-language blocks to dir, one file per block,
// named by the block's 1-based position in the full sequence. Skipped
// (unsupported) blocks leave gaps in the numbering. Individual write
// failures are logged and skipped; the returned paths are the files
// actually written.
func SaveAll(ctx context.Context, dir string, blocks []Block) ([]string, error) {
	log := clog.FromContext(ctx).With("dir", dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var saved []string
	for i, block := range blocks {
		ext, ok := ExtensionForLanguage(block.Language)
		if !ok {
			continue
		}
		path := filepath.Join(dir, FileName(i+1, ext))
		if err := os.WriteFile(path, []byte(block.Code), 0o644); err != nil {
			log.With("path", path).With("error", err).Error("Failed to save implementation file")
			continue
		}
		saved = append(saved, path)
	}
	log.With("count", len(saved)).Info("Saved implementation files")
	return saved, nil
}
