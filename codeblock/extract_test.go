/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package codeblock

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		want []Block
	}{{
		name: "single python block",
		text: "```python\ndef f():\n    return 1\n```",
		want: []Block{{Language: "python", Code: "def f():\n    return 1"}},
	}, {
		name: "no fences",
		text: "Just a plain analysis with no code at all.",
		want: nil,
	}, {
		name: "untagged fence defaults to text",
		text: "```\nsome output\n```",
		want: []Block{{Language: "text", Code: "some output"}},
	}, {
		name: "multiple blocks keep order",
		text: "intro\n```go\npackage main\n```\nmiddle\n```js\nconsole.log(1)\n```\nend",
		want: []Block{
			{Language: "go", Code: "package main"},
			{Language: "js", Code: "console.log(1)"},
		},
	}, {
		name: "unterminated fence yields nothing",
		text: "```python\ndef f():\n    return 1\n",
		want: nil,
	}, {
		name: "surrounding whitespace trimmed",
		text: "```rust\n\n  fn main() {}\n\n```",
		want: []Block{{Language: "rust", Code: "fn main() {}"}},
	}} {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.text)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	text := "```python\nprint(1)\n```\n```java\nclass A {}\n```"
	first := Extract(text)
	second := Extract(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Extract() not deterministic (-first +second):\n%s", diff)
	}
}

func TestExtensionForLanguage(t *testing.T) {
	for _, tc := range []struct {
		language string
		want     string
		ok       bool
	}{
		{"python", ".py", true},
		{"js", ".js", true},
		{"javascript", ".js", true},
		{"typescript", ".ts", true},
		{"go", ".go", true},
		{"rust", ".rs", true},
		{"text", "", false},
		{"brainfuck", "", false},
	} {
		got, ok := ExtensionForLanguage(tc.language)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ExtensionForLanguage(%q) = (%q, %t), want (%q, %t)", tc.language, got, ok, tc.want, tc.ok)
		}
	}
}
