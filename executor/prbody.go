/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package executor

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/issueagent/issueagent/codeblock"
	"github.com/issueagent/issueagent/mcp"
)

var prBodyTemplate = template.Must(template.New("prbody").Parse(`## AI Agent Implementation

This pull request implements the requirements from Issue #{{.Number}}: {{.Title}}

### Changes Made:
{{.IssueBody}}

### Implementation:
The AI agent has analyzed the requirements and provided the following implementation:

` + "```{{.Language}}\n{{.Code}}\n```" + `

### Files Created/Modified:
- Generated implementation files saved to ` + "`" + OutputDir + "`" + `

### Review Notes:
- This implementation follows the exact requirements from the GitHub issue
- No extra features were added beyond what was requested
- Code has been reviewed for accuracy and completeness

---
*This PR was automatically generated by the AI Dev Agents system.*
`))

// prTitle builds the pull request title for an issue.
func prTitle(title string) string {
	return "🤖 AI Agent: Implement " + title
}

// prBody renders the pull request description, embedding the first
// extracted code block under its own language tag.
func prBody(issue mcp.Issue, first codeblock.Block) (string, error) {
	var b strings.Builder
	if err := prBodyTemplate.Execute(&b, struct {
		Number    int
		Title     string
		IssueBody string
		Language  string
		Code      string
	}{
		Number:    issue.Number,
		Title:     issue.Title,
		IssueBody: issue.Body,
		Language:  first.Language,
		Code:      first.Code,
	}); err != nil {
		return "", fmt.Errorf("rendering pull request body: %w", err)
	}
	return b.String(), nil
}
