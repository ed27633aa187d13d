/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package pipeline

import (
	"fmt"
	"strings"

	"github.com/issueagent/issueagent/mcp"
)

// issueBodyPreview caps the body excerpt in analysis prompts.
const issueBodyPreview = 200

// taskPrompt renders labeled issues into an implementation prompt. The
// framing pushes the model to treat issue bodies as exact requirements
// rather than inspiration.
func taskPrompt(repository, label string, issues []mcp.Issue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Repository: %s\n", repository)
	fmt.Fprintf(&b, "Found %d GitHub issues labeled as '%s':\n\n", len(issues), label)
	b.WriteString("IMPORTANT: These are REAL GitHub issues with specific requirements. ")
	b.WriteString("You must follow the EXACT instructions provided in each issue.\n\n")

	for _, issue := range issues {
		fmt.Fprintf(&b, "ISSUE #%d: %s\n", issue.Number, issue.Title)
		fmt.Fprintf(&b, "State: %s\n", issue.State)
		fmt.Fprintf(&b, "URL: %s\n", issue.HTMLURL)
		fmt.Fprintf(&b, "EXACT REQUIREMENTS:\n%s\n", issue.Body)
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}

	b.WriteString(`
You are a senior software developer. Implement solutions that EXACTLY follow the requirements stated in the issues above.

CRITICAL REQUIREMENTS:
- Implement ONLY what is explicitly requested in each issue
- Do not add features or requirements not mentioned in the original task
- Follow the specifications precisely as written
- If the issue asks for a specific function, implement that function exactly
- If the issue asks for a specific API endpoint, implement that endpoint exactly

For each task, provide:
- Complete code implementation that matches the exact requirements, in fenced code blocks tagged with the language
- Documentation that explains how the implementation meets the stated requirements
- Usage examples that demonstrate the requested functionality
`)
	return b.String()
}

// analysisPrompt renders a label-filtered issue overview for insight
// generation rather than implementation.
func analysisPrompt(repository, label string, labeled, open []mcp.Issue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Repository Overview: %s\n", repository)
	fmt.Fprintf(&b, "Total open issues: %d\n", len(open))
	fmt.Fprintf(&b, "Issues with label '%s': %d\n", label, len(labeled))
	fmt.Fprintf(&b, "Percentage of open issues with this label: %.1f%%\n\n", labelPercentage(len(labeled), len(open)))
	fmt.Fprintf(&b, "Detailed issues with label '%s':\n\n", label)

	for _, issue := range labeled {
		names := make([]string, 0, len(issue.Labels))
		for _, l := range issue.Labels {
			names = append(names, l.Name)
		}
		fmt.Fprintf(&b, "Issue #%d: %s\n", issue.Number, issue.Title)
		fmt.Fprintf(&b, "State: %s\n", issue.State)
		fmt.Fprintf(&b, "Labels: %s\n", strings.Join(names, ", "))
		fmt.Fprintf(&b, "Created: %s\n", issue.CreatedAt)
		fmt.Fprintf(&b, "Updated: %s\n", issue.UpdatedAt)
		fmt.Fprintf(&b, "URL: %s\n", issue.HTMLURL)
		fmt.Fprintf(&b, "Body: %s\n", bodyPreview(issue.Body))
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}

	b.WriteString(`
Based on the issues data above, create insights about:
1. Issue distribution (open vs closed)
2. Common patterns in labels
3. Potential bottlenecks or areas of concern
4. Recommendations for issue management

Provide actionable insights and suggestions for the team.
`)
	return b.String()
}

// labelPercentage guards the zero-open-issues division.
func labelPercentage(labeled, open int) float64 {
	if open == 0 {
		return 0
	}
	return float64(labeled) / float64(open) * 100
}

// bodyPreview returns up to 200 runes of body, with an ellipsis only when
// something was cut.
func bodyPreview(body string) string {
	runes := []rune(body)
	if len(runes) <= issueBodyPreview {
		return body
	}
	return string(runes[:issueBodyPreview]) + "..."
}
