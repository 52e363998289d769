// Package intent turns free-text chat messages into structured git
// operation requests.
//
// Detection is a fixed, ordered rule pipeline, not natural-language
// understanding: the message is lower-cased once, each operation category is
// tried independently, and within a category the first matching pattern
// wins. A single message can therefore yield several operations ("clone X
// and push" yields a clone and a push). Operations are emitted in category
// order — clone, checkout, commit, push, status — not in the order they
// appear in the text.
package intent

import (
	"regexp"
	"strings"
)

// Operation tags a git operation request.
type Operation string

const (
	OpClone    Operation = "clone"
	OpCheckout Operation = "checkout"
	OpStatus   Operation = "status"
	OpCommit   Operation = "commit"
	OpPush     Operation = "push"
)

// Request is a structured git operation inferred from a message. The
// Operation tag determines which optional fields are meaningful; the
// executor ignores the rest.
type Request struct {
	Operation   Operation `json:"operation"`
	RepoURL     string    `json:"repoUrl,omitempty"`
	Branch      string    `json:"branch,omitempty"`
	Message     string    `json:"message,omitempty"`
	Files       []string  `json:"files,omitempty"`
	ProjectName string    `json:"projectName,omitempty"`
	Create      bool      `json:"create,omitempty"`
}

// defaultCloneBranch is assumed when a clone request names no branch.
const defaultCloneBranch = "main"

// Patterns are matched against the lower-cased message. Within each slice,
// order is priority order: the first pattern that matches contributes the
// category's single operation.
var (
	clonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bgit\s+clone\s+(\S+)`),
		regexp.MustCompile(`\bclone\s+(\S+)`),
		regexp.MustCompile(`\bpull\s+down\s+(\S+)`),
	}

	// More specific forms come first so that "git checkout -b x" resolves the
	// branch, not the flag. A leading "new"/"create" keyword is skipped so
	// "checkout new feature-x" targets feature-x, with the keyword still
	// driving the create flag.
	checkoutPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bgit\s+checkout\s+(?:-b\s+)?(\S+)`),
		regexp.MustCompile(`\bcheckout\s+(?:branch\s+)?(?:new\s+|create\s+)?(\S+)`),
		regexp.MustCompile(`\bswitch\s+to\s+(?:a\s+)?(?:new\s+)?(?:branch\s+)?(\S+)`),
	}

	commitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bgit\s+commit\s+-m\s+["'](.+?)["']`),
		regexp.MustCompile(`\bcommit\s+(?:with message\s+)?["'](.+?)["']`),
		regexp.MustCompile(`\bsave changes\s+(?:with message\s+)?["'](.+?)["']`),
	}

	pushTriggers   = []string{"push", "upload", "sync changes"}
	statusTriggers = []string{"status", "what changed", "changes"}
)

// Extract scans message and returns the git operations it implies, in
// category order. A message matching no rule yields an empty (nil) slice,
// which is a valid outcome, not an error. Extraction is a pure function of
// the lower-cased input.
func Extract(message string) []Request {
	lower := strings.ToLower(message)

	var ops []Request

	if target := firstMatch(clonePatterns, lower); target != "" {
		ops = append(ops, Request{
			Operation: OpClone,
			RepoURL:   target,
			Branch:    defaultCloneBranch,
		})
	}

	if branch := firstMatch(checkoutPatterns, lower); branch != "" {
		ops = append(ops, Request{
			Operation: OpCheckout,
			Branch:    branch,
			Create:    strings.Contains(lower, "create") || strings.Contains(lower, "new"),
		})
	}

	if msg := firstMatch(commitPatterns, lower); msg != "" {
		ops = append(ops, Request{
			Operation: OpCommit,
			Message:   strings.TrimSpace(msg),
		})
	}

	if containsAny(lower, pushTriggers) {
		// Branch is left empty; the execution service applies its own default.
		ops = append(ops, Request{Operation: OpPush})
	}

	if containsAny(lower, statusTriggers) {
		ops = append(ops, Request{Operation: OpStatus})
	}

	return ops
}

func firstMatch(patterns []*regexp.Regexp, message string) string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(message); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func containsAny(message string, words []string) bool {
	for _, word := range words {
		if strings.Contains(message, word) {
			return true
		}
	}
	return false
}
