// Package github is the source-hosting integration. It is not a chat
// provider: it exposes the GitHub REST surface the gateway needs, namely
// user profiles, repository listings, and repository search with README
// snippets.
//
// A token is optional. Anonymous access works but is rate-limited by GitHub,
// so the handlers inject the user's configured token when one exists.
// READMEs are requested in GitHub's rendered-HTML representation and
// converted to Markdown for snippet display.
package github
