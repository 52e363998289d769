package github

// User is a GitHub user profile, reduced to the fields the gateway serves.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Company     string `json:"company"`
	Blog        string `json:"blog"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
}

// Repo is a repository summary.
type Repo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
}

// CodeExample is a search hit enriched with a README snippet.
type CodeExample struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	URL           string `json:"url"`
	Stars         int    `json:"stars"`
	ReadmeSnippet string `json:"readme_snippet,omitempty"`
}

// Wire structs for the GitHub REST API.

type apiRepo struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Description     string `json:"description"`
	HTMLURL         string `json:"html_url"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
}

type searchReposResponse struct {
	TotalCount int       `json:"total_count"`
	Items      []apiRepo `json:"items"`
}
