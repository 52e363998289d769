package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	client := New()
	if client.token != "env-token" {
		t.Errorf("expected token from GITHUB_TOKEN, got %q", client.token)
	}
	if client.baseURL != defaultBaseURL {
		t.Errorf("expected baseURL %q, got %q", defaultBaseURL, client.baseURL)
	}
}

// TestWithToken verifies that a per-user token produces a copy and leaves the
// shared client untouched.
func TestWithToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	shared := New()
	scoped := shared.WithToken("user-token")

	if scoped.token != "user-token" {
		t.Errorf("expected scoped token, got %q", scoped.token)
	}
	if shared.token != "" {
		t.Errorf("shared client token was mutated: %q", shared.token)
	}
	if scoped == shared {
		t.Error("expected WithToken to return a copy")
	}
}

// TestGetUser verifies the user endpoint, the API version header, and Bearer
// auth when a token is set.
func TestGetUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat" {
			t.Errorf("expected path /users/octocat, got %s", r.URL.Path)
		}
		if r.Header.Get("X-GitHub-Api-Version") != apiVersion {
			t.Errorf("missing api version header: %s", r.Header.Get("X-GitHub-Api-Version"))
		}
		if r.Header.Get("Authorization") != "Bearer user-token" {
			t.Errorf("missing or incorrect Authorization header: %s", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(User{Login: "octocat", Name: "The Octocat", PublicRepos: 8})
	}))
	defer server.Close()

	t.Setenv("GITHUB_TOKEN", "")
	client := New().WithBaseURL(server.URL).WithHttpClient(server.Client()).WithToken("user-token")

	user, err := client.GetUser(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Login != "octocat" || user.PublicRepos != 8 {
		t.Errorf("unexpected user: %+v", user)
	}
}

// TestGetUser_Anonymous verifies that no Authorization header is sent without
// a token.
func TestGetUser_Anonymous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header: %s", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(User{Login: "octocat"})
	}))
	defer server.Close()

	t.Setenv("GITHUB_TOKEN", "")
	client := New().WithBaseURL(server.URL).WithHttpClient(server.Client())

	if _, err := client.GetUser(context.Background(), "octocat"); err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
}

// TestGetUser_NotFound verifies that a 404 surfaces as an error.
func TestGetUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer server.Close()

	t.Setenv("GITHUB_TOKEN", "")
	client := New().WithBaseURL(server.URL).WithHttpClient(server.Client())

	if _, err := client.GetUser(context.Background(), "nobody"); err == nil {
		t.Fatal("expected error for 404, got nil")
	}
}

// TestListRepos verifies the repository listing and its per_page cap.
func TestListRepos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/repos" {
			t.Errorf("expected path /users/octocat/repos, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("per_page") != "10" {
			t.Errorf("expected per_page=10, got %s", r.URL.Query().Get("per_page"))
		}
		json.NewEncoder(w).Encode([]apiRepo{
			{Name: "hello-world", FullName: "octocat/hello-world", HTMLURL: "https://github.com/octocat/hello-world", Language: "Go", StargazersCount: 42},
		})
	}))
	defer server.Close()

	t.Setenv("GITHUB_TOKEN", "")
	client := New().WithBaseURL(server.URL).WithHttpClient(server.Client())

	repos, err := client.ListRepos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("ListRepos failed: %v", err)
	}
	if len(repos) != 1 {
		t.Fatalf("expected 1 repo, got %d", len(repos))
	}
	if repos[0].Name != "hello-world" || repos[0].Stars != 42 || repos[0].URL != "https://github.com/octocat/hello-world" {
		t.Errorf("unexpected repo: %+v", repos[0])
	}
}

// TestSearchCodeExamples verifies the search query, the README
// HTML-to-Markdown snippet, and the placeholder used when the README fetch
// fails.
func TestSearchCodeExamples(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search/repositories":
			if r.URL.Query().Get("q") != "http router" {
				t.Errorf("unexpected query: %s", r.URL.Query().Get("q"))
			}
			if r.URL.Query().Get("sort") != "stars" {
				t.Errorf("expected sort=stars, got %s", r.URL.Query().Get("sort"))
			}
			if r.URL.Query().Get("per_page") != "5" {
				t.Errorf("expected per_page=5, got %s", r.URL.Query().Get("per_page"))
			}
			json.NewEncoder(w).Encode(searchReposResponse{
				TotalCount: 2,
				Items: []apiRepo{
					{Name: "mux", FullName: "gorilla/mux", Language: "Go", StargazersCount: 20000},
					{Name: "chi", FullName: "go-chi/chi", Description: "lightweight router", Language: "Go", StargazersCount: 18000},
				},
			})
		case r.URL.Path == "/repos/gorilla/mux/readme":
			if r.Header.Get("Accept") != "application/vnd.github.html" {
				t.Errorf("expected HTML readme accept header, got %s", r.Header.Get("Accept"))
			}
			w.Write([]byte("<h1>mux</h1><p>A powerful HTTP router.</p>"))
		case r.URL.Path == "/repos/go-chi/chi/readme":
			w.WriteHeader(http.StatusNotFound)
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	t.Setenv("GITHUB_TOKEN", "")
	client := New().WithBaseURL(server.URL).WithHttpClient(server.Client())

	examples, err := client.SearchCodeExamples(context.Background(), "http router")
	if err != nil {
		t.Fatalf("SearchCodeExamples failed: %v", err)
	}
	if len(examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(examples))
	}

	first := examples[0]
	if first.Title != "mux" {
		t.Errorf("expected title mux, got %q", first.Title)
	}
	if first.Description != "No description available" {
		t.Errorf("expected description placeholder, got %q", first.Description)
	}
	if !strings.Contains(first.ReadmeSnippet, "mux") || !strings.Contains(first.ReadmeSnippet, "A powerful HTTP router.") {
		t.Errorf("expected markdown snippet from readme, got %q", first.ReadmeSnippet)
	}
	if strings.Contains(first.ReadmeSnippet, "<h1>") {
		t.Errorf("expected HTML converted to markdown, got %q", first.ReadmeSnippet)
	}

	second := examples[1]
	if second.ReadmeSnippet != "Repository: chi" {
		t.Errorf("expected readme placeholder, got %q", second.ReadmeSnippet)
	}
	if second.Description != "lightweight router" {
		t.Errorf("unexpected description: %q", second.Description)
	}
}

// TestSearchCodeExamples_SearchFailure verifies that a failed search is an
// error for the caller to handle.
func TestSearchCodeExamples_SearchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "API rate limit exceeded"}`))
	}))
	defer server.Close()

	t.Setenv("GITHUB_TOKEN", "")
	client := New().WithBaseURL(server.URL).WithHttpClient(server.Client())

	if _, err := client.SearchCodeExamples(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for rate-limited search, got nil")
	}
}
