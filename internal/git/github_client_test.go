package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/git"
)

func TestParseGitHubRemoteURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		hostname string
		owner    string
		repo     string
	}{
		{
			name:     "HTTPS github.com",
			url:      "https://github.com/acme/widget.git",
			hostname: "github.com",
			owner:    "acme",
			repo:     "widget",
		},
		{
			name:     "HTTPS without .git suffix",
			url:      "https://github.com/acme/widget",
			hostname: "github.com",
			owner:    "acme",
			repo:     "widget",
		},
		{
			name:     "SSH github.com",
			url:      "git@github.com:acme/widget.git",
			hostname: "github.com",
			owner:    "acme",
			repo:     "widget",
		},
		{
			name:     "HTTPS GitHub Enterprise",
			url:      "https://github.example.com/acme/widget.git",
			hostname: "github.example.com",
			owner:    "acme",
			repo:     "widget",
		},
		{
			name:     "SSH GitHub Enterprise",
			url:      "git@github.example.com:acme/widget.git",
			hostname: "github.example.com",
			owner:    "acme",
			repo:     "widget",
		},
		{
			name:     "surrounding whitespace",
			url:      "  https://github.com/acme/widget.git\n",
			hostname: "github.com",
			owner:    "acme",
			repo:     "widget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := git.ParseGitHubRemoteURL(tt.url)
			require.NoError(t, err)
			require.Equal(t, tt.hostname, info.Hostname)
			require.Equal(t, tt.owner, info.Owner)
			require.Equal(t, tt.repo, info.Repo)
		})
	}

	t.Run("rejects malformed URLs", func(t *testing.T) {
		for _, url := range []string{
			"https://github.com/acme",
			"git@github.com",
			"not a url at all",
		} {
			_, err := git.ParseGitHubRemoteURL(url)
			require.Error(t, err, "url %q", url)
		}
	})
}
