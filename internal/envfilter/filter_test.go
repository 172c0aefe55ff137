package envfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	environ := []string{
		"PATH=/usr/bin",
		"HOME=/home/me",
		"SHELL=/bin/zsh",
		"NLTERM_CONFIG=/etc/nlterm.yaml",
		"AWS_SECRET_ACCESS_KEY=s3cr3t",
		"AWS_REGION=eu-west-1",
		"GITHUB_TOKEN=ghp",
		"EDITOR=vi",
		"LONELY",
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "no deny_env keeps everything",
			patterns: nil,
			want:     environ,
		},
		{
			name:     "prefix and suffix globs",
			patterns: []string{"AWS_*", "*_TOKEN"},
			want: []string{
				"PATH=/usr/bin", "HOME=/home/me", "SHELL=/bin/zsh",
				"NLTERM_CONFIG=/etc/nlterm.yaml", "EDITOR=vi", "LONELY",
			},
		},
		{
			name:     "star keeps the exempt variables only",
			patterns: []string{"*"},
			want: []string{
				"PATH=/usr/bin", "HOME=/home/me", "SHELL=/bin/zsh",
				"NLTERM_CONFIG=/etc/nlterm.yaml",
			},
		},
		{
			name:     "naming an exempt variable has no effect",
			patterns: []string{"PATH", "HOME"},
			want:     environ,
		},
		{
			name:     "entry without a value matches on its whole text",
			patterns: []string{"LONELY"},
			want:     environ[:len(environ)-1],
		},
		{
			name:     "malformed pattern matches nothing",
			patterns: []string{"[AWS", "EDITOR"},
			want: []string{
				"PATH=/usr/bin", "HOME=/home/me", "SHELL=/bin/zsh",
				"NLTERM_CONFIG=/etc/nlterm.yaml", "AWS_SECRET_ACCESS_KEY=s3cr3t",
				"AWS_REGION=eu-west-1", "GITHUB_TOKEN=ghp", "LONELY",
			},
		},
		{
			name:     "globs are case-sensitive",
			patterns: []string{"aws_*"},
			want:     environ,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(environ, tt.patterns))
		})
	}
}

func TestFilter_ExemptIgnoresCase(t *testing.T) {
	got := Filter([]string{"Path=C:\\Windows", "Temp=C:\\Temp"}, []string{"*"})
	assert.Equal(t, []string{"Path=C:\\Windows"}, got)
}
