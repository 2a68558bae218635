package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goserg/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "single game",
			args: []string{"-k", "40", "-one", "1200", "-two", "1453", "-results", "win"},
			want: "(1232.4)\n",
		},
		{
			name: "rounded to integers",
			args: []string{"-k", "16", "-one", "1000", "-two", "2000", "-results", "w", "-precision", "0"},
			want: "player one: ",
		},
		{
			name: "sequence",
			args: []string{"-k", "16", "-one", "2600", "-two", "2300", "-results", "win,win,loss,loss,loss,loss,draw"},
			want: "(2352.1)\n",
		},
		{
			name:    "no results",
			args:    []string{"-k", "16"},
			wantErr: true,
		},
		{
			name:    "bad result",
			args:    []string{"-results", "win,forfeit"},
			wantErr: true,
		},
		{
			name:    "bad rating",
			args:    []string{"-one", "strong", "-results", "win"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-players", "3"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout.String(), tt.want)
		})
	}
}

func TestRunRoundedOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-k", "16", "-one", "1000", "-two", "2000", "-results", "win", "-precision", "0"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "(1016)\n")
	assert.Contains(t, stdout.String(), "(1984)\n")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rating.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[calculation]
k_factor = "16"
player_one = "2600"
player_two = "2300"
results = ["win", "win", "loss"]

[output]
precision = 1
debug_mode = true
`), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", path}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "(2591.1)\n")
	assert.Contains(t, stdout.String(), "(2308.9)\n")
	assert.Contains(t, stderr.String(), "game applied")

	stdout.Reset()
	err = run([]string{"-config", path, "-results", "win"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "(2602.4)\n")
}

func TestLoggingCalculator(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-results", "d,d", "-debug"}, &stdout, &stderr))
	assert.Equal(t, 2, bytes.Count(stderr.Bytes(), []byte("game applied")))
	assert.Contains(t, stdout.String(), "player one: 1000 (1000.0)\n")
}

func TestParseResults(t *testing.T) {
	got, err := parseResults("win, loss,,draw ")
	require.NoError(t, err)
	assert.Equal(t, []rating.GameResult{rating.Win, rating.Loss, rating.Draw}, got)
}
