package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-u", "https://example.test", "-l", "debug"},
			allowed: []string{"-u"},
			want:    []string{"-u", "https://example.test"},
		},
		{
			name:    "equals form",
			args:    []string{"-store=redis", "-l", "debug"},
			allowed: []string{"-store"},
			want:    []string{"-store=redis"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next flag is not consumed as value",
			args:    []string{"-c", "-e", ".env"},
			allowed: []string{"-c", "-e"},
			want:    []string{"-c", "-e", ".env"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConfigFileFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want ConfigFiles
	}{
		{name: "none", args: []string{"-u", "x"}, want: ConfigFiles{}},
		{name: "short json", args: []string{"-c", "a.json"}, want: ConfigFiles{JSON: "a.json"}},
		{name: "long both", args: []string{"-config=b.json", "-env", "dev.env"}, want: ConfigFiles{JSON: "b.json", Env: "dev.env"}},
		{name: "short env among others", args: []string{"-l", "debug", "-e", ".env"}, want: ConfigFiles{Env: ".env"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseConfigFileFlags(tt.args))
		})
	}
}

func TestConfigFileFlags_ReadsOSArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"cli", "-c", "cfg.json"}
	assert.Equal(t, ConfigFiles{JSON: "cfg.json"}, ConfigFileFlags())
}
