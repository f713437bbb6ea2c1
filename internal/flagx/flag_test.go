package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.yaml", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.yaml"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash-starting token is not a value",
			args:         []string{"-k", "-f", "tasks.db"},
			allowedFlags: []string{"-k", "-f"},
			want:         []string{"-k", "-f", "tasks.db"},
		},
		{
			name:         "multiple allowed flags keep order",
			args:         []string{"-a", ":8080", "-c", "conf.json", "--other", "x", "-r", ":50051"},
			allowedFlags: []string{"-a", "-r"},
			want:         []string{"-a", ":8080", "-r", ":50051"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "", ConfigFile([]string{"-a", ":8080"}))
	assert.Equal(t, "short.json", ConfigFile([]string{"-a", ":8080", "-c", "short.json"}))
	assert.Equal(t, "long.yaml", ConfigFile([]string{"-config=long.yaml"}))
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("/etc/taskboard/server.yaml"))
	assert.Equal(t, FormatYAML, FormatOf("cli.YML"))
	assert.Equal(t, FormatJSON, FormatOf("server.json"))
	assert.Equal(t, FormatJSON, FormatOf("noext"))
}
