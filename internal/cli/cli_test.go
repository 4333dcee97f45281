package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{
		"validate", "resolve", "variants", "versions",
		"persist", "inspect", "discover",
	}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := newRootCommand()
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		name  string
		cmd   *cobra.Command
		flags []string
	}{
		{name: "resolve", cmd: newResolveCommand(), flags: []string{"record"}},
		{name: "variants", cmd: newVariantsCommand(), flags: []string{"type"}},
		{name: "versions", cmd: newVersionsCommand(), flags: []string{"type", "variant"}},
		{name: "persist", cmd: newPersistCommand(), flags: []string{"record", "operation", "dry-run"}},
		{name: "inspect", cmd: newInspectCommand(), flags: []string{"record", "table", "field"}},
		{name: "discover", cmd: newDiscoverCommand(), flags: []string{"output", "workers"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(name), "missing flag: %s", name)
			}
		})
	}
}

func TestPersistCommandDefaults(t *testing.T) {
	cmd := newPersistCommand()
	assert.Equal(t, "update", cmd.Flags().Lookup("operation").DefValue)
	assert.Equal(t, "false", cmd.Flags().Lookup("dry-run").DefValue)
}

func TestDiscoverCommandDefaults(t *testing.T) {
	cmd := newDiscoverCommand()
	assert.Equal(t, "discovery.yaml", cmd.Flags().Lookup("output").DefValue)
	assert.Equal(t, "4", cmd.Flags().Lookup("workers").DefValue)
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveStringPrefersChangedFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var value string
	cmd.Flags().StringVar(&value, "myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "from-flag"))
	assert.Equal(t, "from-flag", resolveString(cmd, value, "unset_test_key", "myflag"))
}

func TestResolveBool(t *testing.T) {
	got := resolveBool(nil, true, "test_key", "test-flag")
	assert.True(t, got)

	got = resolveBool(nil, false, "test_key", "test-flag")
	assert.False(t, got)
}

func TestResolveInt(t *testing.T) {
	got := resolveInt(nil, 42, "test_key", "test-flag")
	assert.Equal(t, 42, got)
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")
}

func TestFlagChangedAfterSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("dup"),
			expected: 2,
		},
		{
			name: "failed precondition",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("fallback template does not exist"),
			expected: 4,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("record file missing"),
			expected: 5,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// ---------- Execution ----------

func TestValidateCommandRunsAgainstConfigFile(t *testing.T) {
	dir := t.TempDir()
	fallback := filepath.Join(dir, "core", "Templates", "Default.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(fallback), 0o755))
	require.NoError(t, os.WriteFile(fallback, []byte("<div/>"), 0o644))

	configPath := filepath.Join(dir, "content-templates.yaml")
	config := fmt.Sprintf(`provider:
  source: core
  fallback_template: %q
settings:
  defaults:
    mode: configuration
    variant: core
sources:
  core: %q
`, fallback, filepath.Join(dir, "core"))
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	root := newRootCommand()
	root.SetArgs([]string{"validate", "--config", configPath, "--log-level", "error"})
	require.NoError(t, root.Execute())
}
