package testutil

import "testing"

// ConfigEnvVars are the MIDIR_<SECTION>_<KEY> variables read by the
// configuration loader.
var ConfigEnvVars = []string{
	"MIDIR_SEARCH_PATH_ENV",
	"MIDIR_ROOT_LEVELS",
	"MIDIR_ROOT_SUFFIX",
	"MIDIR_LSDIR_FULL_PATH",
	"MIDIR_LSDIR_FILES",
	"MIDIR_LSDIR_FOLDERS",
	"MIDIR_LSDIR_MATCH",
	"MIDIR_OUTPUT_FORMAT",
}

// Env describes the directories an isolated test runs against
type Env struct {
	StateHome string
	ConfigDir string
}

// IsolateEnv points the log file and the user configuration at fresh temp
// directories and blanks every midir variable, including MIDIR_PATH.
// Blank variables are ignored by the loader, so lower layers apply.
func IsolateEnv(t *testing.T) Env {
	t.Helper()

	env := Env{
		StateHome: t.TempDir(),
		ConfigDir: t.TempDir(),
	}
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("MIDIR_CONFIG_DIR", env.ConfigDir)
	t.Setenv("MIDIR_PATH", "")
	for _, name := range ConfigEnvVars {
		t.Setenv(name, "")
	}

	return env
}
