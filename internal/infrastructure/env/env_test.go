package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnv_Defaults(t *testing.T) {
	e := NewMapEnv(map[string]string{
		"NAME":    "value",
		"EMPTY":   "",
		"COUNT":   "42",
		"BAD_INT": "many",
		"FLAG":    "true",
	})

	assert.Equal(t, "value", e.Get("NAME"))
	assert.Equal(t, "", e.Get("MISSING"))
	assert.Equal(t, "fallback", e.GetWithDefault("EMPTY", "fallback"))
	assert.Equal(t, "value", e.GetWithDefault("NAME", "fallback"))
	assert.Equal(t, 42, e.GetInt("COUNT", 1))
	assert.Equal(t, 7, e.GetInt("BAD_INT", 7))
	assert.True(t, e.GetBool("FLAG", false))
	assert.False(t, e.GetBool("MISSING", false))
}

func TestNewEnvService_ReadsProcessEnv(t *testing.T) {
	t.Setenv("JOB_AGENT_TEST_KEY", "from-process")
	chdir(t, t.TempDir())

	e := NewEnvService()
	assert.Equal(t, "from-process", e.Get("JOB_AGENT_TEST_KEY"))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
