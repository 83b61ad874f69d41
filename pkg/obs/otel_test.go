package obs

import (
	"os"
	"testing"
)

func TestServiceVersionNeverEmpty(t *testing.T) {
	if v := serviceVersion(); v == "" {
		t.Error("serviceVersion returned an empty string")
	}
}

func TestGetenvFallback(t *testing.T) {
	const key = "OBS_TEST_UNSET_KEY"
	os.Unsetenv(key)
	if got := getenv(key, "fallback"); got != "fallback" {
		t.Errorf("unset key = %q, want fallback", got)
	}
	t.Setenv(key, "explicit")
	if got := getenv(key, "fallback"); got != "explicit" {
		t.Errorf("set key = %q, want explicit", got)
	}
}
