package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Output
	Output = &buf
	t.Cleanup(func() { Output = old })
	return &buf
}

func TestLogLevels(t *testing.T) {
	buf := captureLog(t)
	LogGoodf("loaded %d cells", 3)
	LogWarn("slow", "request")
	LogBadf("bad %s", "line")
	LogDebugf("x=%d", 1)

	out := buf.String()
	for _, want := range []string{"[ INFO] loaded 3 cells", "[ WARN] slow request", "[  ERR] bad line", "[DEBUG] x=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestLogIfError(t *testing.T) {
	buf := captureLog(t)
	if err := LogIfError(nil); err != nil || buf.Len() != 0 {
		t.Errorf("LogIfError(nil) = %v, wrote %q", err, buf.String())
	}
	err := errors.Wrap(errors.New("boom"), "loading")
	if got := LogIfError(err); got != err {
		t.Errorf("LogIfError returned %v, want %v", got, err)
	}
	for _, want := range []string{"boom", "loading"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output %q does not contain %q", buf.String(), want)
		}
	}
}
