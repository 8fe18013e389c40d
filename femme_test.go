package femme

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/kvnallsn/femme/core"
)

// resetGlobal clears the installed logger between tests. Production
// code has no uninstall path; tests reach into the package state
// directly.
func resetGlobal() {
	globalMu.Lock()
	global = nil
	globalMu.Unlock()
}

func fixedClock(ms int64) core.Clock {
	return func() time.Time {
		return time.UnixMilli(ms)
	}
}

func TestBuilder_Finish(t *testing.T) {
	resetGlobal()

	var buf bytes.Buffer
	err := NDJSON().
		Level(InfoLevel).
		LevelFor("alpha", WarnLevel).
		Output(&buf).
		Clock(fixedClock(5)).
		Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	if Installed() == nil {
		t.Fatal("Installed() = nil after Finish()")
	}
}

func TestBuilder_DoubleInstallRejected(t *testing.T) {
	resetGlobal()

	var buf bytes.Buffer
	if err := NDJSON().Output(&buf).Clock(fixedClock(0)).Finish(); err != nil {
		t.Fatalf("First Finish() error = %v", err)
	}
	first := Installed()

	var other bytes.Buffer
	err := Pretty().Output(&other).Finish()
	if !errors.Is(err, ErrInstalled) {
		t.Fatalf("Second Finish() error = %v, want ErrInstalled", err)
	}

	// The first installation is never replaced
	if Installed() != first {
		t.Error("Second Finish() replaced the installed dispatcher")
	}

	Info("still here")
	if buf.Len() == 0 {
		t.Error("Expected output through the first dispatcher")
	}
	if other.Len() != 0 {
		t.Errorf("Rejected dispatcher received output: %q", other.String())
	}
}

func TestStart_PanicsWhenInstalled(t *testing.T) {
	resetGlobal()

	var buf bytes.Buffer
	if err := NDJSON().Output(&buf).Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Start() did not panic with a logger already installed")
		}
	}()
	Start()
}

func TestLogger_TargetFiltering(t *testing.T) {
	resetGlobal()

	var buf bytes.Buffer
	err := NDJSON().
		Level(InfoLevel).
		LevelFor("alpha", WarnLevel).
		Output(&buf).
		Clock(fixedClock(0)).
		Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	sub := Target("alpha::sub")
	sub.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("Expected alpha::sub info to be dropped, got %q", buf.String())
	}

	sub.Warn("kept")
	want := `{"level":40,"time":0,"msg":"kept"}` + "\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}

	buf.Reset()
	Target("beta").Info("default threshold")
	if buf.Len() == 0 {
		t.Error("Expected beta info through the default threshold")
	}
}

func TestLogger_Fields(t *testing.T) {
	resetGlobal()

	var buf bytes.Buffer
	if err := NDJSON().Output(&buf).Clock(fixedClock(3)).Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	Target("fs").Warn("disk full", String("path", "/tmp"), Int("used_pct", 97))

	want := `{"level":40,"time":3,"msg":"disk full","path":/tmp,"used_pct":97}` + "\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestLogger_Formatted(t *testing.T) {
	resetGlobal()

	var buf bytes.Buffer
	if err := NDJSON().Output(&buf).Clock(fixedClock(0)).Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	Infof("listening on port %d", 8080)

	want := `{"level":30,"time":0,"msg":"listening on port 8080"}` + "\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestLogger_BeforeInstall(t *testing.T) {
	resetGlobal()

	// Logging before installation is a no-op, not a panic
	Info("nobody listening")
	Target("app").Errorf("still %s", "nobody")

	if Target("app").Enabled(ErrorLevel) {
		t.Error("Enabled() = true with no logger installed")
	}
}

func TestLogger_Enabled(t *testing.T) {
	resetGlobal()

	var buf bytes.Buffer
	err := NDJSON().
		Level(WarnLevel).
		LevelFor("chatty", DebugLevel).
		Output(&buf).
		Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	log := Target("anything")
	// The ceiling is the most permissive of default and overrides
	if !log.Enabled(DebugLevel) {
		t.Error("Enabled(Debug) = false, want true via chatty override")
	}
	if log.Enabled(TraceLevel) {
		t.Error("Enabled(Trace) = true, want false")
	}
}

func TestBuilder_PrettyEndToEnd(t *testing.T) {
	resetGlobal()

	var buf bytes.Buffer
	if err := Pretty().Output(&buf).Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	Target("db").Error("connection lost")

	want := "\x1b[31m\x1b[1mdb\x1b[0m connection lost\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestBuilder_Separator(t *testing.T) {
	resetGlobal()

	var buf bytes.Buffer
	err := NDJSON().
		Level(InfoLevel).
		LevelFor("server", ErrorLevel).
		Separator("/").
		Output(&buf).
		Clock(fixedClock(0)).
		Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	Target("server/http").Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected server/http warn to be dropped, got %q", buf.String())
	}
}

func TestParseLevel_ReExport(t *testing.T) {
	if ParseLevel("error") != ErrorLevel {
		t.Error(`ParseLevel("error") != ErrorLevel`)
	}
}
