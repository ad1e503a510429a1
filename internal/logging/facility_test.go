package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type streams struct {
	out bytes.Buffer
	err bytes.Buffer
}

func newTestFacility(t *testing.T, dir string, mirror bool) (*Facility, *streams) {
	t.Helper()
	s := &streams{}
	f := New(Config{
		Dir:           dir,
		PrintToStdout: mirror,
		Stdout:        &s.out,
		Stderr:        &s.err,
	})
	f.now = func() time.Time { return time.Date(2026, 10, 19, 12, 30, 5, 0, time.Local) }
	t.Cleanup(func() { _ = f.Close() })
	return f, s
}

func readLog(t *testing.T, f *Facility) string {
	t.Helper()
	content, err := os.ReadFile(f.FilePath())
	require.NoError(t, err)
	return string(content)
}

func TestInit_WritesBootstrapRecords(t *testing.T) {
	dir := t.TempDir()
	f, _ := newTestFacility(t, dir, false)

	require.NoError(t, f.Init())

	assert.True(t, f.Enabled())
	assert.Equal(t, filepath.Join(dir, DefaultFileName), f.FilePath())
	assert.Equal(t, "[ i ] Main logger initialized.\n[ i ] 2026/10/19 12:30:05\n", readLog(t, f))
}

func TestInit_RemovesOldLogs(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"runtime.log":                         "old run",
		"runtime-2026-10-18T10-00-00.000.log": "older run",
		"settings.json":                       "{}",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	f, _ := newTestFacility(t, dir, false)
	require.NoError(t, f.Init())

	assert.NotContains(t, readLog(t, f), "old run")
	assert.NoFileExists(t, filepath.Join(dir, "runtime-2026-10-18T10-00-00.000.log"))
	assert.FileExists(t, filepath.Join(dir, "settings.json"))
}

func TestInit_FailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	notADir := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0644))

	f, s := newTestFacility(t, notADir, true)

	err := f.Init()
	require.Error(t, err)
	assert.False(t, f.Enabled(), "failed init must not enable logging")
	assert.Empty(t, f.FilePath())
	assert.Empty(t, s.out.String())
}

func TestInit_FailedReinitKeepsSink(t *testing.T) {
	dir := t.TempDir()
	f, _ := newTestFacility(t, dir, false)
	require.NoError(t, f.Init())
	path := f.FilePath()

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	f.cfg.Dir = filepath.Join(blocker, "logs")

	require.Error(t, f.Init())
	assert.Equal(t, path, f.FilePath())

	f.Info("still logging")
	assert.Contains(t, readLog(t, f), "[ i ] still logging\n")
}

func TestInit_ReinitReplacesSink(t *testing.T) {
	dir := t.TempDir()
	f, _ := newTestFacility(t, dir, false)
	require.NoError(t, f.Init())
	f.Info("first run")

	require.NoError(t, f.Init())
	f.Info("second run")

	log := readLog(t, f)
	assert.NotContains(t, log, "first run")
	assert.Contains(t, log, "[ i ] second run\n")
}

func TestInit_MissingDirectory(t *testing.T) {
	f := New(Config{Enabled: true, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	err := f.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
	assert.True(t, f.Enabled(), "enabled flag keeps its configured value")
}

func TestDisabled_WritesNothing(t *testing.T) {
	f, s := newTestFacility(t, t.TempDir(), true)
	require.NoError(t, f.Init())
	before := readLog(t, f)
	s.out.Reset()
	s.err.Reset()

	f.Enable(false)
	f.Finest("finest")
	f.Finer("finer")
	f.Fine("fine")
	f.Info("info")
	f.Warning("warning")
	f.Severe("severe")
	f.SevereError("severe", errors.New("bad"))
	f.SevereHeader("severe", errors.New("bad"))
	f.Error(errors.New("bad"))

	assert.Equal(t, before, readLog(t, f))
	assert.Empty(t, s.out.String())
	assert.Empty(t, s.err.String())
}

func TestMirroring_RoutesBySeverity(t *testing.T) {
	f, s := newTestFacility(t, t.TempDir(), true)
	require.NoError(t, f.Init())
	s.out.Reset()

	f.Info("hello")
	f.Fine("fine")
	f.Warning("careful")
	f.SevereError("boom", errors.New("bad"))

	assert.Equal(t, "[ i ] hello\n[ # ] fine\n", s.out.String())
	assert.True(t, strings.HasPrefix(s.err.String(), "[!W!] careful\n[!E!] boom\n"))
	assert.NotContains(t, s.out.String(), "boom")
}

func TestMirroring_Off(t *testing.T) {
	f, s := newTestFacility(t, t.TempDir(), false)
	require.NoError(t, f.Init())

	f.Info("hello")
	f.Severe("boom")

	assert.Empty(t, s.out.String())
	assert.Empty(t, s.err.String())
	assert.Contains(t, readLog(t, f), "[ i ] hello\n[!E!] boom\n")

	f.SetPrintToStdout(true)
	assert.True(t, f.PrintsToStdout())
	f.Info("again")
	assert.Equal(t, "[ i ] again\n", s.out.String())
}

func TestSevereError_AttachesSourceAndTrace(t *testing.T) {
	f, s := newTestFacility(t, t.TempDir(), true)
	require.NoError(t, f.Init())

	f.SevereError("Error running command.", errors.New("exec failed"))

	out := s.err.String()
	assert.True(t, strings.HasPrefix(out, "[!E!] Error running command.\nat logging.TestSevereError_AttachesSourceAndTrace\nexec failed\n"), out)
	// pkg/errors records a stack, rendered with %+v
	assert.Contains(t, out, "facility_test.go")
	assert.True(t, strings.HasSuffix(out, "\n\n"))
	assert.Contains(t, readLog(t, f), "at logging.TestSevereError_AttachesSourceAndTrace\n")
}

func TestSevereHeader_MessageOnly(t *testing.T) {
	f, s := newTestFacility(t, t.TempDir(), true)
	require.NoError(t, f.Init())

	f.SevereHeader("Error using desktop open.", errors.New("no handler"))

	assert.Equal(t, "[!E!] Error using desktop open.\n[!E!] no handler\n", s.err.String())
}

func TestError_Bare(t *testing.T) {
	f, s := newTestFacility(t, t.TempDir(), true)
	require.NoError(t, f.Init())

	f.Error(errors.New("disk full"))

	assert.True(t, strings.HasPrefix(s.err.String(), "[!E!] disk full\nat logging.TestError_Bare\ndisk full\n"), s.err.String())
}

func TestLeadingNewline_ThroughPipeline(t *testing.T) {
	f, s := newTestFacility(t, t.TempDir(), true)
	require.NoError(t, f.Init())
	s.out.Reset()

	f.Info("\nHello")
	f.Info("\n")

	assert.Equal(t, "\n[ i ] Hello\n\n", s.out.String())
}

func TestBeforeInit_MirrorOnly(t *testing.T) {
	s := &streams{}
	f := New(Config{Enabled: true, PrintToStdout: true, Stdout: &s.out, Stderr: &s.err})

	f.Info("early")

	assert.Equal(t, "[ i ] early\n", s.out.String())
	assert.Empty(t, f.FilePath())
}
