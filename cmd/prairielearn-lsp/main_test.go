package main

import (
	"bytes"
	contextpkg "context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/op/go-logging"
	"github.com/spf13/afero"
	"github.com/tliron/kutil/terminal"

	"github.com/PrairieLearn/vscode-prairielearn/course"
	"github.com/PrairieLearn/vscode-prairielearn/links"
)

const assessment = "/course/courseInstances/Sp21/assessments/hw1/infoAssessment.json"

func memCourse(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/course/infoCourse.json": "{}",
		assessment:                "{\n  \"zones\": [{\"questions\": [{\"id\": \"addNumbers\"}]}]\n}",
	}
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return fs
}

func TestConfigDefaults(t *testing.T) {
	v := newConfig()
	got := map[string]string{
		keyLogLevel:       v.GetString(keyLogLevel),
		keyServeTransport: v.GetString(keyServeTransport),
		keyServeAddress:   v.GetString(keyServeAddress),
	}
	want := map[string]string{
		keyLogLevel:       "info",
		keyServeTransport: "stdio",
		keyServeAddress:   "127.0.0.1:4389",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigEnvironment(t *testing.T) {
	t.Setenv("PRAIRIELEARN_LSP_SERVE_TRANSPORT", "tcp")
	t.Setenv("PRAIRIELEARN_LSP_LOG_LEVEL", "debug")

	v := newConfig()
	if got := v.GetString(keyServeTransport); got != "tcp" {
		t.Fatalf("unexpected transport %q", got)
	}
	if got := v.GetString(keyLogLevel); got != "debug" {
		t.Fatalf("unexpected log level %q", got)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prairielearn-lsp.yaml")
	if err := os.WriteFile(path, []byte("serve:\n  address: 0.0.0.0:9000\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	previous := config
	config = newConfig()
	t.Cleanup(func() { config = previous })

	if err := loadConfig(path); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got := config.GetString(keyServeAddress); got != "0.0.0.0:9000" {
		t.Fatalf("unexpected address %q", got)
	}
	if got := config.GetString(keyServeTransport); got != "stdio" {
		t.Fatalf("default lost after load: %q", got)
	}
}

func TestLoadJsonnetConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prairielearn-lsp.jsonnet")
	source := `local port = 4000 + 389;
{
  log: { level: 'debug' },
  serve: { transport: 'tcp', address: '127.0.0.1:%d' % port },
}
`
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	previous := config
	config = newConfig()
	t.Cleanup(func() { config = previous })

	if err := loadConfig(path); err != nil {
		t.Fatalf("load config: %v", err)
	}
	got := map[string]string{
		keyLogLevel:       config.GetString(keyLogLevel),
		keyServeTransport: config.GetString(keyServeTransport),
		keyServeAddress:   config.GetString(keyServeAddress),
	}
	want := map[string]string{
		keyLogLevel:       "debug",
		keyServeTransport: "tcp",
		keyServeAddress:   "127.0.0.1:4389",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJsonnetConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jsonnet")
	if err := os.WriteFile(path, []byte("{ a: }"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	previous := config
	config = newConfig()
	t.Cleanup(func() { config = previous })

	if err := loadConfig(path); err == nil {
		t.Fatalf("expected an evaluation error")
	}
}

func TestCommonlogVerbosity(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  int
	}{
		{logging.CRITICAL, -3},
		{logging.ERROR, -2},
		{logging.WARNING, -1},
		{logging.NOTICE, 0},
		{logging.INFO, 1},
		{logging.DEBUG, 2},
	}
	for _, test := range tests {
		if got := commonlogVerbosity(test.level); got != test.want {
			t.Errorf("%s: got %d, want %d", test.level, got, test.want)
		}
	}
}

func TestReadDocumentAndWriteLinks(t *testing.T) {
	provider := links.NewProvider(course.NewLocator(memCourse(t)))

	document, err := readDocument(provider.Locator().Fs(), assessment, "/course")
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	if document.Boundary != "/course" {
		t.Fatalf("unexpected boundary %q", document.Boundary)
	}

	var buffer bytes.Buffer
	result := provider.DocumentLinks(contextpkg.Background(), document)
	if err := writeLinks(&buffer, terminal.NewStylist(false), document.Path, result); err != nil {
		t.Fatalf("write links: %v", err)
	}
	want := assessment + ":2:36  addNumbers  /course/questions/addNumbers/question.html\n"
	if diff := cmp.Diff(want, buffer.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteLinksStatus(t *testing.T) {
	var buffer bytes.Buffer
	result := links.Result{Status: links.StatusNoCourse}
	if err := writeLinks(&buffer, terminal.NewStylist(false), "/x/infoAssessment.json", result); err != nil {
		t.Fatalf("write links: %v", err)
	}
	if got := buffer.String(); got != "/x/infoAssessment.json: no course root\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestReadDocumentMissingFile(t *testing.T) {
	if _, err := readDocument(afero.NewMemMapFs(), "/nowhere/infoAssessment.json", ""); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestFindRoot(t *testing.T) {
	locator := course.NewLocator(memCourse(t))

	tests := []struct {
		name string
		path string
	}{
		{"file", assessment},
		{"directory", filepath.Dir(assessment)},
		{"root itself", "/course"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			root, err := findRoot(contextpkg.Background(), locator, test.path, "")
			if err != nil {
				t.Fatalf("find root: %v", err)
			}
			if root != "/course" {
				t.Fatalf("unexpected root %q", root)
			}
		})
	}

	if _, err := findRoot(contextpkg.Background(), locator, assessment, "/course/courseInstances"); err == nil {
		t.Fatalf("expected no root below the workspace boundary")
	}
}

func TestBoundaryDir(t *testing.T) {
	got, err := boundaryDir("/course/a/infoAssessment.json", "")
	if err != nil {
		t.Fatalf("boundary: %v", err)
	}
	if got != string(filepath.Separator) {
		t.Fatalf("unexpected default boundary %q", got)
	}
}
