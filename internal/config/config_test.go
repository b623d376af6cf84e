package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("recode", pflag.ContinueOnError)
	fs.String(KeyCodec, "amf", "")
	fs.String(KeyAbr, "192k", "")
	fs.Bool(KeyDelete, false, "")
	fs.Bool(KeyNoOverwrite, false, "")
	fs.Bool(KeyNoLock, false, "")
	return fs
}

func TestWriteSample_ThenInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")
	if err := WriteSample(path, false); err != nil {
		t.Fatalf("WriteSample() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`codec = 'amf'`, `abr = '192k'`, `lock = true`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("sample missing %q:\n%s", want, data)
		}
	}

	if err := WriteSample(path, false); err == nil {
		t.Error("WriteSample() should refuse to overwrite without force")
	}
	if err := WriteSample(path, true); err != nil {
		t.Errorf("WriteSample(force) error: %v", err)
	}

	v, err := Init(testFlags(), path)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	opts := Options(v)
	if opts.Codec != "amf" || opts.AudioBitrate != "192k" || !opts.Lock || !opts.ForceOverwrite {
		t.Errorf("Options() = %+v", opts)
	}
}

func TestInit_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "codec = 'libx264'\nabr = '128k'\ndelete = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RECODE_ABR", "160k")

	fs := testFlags()
	if err := fs.Parse([]string{"--codec", "libx265", "--no-lock"}); err != nil {
		t.Fatal(err)
	}
	v, err := Init(fs, path)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	opts := Options(v)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"flag beats file", opts.Codec, "libx265"},
		{"env beats file", opts.AudioBitrate, "160k"},
		{"file beats default", opts.DeleteInput, true},
		{"no-lock flag", opts.Lock, false},
		{"default log file", opts.LogFile, "recode.log"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestInit_MissingExplicitFile(t *testing.T) {
	if _, err := Init(testFlags(), filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Init() with missing explicit config should fail")
	}
}

func TestInit_NoConfigFileIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	v, err := Init(testFlags(), "")
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if got := Options(v).Codec; got != "amf" {
		t.Errorf("Codec = %q, want amf", got)
	}
}
