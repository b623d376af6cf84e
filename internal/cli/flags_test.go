package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("recode", pflag.ContinueOnError)
	fs.SetNormalizeFunc(NormalizeFlagName)
	BindRunFlags(fs)
	BindGlobalFlags(fs)
	BindExecFlags(fs)
	return fs
}

func TestFlags_Aliases(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want string
	}{
		{"legacy target", []string{"--t", "/out"}, "target", "/out"},
		{"short target", []string{"-t", "/out"}, "target", "/out"},
		{"legacy codec", []string{"--c", "libx264"}, "codec", "libx264"},
		{"legacy delete", []string{"--d"}, "delete", "true"},
		{"legacy surround", []string{"--51"}, "surround", "true"},
		{"underscore", []string{"--no_overwrite"}, "no-overwrite", "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFlagSet()
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.args, err)
			}
			f := fs.Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag %q not registered", tt.flag)
			}
			if got := f.Value.String(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}

func TestFlags_Defaults(t *testing.T) {
	fs := newFlagSet()
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"abr":          "192k",
		"codec":        "amf",
		"log-file":     "recode.log",
		"no-overwrite": "false",
		"scale":        "",
	}
	for name, v := range want {
		if got := fs.Lookup(name).Value.String(); got != v {
			t.Errorf("default %s = %q, want %q", name, got, v)
		}
	}
}
