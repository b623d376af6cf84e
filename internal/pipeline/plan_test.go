package pipeline

import (
	"testing"

	"recode/internal/model"
)

func TestScaleFilter(t *testing.T) {
	tests := []struct {
		token  string
		want   string
		wantOk bool
	}{
		{token: "1080p", want: "-1:1080", wantOk: true},
		{token: "720p", want: "-1:720", wantOk: true},
		{token: "", want: "", wantOk: false},
		{token: "480p", want: "", wantOk: false},
		{token: "1080P", want: "", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ScaleFilter(tt.token)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("ScaleFilter(%q) = %q, %v; want %q, %v", tt.token, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		opts       model.CLIOptions
		wantCodec  model.Codec
		wantFilter string
		wantSuffix string
		wantABR    string
	}{
		{
			name:       "bitrate and 1080p",
			opts:       model.CLIOptions{Scale: "1080p", AudioBitrate: "128k", Codec: "amf"},
			wantCodec:  model.CodecAMF,
			wantFilter: "-1:1080",
			wantSuffix: "_128k_1080p",
			wantABR:    "128k",
		},
		{
			name:       "no scale",
			opts:       model.CLIOptions{AudioBitrate: "192k", Codec: "libx264"},
			wantCodec:  model.CodecLibx264,
			wantSuffix: "_192k",
			wantABR:    "192k",
		},
		{
			name:       "unknown scale ignored for name and filter",
			opts:       model.CLIOptions{Scale: "4k", AudioBitrate: "256k", Codec: "libx265"},
			wantCodec:  model.CodecLibx265,
			wantSuffix: "_256k",
			wantABR:    "256k",
		},
		{
			name:       "surround ignores bitrate and scale in suffix",
			opts:       model.CLIOptions{Scale: "720p", AudioBitrate: "256k", Surround: true, Codec: "AMF"},
			wantCodec:  model.CodecAMF,
			wantFilter: "-1:720",
			wantSuffix: "AAC2.1",
			wantABR:    "256k",
		},
		{
			name:       "unknown codec falls back to libx265",
			opts:       model.CLIOptions{AudioBitrate: "192k", Codec: "vp9"},
			wantCodec:  model.CodecLibx265,
			wantSuffix: "_192k",
			wantABR:    "192k",
		},
		{
			name:       "defaults",
			opts:       model.CLIOptions{},
			wantCodec:  model.CodecAMF,
			wantSuffix: "_192k",
			wantABR:    "192k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Normalize(tt.opts)
			if s.Codec != tt.wantCodec {
				t.Errorf("Codec = %q, want %q", s.Codec, tt.wantCodec)
			}
			if s.ScaleFilter != tt.wantFilter {
				t.Errorf("ScaleFilter = %q, want %q", s.ScaleFilter, tt.wantFilter)
			}
			if s.Suffix != tt.wantSuffix {
				t.Errorf("Suffix = %q, want %q", s.Suffix, tt.wantSuffix)
			}
			if s.AudioBitrate != tt.wantABR {
				t.Errorf("AudioBitrate = %q, want %q", s.AudioBitrate, tt.wantABR)
			}
		})
	}
}

func TestNormalize_PassesFlags(t *testing.T) {
	s := Normalize(model.CLIOptions{ForceOverwrite: true, DeleteInput: true})
	if !s.ForceOverwrite || !s.DeleteInput || s.Surround {
		t.Errorf("flags not carried: %+v", s)
	}
}
