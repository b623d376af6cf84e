package bitrate

import "testing"

func TestParseKbps(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    int
		wantErr bool
	}{
		{name: "kilobits", token: "192k", want: 192},
		{name: "upper K", token: "256K", want: 256},
		{name: "megabits", token: "2M", want: 2000},
		{name: "fractional megabits", token: "1.5M", want: 1500},
		{name: "plain bits", token: "128000", want: 128},
		{name: "surrounding space", token: " 128k ", want: 128},
		{name: "empty", token: "", wantErr: true},
		{name: "garbage", token: "fast", wantErr: true},
		{name: "zero", token: "0k", wantErr: true},
		{name: "negative", token: "-96k", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKbps(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKbps(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKbps(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    int
		min  int
		max  int
		want int
	}{
		{name: "value in range", v: 50, min: 0, max: 100, want: 50},
		{name: "value below min", v: -10, min: 0, max: 100, want: 0},
		{name: "value above max", v: 150, min: 0, max: 100, want: 100},
		{name: "value equals max", v: 100, min: 0, max: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.v, tt.min, tt.max)
			if got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestSaneAudioKbps(t *testing.T) {
	tests := []struct {
		v    int
		want bool
	}{
		{v: 16, want: false},
		{v: 32, want: true},
		{v: 192, want: true},
		{v: 512, want: true},
		{v: 2000, want: false},
	}
	for _, tt := range tests {
		if got := SaneAudioKbps(tt.v); got != tt.want {
			t.Errorf("SaneAudioKbps(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
