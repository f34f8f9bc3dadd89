package loglevels

import "testing"

func TestLogLevel_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		msgLevel LogLevel
		want     bool
	}{
		{"same level", INFO, INFO, true},
		{"higher message level", INFO, ERROR, true},
		{"lower message level", INFO, DEBUG, false},
		{"trace logger passes everything", TRACE, TRACE, true},
		{"error logger drops warnings", ERROR, WARN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.Enabled(tt.msgLevel); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLogLevel_Prefix(t *testing.T) {
	if WARN.Prefix() != " [WARN] " {
		t.Errorf("unexpected prefix %q", WARN.Prefix())
	}
	if LogLevel(42).String() != "UNKNOWN" {
		t.Errorf("unexpected name %q", LogLevel(42).String())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		want   LogLevel
		wantOk bool
	}{
		{"trace", TRACE, true},
		{" Debug ", DEBUG, true},
		{"INFO", INFO, true},
		{"warning", WARN, true},
		{"error", ERROR, true},
		{"fatal", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.name)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("expected (%s, %v), got (%s, %v)", tt.want, tt.wantOk, got, ok)
			}
		})
	}
}
