package core

import "testing"

func TestFormatKWh(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{120, "120 kWh"},
		{80, "80 kWh"},
		{0, "0 kWh"},
		{12.5, "12.5 kWh"},
	}
	for _, tt := range tests {
		if got := FormatKWh(tt.in); got != tt.want {
			t.Errorf("FormatKWh(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatReais(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{450.5, "R$ 450.50"},
		{120.25, "R$ 120.25"},
		{0, "R$ 0.00"},
		{1234.567, "R$ 1234.57"},
	}
	for _, tt := range tests {
		if got := FormatReais(tt.in); got != tt.want {
			t.Errorf("FormatReais(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDownloadFilename(t *testing.T) {
	if got := DownloadFilename("123", "JAN/2024"); got != "fatura_123_JAN/2024.pdf" {
		t.Errorf("DownloadFilename = %q", got)
	}
}
