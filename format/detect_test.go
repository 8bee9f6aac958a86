package format

import "testing"

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{PostScript, "PostScript"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, ".pdf"},
		{PostScript, ".ps"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"plot.pdf", PDF},
		{"plot.PDF", PDF},
		{"plot.Pdf", PDF},
		{"plot.ps", PostScript},
		{"plot.PS", PostScript},
		{"plot.eps", PostScript},
		{"plot.EPS", PostScript},
		{"plot.epsf", PostScript},
		{"plot.txt", Unknown},
		{"plot", Unknown},
		{"", Unknown},
		{"/path/to/figure3.pdf", PDF},
		{"/path/to/figure3.eps", PostScript},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"PDF header", []byte("%PDF-1.4"), PDF},
		{"PDF minimal", []byte("%PDF"), PDF},
		{"PostScript header", []byte("%!PS-Adobe-3.0"), PostScript},
		{"EPS header", []byte("%!PS-Adobe-3.0 EPSF-3.0"), PostScript},
		{"empty", []byte{}, Unknown},
		{"short", []byte("%P"), Unknown},
		{"plain text", []byte("10 10 m 20 20 l S"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}
