package vector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple operators",
			text: "10 10 m 10 50 l S",
			want: []string{"10", "10", "m", "10", "50", "l", "S"},
		},
		{
			name: "multiple lines",
			text: "10 10 m\n10 50 l\nS\n",
			want: []string{"10", "10", "m", "10", "50", "l", "S"},
		},
		{
			name: "comment stripped to end of line",
			text: "10 10 m % pen down here\n10 50 l",
			want: []string{"10", "10", "m", "10", "50", "l"},
		},
		{
			name: "full-line DSC comment",
			text: "%!PS-Adobe-3.0\n%%BoundingBox: 0 0 612 792\n10 10 moveto",
			want: []string{"10", "10", "moveto"},
		},
		{
			name: "mixed whitespace",
			text: "  10\t10  m \t 20 20 l ",
			want: []string{"10", "10", "m", "20", "20", "l"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "only comments",
			text: "% nothing here\n%% or here",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
