package keywords

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "dedup case-insensitive keeps first-seen casing",
			in:   []string{"Cat", "cat", " dog "},
			want: []string{"Cat", "dog"},
		},
		{
			name: "drops empty and whitespace-only entries",
			in:   []string{"", "  ", "sunset", ""},
			want: []string{"sunset"},
		},
		{
			name: "preserves order",
			in:   []string{"beach", "ocean", "sand", "Ocean"},
			want: []string{"beach", "ocean", "sand"},
		},
		{
			name: "nil input",
			in:   nil,
			want: nil,
		},
		{
			name: "all empty input",
			in:   []string{" ", ""},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	got := Merge([]string{"cat", "pet"}, []string{"Animals/Wildlife", "pet"})
	want := []string{"cat", "pet", "Animals/Wildlife"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestSplit(t *testing.T) {
	got := Split("cat, feline , pet,cat,")
	want := []string{"cat", "feline", "pet"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

func TestRefineCaption(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "trims and capitalizes",
			in:   "  a cat sitting on a window sill ",
			want: "A cat sitting on a window sill",
		},
		{
			name: "already capitalized",
			in:   "Close-up portrait of a cat",
			want: "Close-up portrait of a cat",
		},
		{
			name: "empty",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RefineCaption(tt.in); got != tt.want {
				t.Errorf("RefineCaption(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRefineCaptionTruncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := RefineCaption(long)

	if len([]rune(got)) != 150 {
		t.Errorf("refined caption length = %d, want 150", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("refined caption %q does not end with ellipsis", got)
	}
}

func TestRefineCaptionExactLimit(t *testing.T) {
	exact := strings.Repeat("b", 150)
	got := RefineCaption(exact)
	if len([]rune(got)) != 150 || strings.HasSuffix(got, "...") {
		t.Errorf("caption at the limit should be untouched, got %q", got)
	}
}
