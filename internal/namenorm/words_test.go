package namenorm

import (
	"reflect"
	"strings"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "punctuation becomes spaces",
			text: "Foo-Bar (2nd Ed.)",
			want: []string{"foo", "bar", "2nd", "ed"},
		},
		{
			name: "apostrophes removed not spaced",
			text: "Schitt's Creek",
			want: []string{"schitts", "creek"},
		},
		{
			name: "initials merge",
			text: "J. R. R. Tolkien",
			want: []string{"j.r.r", "tolkien"},
		},
		{
			name: "single letter stays bare",
			text: "X Files",
			want: []string{"x", "files"},
		},
		{
			name: "single digits do not merge",
			text: "Book 2 Extra",
			want: []string{"book", "2", "extra"},
		},
		{
			name: "hash survives",
			text: "Spawn #220",
			want: []string{"spawn", "#220"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordsStableUnderRejoin(t *testing.T) {
	inputs := []string{
		"J. R. R. Tolkien's Return of the King",
		"The Hitch-Hiker's Guide (Deluxe)",
		"Spawn #220!",
		"Foo-Bar (2nd Ed.)",
	}
	for _, text := range inputs {
		once := Words(text)
		twice := Words(strings.Join(once, " "))
		if !reflect.DeepEqual(twice, once) {
			t.Errorf("Words(%q) unstable: %v then %v", text, once, twice)
		}
	}
}

func TestTitleWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "stops at trailing number",
			text: "Private Eye Issue 1602",
			want: []string{"private", "eye"},
		},
		{
			name: "skips leading number",
			text: "0063 MyZine",
			want: []string{"myzine"},
		},
		{
			name: "version token kept",
			text: "Cyberpunk v2 Sourcebook",
			want: []string{"cyberpunk", "v2", "sourcebook"},
		},
		{
			name: "volume words skipped",
			text: "Saga Volume3",
			want: []string{"saga"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleWords(Words(tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TitleWords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
