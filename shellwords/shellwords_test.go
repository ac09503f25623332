package shellwords

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "ls -la /tmp", []string{"ls", "-la", "/tmp"}},
		{"double quotes", `foo "bar baz" qux`, []string{"foo", "bar baz", "qux"}},
		{"single quotes", "echo 'hello world'", []string{"echo", "hello world"}},
		{"mixed quote styles", `grep "a b" 'c d'`, []string{"grep", "a b", "c d"}},
		{"quotes inside token", `echo a"b c"d`, []string{"echo", "ab cd"}},
		{"unbalanced quote absorbs rest", `echo "a b c`, []string{"echo", "a b c"}},
		{"single quote closes double", `echo "a b'`, []string{"echo", "a b"}},
		{"collapses repeated spaces", "a   b", []string{"a", "b"}},
		{"leading and trailing spaces", "  ls  ", []string{"ls"}},
		{"empty quotes vanish", `"" a`, []string{"a"}},
		{"empty input", "", []string{}},
		{"all spaces", "    ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitNeverReturnsNil(t *testing.T) {
	if Split("") == nil {
		t.Error("Split of empty input must return an empty, non-nil slice")
	}
}
