package main

import (
	"os"
	"testing"
)

func TestParsePerm(t *testing.T) {
	cases := []struct {
		in      string
		want    os.FileMode
		wantErr bool
	}{
		{"0755", 0o755, false},
		{"0o755", 0o755, false},
		{"0644", 0o644, false},
		{"0600", 0o600, false},
		{"", 0o755, false}, // пустая строка — значение по умолчанию
		{"abc", 0, true},
		{"0999", 0, true},
	}

	for _, c := range cases {
		got, err := parsePerm(c.in, 0o755)
		if c.wantErr {
			if err == nil {
				t.Errorf("parsePerm(%q): ожидалась ошибка, получено %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePerm(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parsePerm(%q) = %v, ожидалось %v", c.in, got, c.want)
		}
	}
}
