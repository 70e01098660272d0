package inn

import "testing"

func sp(v string) *string { return &v }

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		cell *string
		want string
	}{
		{name: "padded", cell: sp(" 1234567890 \n"), want: "1234567890"},
		{name: "no token", cell: sp("ABC-123"), want: "ABC-123"},
		{name: "twelve digits", cell: sp("500100732259"), want: "500100732259"},
		{name: "split by newline", cell: sp("77070\n83893"), want: "7707083893"},
		{name: "inside text", cell: sp("ИНН: 7707083893, КПП"), want: "7707083893"},
		{name: "glued to cyrillic", cell: sp("ИНН7707083893"), want: "ИНН7707083893"},
		{name: "glued to latin", cell: sp("7707083893abc"), want: "7707083893abc"},
		{name: "first of two", cell: sp("1111111111/2222222222"), want: "1111111111"},
		{name: "nine digits", cell: sp("123456789"), want: "123456789"},
		{name: "thirteen digits", cell: sp("1234567890123"), want: "1234567890123"},
		{name: "thirteen then ten", cell: sp("1234567890123;1234567890"), want: "1234567890"},
		{name: "tab kept", cell: sp("1234567890\t"), want: "1234567890"},
		{name: "empty", cell: sp(""), want: ""},
		{name: "absent", cell: nil, want: NonePlaceholder},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.cell); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestIsDigits(t *testing.T) {
	cases := map[string]bool{
		"1234567890":    true,
		"123":           true,
		"0":             true,
		"":              false,
		"12 34":         false,
		"ИНН":           false,
		"12-34":         false,
		"١٢٣٤٥٦٧٨٩٠": true,
		"²³":            true,
		"10²":           true,
		"₀₉":            true,
		"①⑨":            true,
		"❶":             true,
		"½":             false,
		"Ⅻ":             false,
		"٫":             false,
	}
	for in, want := range cases {
		if got := IsDigits(in); got != want {
			t.Fatalf("IsDigits(%q)=%v want %v", in, got, want)
		}
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"7707083893":   true,
		"500100732259": true,
		"1234567890":   false,
		"500100732258": false,
		"12345":        false,
		"77070838a3":   false,
	}
	for in, want := range cases {
		if got := Valid(in); got != want {
			t.Fatalf("Valid(%q)=%v want %v", in, got, want)
		}
	}
}
