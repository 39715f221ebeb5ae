package format

import (
	"reflect"
	"testing"
)

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "(1"},
		{"11", "(11"},
		{"119", "(11) 9"},
		{"1198765", "(11) 98765"},
		{"11987654", "(11) 98765-4"},
		{"11987654321", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"11 98765 4321 999", "(11) 98765-4321"},
		{"abc11def98765ghi4321", "(11) 98765-4321"},
	}
	for _, c := range cases {
		if got := Phone(c.in); got != c.want {
			t.Errorf("Phone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPhoneIdempotent(t *testing.T) {
	once := Phone("11987654321")
	if twice := Phone(once); twice != once {
		t.Errorf("reformatting changed the value: %q -> %q", once, twice)
	}
}

func TestCPF(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"123", "123"},
		{"1234", "123.4"},
		{"123456", "123.456"},
		{"1234567", "123.456.7"},
		{"123456789", "123.456.789"},
		{"1234567890", "123.456.789-0"},
		{"12345678901", "123.456.789-01"},
		{"123.456.789-01", "123.456.789-01"},
		{"123456789012345", "123.456.789-01"},
	}
	for _, c := range cases {
		if got := CPF(c.in); got != c.want {
			t.Errorf("CPF(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCEP(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"01310", "01310"},
		{"013101", "01310-1"},
		{"01310100", "01310-100"},
		{"01310-100", "01310-100"},
		{"013101009999", "01310-100"},
	}
	for _, c := range cases {
		if got := CEP(c.in); got != c.want {
			t.Errorf("CEP(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCEPDigits(t *testing.T) {
	if got := CEPDigits("01310-100"); got != "01310100" {
		t.Errorf("CEPDigits = %q, want %q", got, "01310100")
	}
	if got := CEPDigits("013"); got != "013" {
		t.Errorf("CEPDigits = %q, want %q", got, "013")
	}
}

func TestEmailSuggestions(t *testing.T) {
	if got := EmailSuggestions("ana"); got != nil {
		t.Errorf("short value should yield nil, got %v", got)
	}

	got := EmailSuggestions("anasilva")
	want := []string{"anasilva@gmail.com", "anasilva@hotmail.com", "anasilva@outlook.com", "anasilva@yahoo.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EmailSuggestions(anasilva) = %v, want %v", got, want)
	}

	got = EmailSuggestions("anasilva@gma")
	want = []string{"anasilva@gmail.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EmailSuggestions(anasilva@gma) = %v, want %v", got, want)
	}

	if got := EmailSuggestions("anasilva@gmail.com"); got != nil {
		t.Errorf("complete email should yield nil, got %v", got)
	}
	if got := EmailSuggestions("anasilva@uol.com.br"); got != nil {
		t.Errorf("complete .br email should yield nil, got %v", got)
	}
}
