package strutil

import "testing"

func TestTrim(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  hello  ", "hello"},
		{"\t\n value \r\f\v", "value"},
		{"   ", ""},
		{"", ""},
		{"no-op", "no-op"},
	}
	for _, tt := range tests {
		if got := Trim(tt.in); got != tt.want {
			t.Errorf("Trim(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := TrimLeft("  x  "); got != "x  " {
		t.Errorf("TrimLeft = %q, want %q", got, "x  ")
	}
	if got := TrimRight("  x  "); got != "  x" {
		t.Errorf("TrimRight = %q, want %q", got, "  x")
	}
}

func TestToLower(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"HELLO", "hello"},
		{"MixedCase", "mixedcase"},
		{"already lower", "already lower"},
		{"", ""},
		{"TRUE", "true"},
	}
	for _, tt := range tests {
		if got := ToLower(tt.in); got != tt.want {
			t.Errorf("ToLower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "-123", "+123", "1.5", ".5", "1.23e-4", " 42 ", "1E10"}
	invalid := []string{"", "abc", "1.2.3", "e10", "0x1f", "1,000"}

	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsInteger(t *testing.T) {
	valid := []string{"0", "42", "-7", "+13", " 99 "}
	invalid := []string{"", "1.5", "abc", "1e3", "0x10"}

	for _, s := range valid {
		if !IsInteger(s) {
			t.Errorf("IsInteger(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsInteger(s) {
			t.Errorf("IsInteger(%q) = true, want false", s)
		}
	}
}

func TestIsHexadecimal(t *testing.T) {
	valid := []string{"0x1f", "0XABCDEF", " 0xdead "}
	invalid := []string{"1f", "0x", "0xgg", "123"}

	for _, s := range valid {
		if !IsHexadecimal(s) {
			t.Errorf("IsHexadecimal(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsHexadecimal(s) {
			t.Errorf("IsHexadecimal(%q) = true, want false", s)
		}
	}
}

func TestIsOctal(t *testing.T) {
	valid := []string{"0o17", "0O777", "0755", "017"}
	invalid := []string{"0o8", "0x17", "8"}

	for _, s := range valid {
		if !IsOctal(s) {
			t.Errorf("IsOctal(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsOctal(s) {
			t.Errorf("IsOctal(%q) = true, want false", s)
		}
	}
}

func TestIsBinary(t *testing.T) {
	valid := []string{"0b1010", "0B1", " 0b0 "}
	invalid := []string{"1010", "0b", "0b102"}

	for _, s := range valid {
		if !IsBinary(s) {
			t.Errorf("IsBinary(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsBinary(s) {
			t.Errorf("IsBinary(%q) = true, want false", s)
		}
	}
}

func TestIsBoolean(t *testing.T) {
	valid := []string{"true", "FALSE", "True", "1", "0", " true "}
	invalid := []string{"", "yes", "no", "2", "truthy"}

	for _, s := range valid {
		if !IsBoolean(s) {
			t.Errorf("IsBoolean(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsBoolean(s) {
			t.Errorf("IsBoolean(%q) = true, want false", s)
		}
	}
}

func TestIsDouble(t *testing.T) {
	valid := []string{"1.5", "-3.14", "+0.5", "2.5e10", "1.0E-3"}
	invalid := []string{"1", ".5", "1.", "abc"}

	for _, s := range valid {
		if !IsDouble(s) {
			t.Errorf("IsDouble(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsDouble(s) {
			t.Errorf("IsDouble(%q) = true, want false", s)
		}
	}

	// The optional-decimal variant accepts plain integers too.
	if !IsDoubleOptionalDecimal("1") {
		t.Error("IsDoubleOptionalDecimal(\"1\") = false, want true")
	}
}

func TestIsRealNumber(t *testing.T) {
	valid := []string{"1", "1.5", "-2", "3e8", "6.022e23"}
	invalid := []string{".5", "abc", "1.2.3"}

	for _, s := range valid {
		if !IsRealNumber(s) {
			t.Errorf("IsRealNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsRealNumber(s) {
			t.Errorf("IsRealNumber(%q) = true, want false", s)
		}
	}
}

func TestIsDate(t *testing.T) {
	valid := []string{
		"2024-01-15",
		"2024/01/15",
		"15-01-2024",
		"01/15/2024",
		"2024-01-15 10:30:00",
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00.123+05:00",
		"Jan 1, 2020",
		"1 Jan 2020",
		"December 25, 2024",
		"  2024-01-15  ",
	}
	invalid := []string{
		"",
		"not a date",
		"2024",
		"15.01.2024",
		"2024-1-5",
	}

	for _, s := range valid {
		if !IsDate(s) {
			t.Errorf("IsDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsDate(s) {
			t.Errorf("IsDate(%q) = true, want false", s)
		}
	}
}
