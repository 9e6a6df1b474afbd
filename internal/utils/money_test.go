package utils

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"50000", 50000},
		{"1,50,000", 150000},
		{" 2,100.50 ", 2100.5},
		{"₹ 5,500", 5500},
		{"Rs 1,200", 1200},
		{"Rs. 800", 800},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12abc", 0},
		{"-300", -300},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5500, "5500"},
		{5499.5, "5500"},
		{5499.4, "5499"},
		{-120.6, "-121"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rs 0"},
		{950, "Rs 950"},
		{5500, "Rs 5,500"},
		{150000, "Rs 1,50,000"},
		{12345678, "Rs 1,23,45,678"},
		{-2100, "-Rs 2,100"},
	}
	for _, tc := range cases {
		if got := FormatRupees(tc.in); got != tc.want {
			t.Fatalf("FormatRupees(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	if got := NormalizeDate("15-03-2025"); got != "2025-03-15" {
		t.Fatalf("NormalizeDate display form = %q", got)
	}
	if got := NormalizeDate("2025-03-15"); got != "2025-03-15" {
		t.Fatalf("NormalizeDate storage form = %q", got)
	}
	if got := NormalizeDate("soon"); got != "soon" {
		t.Fatalf("NormalizeDate junk = %q, want passthrough", got)
	}
}
