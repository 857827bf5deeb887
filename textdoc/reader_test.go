package textdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"
)

func utf16Bytes(s string, bigEndian bool) []byte {
	var out []byte
	if bigEndian {
		out = append(out, 0xFE, 0xFF)
	} else {
		out = append(out, 0xFF, 0xFE)
	}
	for _, u := range utf16.Encode([]rune(s)) {
		if bigEndian {
			out = append(out, byte(u>>8), byte(u))
		} else {
			out = append(out, byte(u), byte(u>>8))
		}
	}
	return out
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		want     string
		encoding Encoding
	}{
		{"plain", []byte("two1nine\n"), "two1nine\n", UTF8},
		{"empty", []byte{}, "", UTF8},
		{"utf8 bom", []byte("\xEF\xBB\xBFone\r\ntwo"), "one\r\ntwo", UTF8BOM},
		{"utf16le", utf16Bytes("eightwo\nthree", false), "eightwo\nthree", UTF16LE},
		{"utf16be", utf16Bytes("zoneight234", true), "zoneight234", UTF16BE},
		{"utf16 non-ascii", utf16Bytes("é7ü", false), "é7ü", UTF16LE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(tt.data, Options{})
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if doc.Text != tt.want {
				t.Errorf("Text = %q, want %q", doc.Text, tt.want)
			}
			if doc.Encoding != tt.encoding {
				t.Errorf("Encoding = %v, want %v", doc.Encoding, tt.encoding)
			}
			if doc.Normalized {
				t.Error("Normalized should be false without Options.Normalize")
			}
		})
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	_, err := Decode([]byte("one\xFFtwo"), Options{})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Decode() error = %v, want ErrInvalidUTF8", err)
	}
}

func TestDecode_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		want       string
		normalized bool
	}{
		{"fullwidth digits", "ａ１ｂ２", "a1b2", true},
		{"circled digit", "x①y", "x1y", true},
		{"superscript", "two²", "two2", true},
		{"already normal", "treb7uchet", "treb7uchet", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.in), Options{Normalize: true})
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if doc.Text != tt.want {
				t.Errorf("Text = %q, want %q", doc.Text, tt.want)
			}
			if doc.Normalized != tt.normalized {
				t.Errorf("Normalized = %v, want %v", doc.Normalized, tt.normalized)
			}
		})
	}
}

func TestEncoding_String(t *testing.T) {
	tests := []struct {
		enc  Encoding
		want string
	}{
		{UTF8, "UTF-8"},
		{UTF8BOM, "UTF-8 with BOM"},
		{UTF16LE, "UTF-16LE"},
		{UTF16BE, "UTF-16BE"},
		{Encoding(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.enc.String(); got != tt.want {
			t.Errorf("Encoding(%d).String() = %q, want %q", tt.enc, got, tt.want)
		}
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("1abc2\ntreb7uchet\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if doc.Text != "1abc2\ntreb7uchet\n" {
		t.Errorf("Text = %q", doc.Text)
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/input.txt", Options{})
	if err == nil {
		t.Fatal("Open() expected error for nonexistent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestOpenReader(t *testing.T) {
	doc, err := OpenReader(strings.NewReader("abcone2threexyz"), Options{})
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	if doc.Text != "abcone2threexyz" {
		t.Errorf("Text = %q", doc.Text)
	}
}
