package format

import (
	"bytes"
	"errors"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Text, "Text"},
		{HTML, "HTML"},
		{Image, "Image"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Text, ".txt"},
		{HTML, ".html"},
		{Image, ".png"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"text", Text},
		{"TXT", Text},
		{" html ", HTML},
		{"htm", HTML},
		{"image", Image},
		{"auto", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Parse(tt.name); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"input.txt", Text},
		{"input.TXT", Text},
		{"input", Text},
		{"day01.in", Text},
		{"page.html", HTML},
		{"page.HTM", HTML},
		{"page.xhtml", HTML},
		{"scan.png", Image},
		{"scan.JPG", Image},
		{"scan.jpeg", Image},
		{"scan.tiff", Image},
		{"scan.tif", Image},
		{"scan.bmp", Image},
		{"scan.gif", Image},
		{"document.pdf", Unknown},
		{"document.docx", Unknown},
		{"", Unknown},
		{"/path/to/input", Text},
		{"/path/to/page.html", HTML},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "PNG signature",
			data: []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"),
			want: Image,
		},
		{
			name: "JPEG signature",
			data: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10},
			want: Image,
		},
		{
			name: "GIF signature",
			data: []byte("GIF89a\x01\x00"),
			want: Image,
		},
		{
			name: "TIFF little endian",
			data: []byte("II*\x00\x08\x00\x00\x00"),
			want: Image,
		},
		{
			name: "TIFF big endian",
			data: []byte("MM\x00*\x00\x00\x00\x08"),
			want: Image,
		},
		{
			name: "BMP header",
			data: []byte{'B', 'M', 0x3A, 0, 0, 0, 0, 0, 0, 0, 0x36, 0, 0, 0},
			want: Image,
		},
		{
			name: "text starting with BM",
			data: []byte("BMW 3 series, one2three"),
			want: Text,
		},
		{
			name: "HTML with DOCTYPE",
			data: []byte("<!DOCTYPE html>\n<html>"),
			want: HTML,
		},
		{
			name: "HTML with html tag",
			data: []byte("<html><head>"),
			want: HTML,
		},
		{
			name: "HTML with whitespace before DOCTYPE",
			data: []byte("  \n  <!DOCTYPE HTML PUBLIC"),
			want: HTML,
		},
		{
			name: "HTML after UTF-8 BOM",
			data: []byte("\xEF\xBB\xBF<html><body>"),
			want: HTML,
		},
		{
			name: "XHTML",
			data: []byte(`<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml">`),
			want: HTML,
		},
		{
			name: "plain text",
			data: []byte("1abc2\npqr3stu8vwx\n"),
			want: Text,
		},
		{
			name: "UTF-16LE with BOM",
			data: []byte{0xFF, 0xFE, '1', 0, 'a', 0},
			want: Text,
		},
		{
			name: "UTF-16BE with BOM",
			data: []byte{0xFE, 0xFF, 0, '1', 0, 'a'},
			want: Text,
		},
		{
			name: "UTF-8 truncated at window end",
			data: []byte("abc\xE2\x82"),
			want: Text,
		},
		{
			name: "invalid UTF-8",
			data: []byte("abc\xFFdef"),
			want: Unknown,
		},
		{
			name: "binary with NUL",
			data: []byte{0x01, 0x00, 0x03, 0x04, 0x05},
			want: Unknown,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_HTML(t *testing.T) {
	data := []byte("<!DOCTYPE html>\n<html><head><title>Test</title></head><body></body></html>")

	format, err := DetectFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != HTML {
		t.Errorf("DetectFromReader() = %v, want HTML", format)
	}
}

func TestDetectFromReader_Text(t *testing.T) {
	data := bytes.Repeat([]byte("two1nine\n"), 200)

	format, err := DetectFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Text {
		t.Errorf("DetectFromReader() = %v, want Text", format)
	}
}

type failingReaderAt struct{}

func (failingReaderAt) ReadAt([]byte, int64) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDetectFromReader_Error(t *testing.T) {
	if _, err := DetectFromReader(failingReaderAt{}); err == nil {
		t.Error("DetectFromReader() expected error")
	}
}
