package archive

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zip"

	"github.com/jmylchreest/swatches/internal/security"
)

func buildRawZip(t *testing.T, files map[string]string, order []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(files[name])); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf.Bytes()
}

func TestBuildExtractRoundTrip(t *testing.T) {
	z := NewZip()
	entries := map[string][]byte{
		"Swatches.json": []byte(`{"name":"a","swatches":[]}`),
		"notes.txt":     []byte("hello"),
	}

	data, err := z.Build(entries, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("Build() output does not look like a zip container")
	}

	got, err := z.Extract(data)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDeterministic(t *testing.T) {
	z := NewZip()
	entries := map[string][]byte{"b": []byte("2"), "a": []byte("1"), "c": []byte("3")}

	first, err := z.Build(entries, Options{Format: FormatBytes})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for range 5 {
		again, err := z.Build(entries, Options{Format: FormatBytes})
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("Build() output differs between calls")
		}
	}
}

func TestBuildBase64(t *testing.T) {
	z := NewZip()
	entries := map[string][]byte{"Swatches.json": []byte("{}")}

	encoded, err := z.Build(entries, Options{Format: FormatBase64})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		t.Fatalf("output is not base64: %v", err)
	}
	got, err := z.Extract(raw)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if string(got["Swatches.json"]) != "{}" {
		t.Errorf("unexpected entry content %q", got["Swatches.json"])
	}
}

func TestBuildRejectsUnknownFormat(t *testing.T) {
	if _, err := NewZip().Build(map[string][]byte{"a": nil}, Options{Format: "blob"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not a zip", data: []byte("definitely not a zip file")},
		{name: "truncated", data: buildRawZip(t, map[string]string{"a": "b"}, []string{"a"})[:20]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewZip().Extract(tt.data); err == nil {
				t.Error("Extract() expected error, got nil")
			}
		})
	}
}

func TestExtractDuplicateNamesKeepLast(t *testing.T) {
	data := buildRawZip(t, map[string]string{"a": "first", "./a": "second"}, []string{"a", "./a"})

	got, err := NewZip().Extract(data)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if diff := cmp.Diff(map[string][]byte{"a": []byte("second")}, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSizeLimit(t *testing.T) {
	data := buildRawZip(t, map[string]string{"big": string(bytes.Repeat([]byte("x"), 4096))}, []string{"big"})

	_, err := NewZip().WithMaxEntrySize(1024).Extract(data)
	if !errors.Is(err, security.ErrLimitExceeded) {
		t.Fatalf("expected size limit error, got %v", err)
	}
}

func TestExtractNormalisesNames(t *testing.T) {
	data := buildRawZip(t, map[string]string{"./Swatches.json": "{}", "dir/": ""}, []string{"dir/", "./Swatches.json"})

	got, err := NewZip().Extract(data)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if _, ok := got["Swatches.json"]; !ok {
		t.Errorf("expected Swatches.json entry, got %v", got)
	}
	if len(got) != 1 {
		t.Errorf("expected directories to be skipped, got %d entries", len(got))
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatBytes},
		{in: "bytes", want: FormatBytes},
		{in: "uint8array", want: FormatBytes},
		{in: "BASE64", want: FormatBase64},
		{in: "blob", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
