package text

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr error
	}{
		{
			name:  "plain ascii",
			input: []byte(`{"name":"x"}`),
			want:  `{"name":"x"}`,
		},
		{
			name:  "leading BOM stripped",
			input: append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...),
			want:  "hello",
		},
		{
			name:  "multibyte preserved",
			input: []byte("Pâleté 🎨"),
			want:  "Pâleté 🎨",
		},
		{
			name:  "empty",
			input: []byte{},
			want:  "",
		},
		{
			name:    "invalid utf-8",
			input:   []byte{0xff, 0xfe, 0x00},
			wantErr: ErrInvalidUTF8,
		},
	}

	d := NewDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Decode(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}
