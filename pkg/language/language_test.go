package language

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "english prose",
			text:   "The committee published its annual report on infrastructure spending and long-term maintenance planning across the region.",
			want:   "en",
			wantOK: true,
		},
		{
			name:   "german prose",
			text:   "Die Regierung veröffentlichte heute einen ausführlichen Bericht über die wirtschaftliche Entwicklung des vergangenen Jahres.",
			want:   "de",
			wantOK: true,
		},
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			text:   "   \n\t  ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Detect() ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("ru"); got != "Russian" {
		t.Errorf("DisplayName(ru) = %q, want Russian", got)
	}
	if got := DisplayName("xx"); got != "xx" {
		t.Errorf("DisplayName(xx) = %q, want the code itself", got)
	}
}
