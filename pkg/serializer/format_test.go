package serializer

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/NVIDIA/go-enums/pkg/enums"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"json", "json", FormatJSON, false},
		{"yaml", "yaml", FormatYAML, false},
		{"table", "table", FormatTable, false},
		{"case insensitive", "YAML", FormatYAML, false},
		{"yml alias", "yml", FormatYAML, false},
		{"txt alias", "txt", FormatTable, false},
		{"unknown", "xml", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "json"},
		{FormatYAML, "yaml"},
		{FormatTable, "table"},
		{Format(99), "Format(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatIsValid(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, true},
		{FormatYAML, true},
		{FormatTable, true},
		{numFormats, false},
		{Format(-1), false},
		{Format(99), false},
	}

	for _, tt := range tests {
		if got := tt.format.IsValid(); got != tt.want {
			t.Errorf("Format(%d).IsValid() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestSupportedFormats(t *testing.T) {
	want := []string{"json", "yaml", "table"}
	got := SupportedFormats()
	if len(got) != len(want) {
		t.Fatalf("SupportedFormats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SupportedFormats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatJSONRoundTrip(t *testing.T) {
	type doc struct {
		Format Format `json:"format"`
	}

	data, err := json.Marshal(doc{Format: FormatYAML})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"format":"yaml"}` {
		t.Errorf("Marshal = %s, want %s", data, `{"format":"yaml"}`)
	}

	var back doc
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Format != FormatYAML {
		t.Errorf("round trip = %v, want %v", back.Format, FormatYAML)
	}

	if err := json.Unmarshal([]byte(`{"format":"xml"}`), &back); err == nil {
		t.Error("Unmarshal of unknown format expected error")
	}
}

func TestFormatRegisteredInCatalog(t *testing.T) {
	entry, ok := enums.DefaultCatalog().LookupType(reflect.TypeFor[Format]())
	if !ok {
		t.Fatal("Format missing from enum catalog")
	}
	if entry.TypeName != "serializer.Format" {
		t.Errorf("catalog type name = %q, want %q", entry.TypeName, "serializer.Format")
	}
}
