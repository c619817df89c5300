package arena

import (
	"testing"
)

func TestSpeciesFromLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Species
		wantErr bool
	}{
		{name: "lion", input: "lion", want: SpeciesLion},
		{name: "leopard", input: "leopard", want: SpeciesLeopard},
		{name: "jackal", input: "jackal", want: SpeciesJackal},
		{name: "baboon", input: "baboon", want: SpeciesBaboon},
		{name: "uppercase", input: "LION", want: SpeciesLion},
		{name: "whitespace trimmed", input: "  leopard  ", want: SpeciesLeopard},
		{name: "empty string", input: "", wantErr: true},
		{name: "unknown value", input: "tiger", wantErr: true},
		{name: "participant is not a species", input: "gladiator", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SpeciesFromLabel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpeciesLabelsRoundTrip(t *testing.T) {
	for _, label := range SpeciesLabels() {
		if _, err := SpeciesFromLabel(label); err != nil {
			t.Fatalf("label %q does not round-trip: %v", label, err)
		}
	}
}
