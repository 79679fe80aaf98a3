package models

import "testing"

func TestClientDisplayNameIndividual(t *testing.T) {
	client := &Client{
		Type:      ClientTypeIndividual,
		FirstName: "Ivan",
		LastName:  "Sidorov",
	}
	if got := client.DisplayName(); got != "Sidorov Ivan" {
		t.Fatalf("expected %q, got %q", "Sidorov Ivan", got)
	}
}

func TestClientDisplayNameLegalEntity(t *testing.T) {
	client := &Client{
		Type:        ClientTypeLegalEntity,
		CompanyName: "Hotel Aurora LLC",
		FirstName:   "Ignored",
	}
	if got := client.DisplayName(); got != "Hotel Aurora LLC" {
		t.Fatalf("expected company name, got %q", got)
	}
}
