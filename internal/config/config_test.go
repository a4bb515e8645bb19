package config

import (
	"strings"
	"testing"
)

const validConfig = `{
  "studio_tiers": [{"name": "Garage", "record_cost": 500, "quality_bonus": 0, "pop_bonus": 0, "freshness_bonus": 0, "upgrade_cost": 0}],
  "transport_tiers": [{"name": "Borrowed Van", "upgrade_cost": 0, "upkeep": 0}],
  "gear_tiers": [{"name": "Pawn Shop", "upgrade_cost": 0, "upkeep": 0}],
  "venues": [{"name": "The Basement", "capacity": 50, "ticket_price": 5, "base_payout": 100, "min_fame": 0}],
  "tours": [{"name": "Club Circuit", "cost": 2000, "weeks": 3, "weekly_payout": 900, "weekly_fame": 4}],
  "staff": {"manager_upkeep": [0, 200], "manager_hire_cost": [0, 1000], "lawyer_upkeep": 300, "lawyer_retainer": 2000},
  "genres": ["punk", "jazz"],
  "song_titles": ["Static", "Glass Houses"],
  "member_names": ["Alex", "Sam", "Riley", "Jordan", "Casey", "Drew"],
  "server": {"address": ":9090"}
}`

func TestParseConfigValid(t *testing.T) {
	lc, err := ParseConfig("test.json", []byte(validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lc.ServerAddress != ":9090" {
		t.Fatalf("address = %q, want :9090", lc.ServerAddress)
	}
	if len(lc.Content.Venues) != 1 || lc.Content.Venues[0].Name != "The Basement" {
		t.Fatalf("venues = %+v", lc.Content.Venues)
	}
	// Omitted events section falls back to the built-in tables.
	if lc.Content.Events.Empty() {
		t.Fatal("events should fall back to defaults")
	}
}

func TestParseConfigDefaultAddress(t *testing.T) {
	body := strings.Replace(validConfig, `"server": {"address": ":9090"}`, `"server": {}`, 1)
	lc, err := ParseConfig("test.json", []byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lc.ServerAddress != ":8080" {
		t.Fatalf("address = %q, want default :8080", lc.ServerAddress)
	}
}

func TestParseConfigRejectsBadContent(t *testing.T) {
	cases := []struct {
		name, from, to, wantErr string
	}{
		{"empty venues", `"venues": [{"name": "The Basement", "capacity": 50, "ticket_price": 5, "base_payout": 100, "min_fame": 0}]`, `"venues": []`, "venues is empty"},
		{"duplicate venue", `{"name": "The Basement", "capacity": 50, "ticket_price": 5, "base_payout": 100, "min_fame": 0}`, `{"name": "The Basement", "capacity": 50}, {"name": "the basement", "capacity": 60}`, "duplicate venue"},
		{"zero capacity", `"capacity": 50`, `"capacity": 0`, "non-positive capacity"},
		{"empty genres", `"genres": ["punk", "jazz"]`, `"genres": []`, "genres is empty"},
		{"few member names", `"member_names": ["Alex", "Sam", "Riley", "Jordan", "Casey", "Drew"]`, `"member_names": ["Alex"]`, "member_names"},
		{"zero-week tour", `"weeks": 3`, `"weeks": 0`, "non-positive duration"},
		{"staff table mismatch", `"manager_hire_cost": [0, 1000]`, `"manager_hire_cost": [0]`, "same length"},
	}
	for _, tc := range cases {
		body := strings.Replace(validConfig, tc.from, tc.to, 1)
		_, err := ParseConfig("test.json", []byte(body))
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: err = %v, want %q", tc.name, err, tc.wantErr)
		}
	}
}

func TestShippedConfigStudioLadder(t *testing.T) {
	lc, err := LoadConfig("../../band_config.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tiers := lc.Content.StudioTiers
	if len(tiers) != 3 {
		t.Fatalf("studio tiers = %d, want 3", len(tiers))
	}
	if tiers[0].RecordCost != 80 {
		t.Fatalf("tier-0 record cost = %d, want 80", tiers[0].RecordCost)
	}
	if tiers[1].QualityBonus != 8 {
		t.Fatalf("tier-1 quality bonus = %d, want 8", tiers[1].QualityBonus)
	}
}

func TestParseConfigRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseConfig("test.json", []byte("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}
