package population

import (
	"encoding/json"
	"math/rand"
	"testing"

	"butuhkidul/internal/domain/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sampleRecords() []entity.Population {
	return []entity.Population{
		{Hamlet: "Butuh Kidul", TotalPopulation: 120, Households: 40, Male: 58, Female: 62, Toddlers: 10, Children: 25, Elderly: 15, Wives: 30},
		{Hamlet: "Butuh Lor", TotalPopulation: 80, Households: 25, Male: 41, Female: 39, Toddlers: 6, Children: 14, Elderly: 12, Wives: 20},
		{Hamlet: "Karangjati", TotalPopulation: 55, Households: 18, Male: 27, Female: 28, Toddlers: 4, Children: 9, Elderly: 8, Wives: 14},
	}
}

func TestStats_Empty(t *testing.T) {
	got := Stats(nil)

	want := entity.PopulationStats{HamletData: []entity.HamletSummary{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stats(nil) mismatch (-want +got):\n%s", diff)
	}

	// hamlet_data must serialize as [] rather than null
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["hamlet_data"]) != "[]" {
		t.Errorf("hamlet_data = %s, want []", raw["hamlet_data"])
	}
}

func TestStats_Totals(t *testing.T) {
	got := Stats(sampleRecords())

	want := entity.PopulationStats{
		TotalPopulation: 255,
		TotalHouseholds: 83,
		GenderDistribution: entity.GenderDistribution{
			Male:   126,
			Female: 129,
		},
		AgeDistribution: entity.AgeDistribution{
			Toddlers: 20,
			Children: 48,
			Adults:   255 - (20 + 48 + 35),
			Elderly:  35,
		},
		HamletData: []entity.HamletSummary{
			{Name: "Butuh Kidul", Population: 120, Households: 40},
			{Name: "Butuh Lor", Population: 80, Households: 25},
			{Name: "Karangjati", Population: 55, Households: 18},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStats_OrderIndependentTotals(t *testing.T) {
	records := sampleRecords()
	base := Stats(records)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]entity.Population(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Stats(shuffled)

		// totals are identical; the hamlet listing follows input order
		if diff := cmp.Diff(base, got, cmpopts.IgnoreFields(entity.PopulationStats{}, "HamletData")); diff != "" {
			t.Fatalf("totals changed after shuffle (-want +got):\n%s", diff)
		}
		for j, h := range got.HamletData {
			if h.Name != shuffled[j].Hamlet {
				t.Fatalf("HamletData[%d].Name = %q, want %q", j, h.Name, shuffled[j].Hamlet)
			}
		}
	}
}

func TestStats_Idempotent(t *testing.T) {
	records := sampleRecords()
	if diff := cmp.Diff(Stats(records), Stats(records)); diff != "" {
		t.Errorf("Stats is not deterministic (-first +second):\n%s", diff)
	}
}

func TestStats_InconsistentInputCanGoNegative(t *testing.T) {
	got := Stats([]entity.Population{
		{Hamlet: "Rusak", TotalPopulation: 10, Toddlers: 5, Children: 5, Elderly: 5},
	})
	if got.AgeDistribution.Adults != -5 {
		t.Errorf("Adults = %d, want -5", got.AgeDistribution.Adults)
	}
}
