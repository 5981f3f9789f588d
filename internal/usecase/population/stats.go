// Package population aggregates per-hamlet census records into the
// statistics shown on the village population page.
package population

import "butuhkidul/internal/domain/entity"

// Stats reduces records into totals, gender and age breakdowns, and a
// per-hamlet listing in input order.
//
// Adults are derived as total population minus toddlers, children and
// elderly summed over all records. With inconsistent input (a hamlet whose
// age groups exceed its total) the adult count is therefore not the sum of
// per-hamlet adult counts, and may even be negative.
//
// Stats is pure: the same input always yields the same output, and the
// totals do not depend on record order.
func Stats(records []entity.Population) entity.PopulationStats {
	stats := entity.PopulationStats{
		HamletData: make([]entity.HamletSummary, 0, len(records)),
	}

	nonAdults := 0
	for _, p := range records {
		stats.TotalPopulation += p.TotalPopulation
		stats.TotalHouseholds += p.Households
		stats.GenderDistribution.Male += p.Male
		stats.GenderDistribution.Female += p.Female
		stats.AgeDistribution.Toddlers += p.Toddlers
		stats.AgeDistribution.Children += p.Children
		stats.AgeDistribution.Elderly += p.Elderly
		nonAdults += p.Toddlers + p.Children + p.Elderly

		stats.HamletData = append(stats.HamletData, entity.HamletSummary{
			Name:       p.Hamlet,
			Population: p.TotalPopulation,
			Households: p.Households,
		})
	}
	stats.AgeDistribution.Adults = stats.TotalPopulation - nonAdults

	return stats
}
