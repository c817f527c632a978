package models

import "sort"

// RankingEntry is one leaderboard row: a user's aggregated statistics plus
// their 1-based position within the scope.
type RankingEntry struct {
	UserStatistics
	UserName string `json:"user_name"`
	Rank     int    `json:"rank"`
}

// BuildRanking sorts aggregated statistics into a leaderboard and assigns
// ranks. Order is total points descending, then average points descending;
// the relative order of exact ties is unspecified but stable with respect to
// the input.
//
// Rank is the sorted position + 1 even when neighbors tie on both keys. Rows
// with identical scores deliberately do not share a rank.
func BuildRanking(stats []UserStatistics) []RankingEntry {
	sorted := make([]UserStatistics, len(stats))
	copy(sorted, stats)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return sorted[i].AveragePoints > sorted[j].AveragePoints
	})

	entries := make([]RankingEntry, len(sorted))
	for i, s := range sorted {
		entries[i] = RankingEntry{
			UserStatistics: s,
			Rank:           i + 1,
		}
	}
	return entries
}
