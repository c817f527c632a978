package models

import "time"

// AchievementCategory groups catalog entries for display
type AchievementCategory string

const (
	CategoryAccuracy      AchievementCategory = "accuracy"
	CategoryStreak        AchievementCategory = "streak"
	CategoryParticipation AchievementCategory = "participation"
	CategorySpecial       AchievementCategory = "special"
)

// AchievementRarity is the tier shown next to an achievement
type AchievementRarity string

const (
	RarityCommon    AchievementRarity = "common"
	RarityRare      AchievementRarity = "rare"
	RarityEpic      AchievementRarity = "epic"
	RarityLegendary AchievementRarity = "legendary"
)

// ConditionKind selects which statistic an achievement's threshold applies to
type ConditionKind string

const (
	ConditionExactScores      ConditionKind = "exact_scores"
	ConditionTotalPoints      ConditionKind = "total_points"
	ConditionStreak           ConditionKind = "streak"
	ConditionPredictionsCount ConditionKind = "predictions_count"
	ConditionPerfectMatch     ConditionKind = "perfect_match"
	ConditionComeback         ConditionKind = "comeback"
)

// comebackMissRun is the run of consecutive misses a hit must follow to count
// as a comeback.
const comebackMissRun = 5

// Achievement is one immutable catalog entry
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Rarity      AchievementRarity   `json:"rarity"`
	Condition   ConditionKind       `json:"condition"`
	Threshold   int                 `json:"threshold"`
}

// AchievementProgress annotates a catalog entry with a user's progress toward
// it. Recomputed on every read, never stored.
type AchievementProgress struct {
	Achievement
	Progress    int        `json:"progress"`
	MaxProgress int        `json:"max_progress"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// IsUnlocked returns true if the entry has been unlocked
func (p AchievementProgress) IsUnlocked() bool {
	return p.UnlockedAt != nil
}

// UserAchievement is the reduced form of an unlocked achievement persisted on
// the user profile. Locked and in-progress entries are never written back.
type UserAchievement struct {
	ID          string            `json:"id" bson:"id"`
	Name        string            `json:"name" bson:"name"`
	Description string            `json:"description" bson:"description"`
	Icon        string            `json:"icon" bson:"icon"`
	Rarity      AchievementRarity `json:"rarity" bson:"rarity"`
	UnlockedAt  time.Time         `json:"unlocked_at" bson:"unlocked_at"`
}

// DefaultCatalog returns the full achievement catalog. Injected into the
// evaluator at call time so tests can substitute alternate thresholds.
func DefaultCatalog() []Achievement {
	return []Achievement{
		{ID: "primera_prediccion", Name: "Primera Prediccion", Description: "Hace tu primera prediccion", Icon: "🎯", Category: CategoryParticipation, Rarity: RarityCommon, Condition: ConditionPredictionsCount, Threshold: 1},
		{ID: "participante_activo", Name: "Participante Activo", Description: "Completa 10 predicciones", Icon: "📋", Category: CategoryParticipation, Rarity: RarityCommon, Condition: ConditionPredictionsCount, Threshold: 10},
		{ID: "veterano", Name: "Veterano", Description: "Completa 50 predicciones", Icon: "🎖️", Category: CategoryParticipation, Rarity: RarityRare, Condition: ConditionPredictionsCount, Threshold: 50},
		{ID: "primer_acierto", Name: "Primer Acierto", Description: "Acierta tu primer resultado", Icon: "✅", Category: CategoryAccuracy, Rarity: RarityCommon, Condition: ConditionExactScores, Threshold: 1},
		{ID: "ojo_de_aguila", Name: "Ojo de Aguila", Description: "Acierta 10 resultados", Icon: "🦅", Category: CategoryAccuracy, Rarity: RarityRare, Condition: ConditionExactScores, Threshold: 10},
		{ID: "francotirador", Name: "Francotirador", Description: "Acierta 25 resultados", Icon: "🎯", Category: CategoryAccuracy, Rarity: RarityEpic, Condition: ConditionExactScores, Threshold: 25},
		{ID: "racha_caliente", Name: "Racha Caliente", Description: "Suma puntos en 3 predicciones seguidas", Icon: "🔥", Category: CategoryStreak, Rarity: RarityCommon, Condition: ConditionStreak, Threshold: 3},
		{ID: "racha_ardiente", Name: "Racha Ardiente", Description: "Suma puntos en 7 predicciones seguidas", Icon: "🌋", Category: CategoryStreak, Rarity: RarityRare, Condition: ConditionStreak, Threshold: 7},
		{ID: "imparable", Name: "Imparable", Description: "Suma puntos en 15 predicciones seguidas", Icon: "⚡", Category: CategoryStreak, Rarity: RarityLegendary, Condition: ConditionStreak, Threshold: 15},
		{ID: "sumando_puntos", Name: "Sumando Puntos", Description: "Alcanza 10 puntos", Icon: "➕", Category: CategoryAccuracy, Rarity: RarityCommon, Condition: ConditionTotalPoints, Threshold: 10},
		{ID: "goleador", Name: "Goleador", Description: "Alcanza 50 puntos", Icon: "⚽", Category: CategoryAccuracy, Rarity: RarityEpic, Condition: ConditionTotalPoints, Threshold: 50},
		{ID: "leyenda", Name: "Leyenda", Description: "Alcanza 100 puntos", Icon: "👑", Category: CategoryAccuracy, Rarity: RarityLegendary, Condition: ConditionTotalPoints, Threshold: 100},
		{ID: "partido_perfecto", Name: "Partido Perfecto", Description: "Acierta el resultado y todas las estadisticas de un partido", Icon: "💎", Category: CategorySpecial, Rarity: RarityLegendary, Condition: ConditionPerfectMatch, Threshold: 1},
		{ID: "remontada", Name: "Remontada", Description: "Acierta justo despues de 5 fallos seguidos", Icon: "🚀", Category: CategorySpecial, Rarity: RarityRare, Condition: ConditionComeback, Threshold: 1},
	}
}

// EvaluateAchievements computes progress for every catalog entry from a
// user's aggregated statistics and their full prediction history. The history
// spans all groups (the catalog is global) and must be in chronological match
// order, the same precondition as ComputeUserStatistics.
//
// Entries at or past their threshold are stamped with now as the unlock time;
// callers that already persisted an earlier unlock keep the original stamp.
// Total over any input: an empty history reports zero progress everywhere.
func EvaluateAchievements(catalog []Achievement, stats UserStatistics, history []Prediction, now time.Time) []AchievementProgress {
	perfects, comebacks := scanHistory(history)

	result := make([]AchievementProgress, len(catalog))
	for i, a := range catalog {
		var progress int
		switch a.Condition {
		case ConditionExactScores:
			progress = stats.ExactHits
		case ConditionTotalPoints:
			progress = stats.TotalPoints
		case ConditionStreak:
			progress = stats.LongestStreak
		case ConditionPredictionsCount:
			progress = stats.TotalPredictions
		case ConditionPerfectMatch:
			progress = perfects
		case ConditionComeback:
			progress = comebacks
		}

		entry := AchievementProgress{
			Achievement: a,
			Progress:    progress,
			MaxProgress: a.Threshold,
		}
		if progress >= a.Threshold {
			unlockedAt := now
			entry.UnlockedAt = &unlockedAt
		}
		result[i] = entry
	}
	return result
}

// scanHistory walks scored predictions in order and counts perfect matches
// and comebacks (a hit immediately after comebackMissRun consecutive misses).
func scanHistory(history []Prediction) (perfects, comebacks int) {
	missRun := 0
	for _, p := range history {
		if !p.IsScored() {
			continue
		}

		if p.Breakdown != nil && p.Breakdown.IsPerfect() {
			perfects++
		}

		if *p.Points > 0 {
			if missRun >= comebackMissRun {
				comebacks++
			}
			missRun = 0
		} else {
			missRun++
		}
	}
	return perfects, comebacks
}

// UnlockedSubset reduces an evaluated catalog to the persisted form: only
// unlocked entries, trimmed to display fields plus the unlock time.
func UnlockedSubset(progress []AchievementProgress) []UserAchievement {
	var unlocked []UserAchievement
	for _, p := range progress {
		if !p.IsUnlocked() {
			continue
		}
		unlocked = append(unlocked, UserAchievement{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Icon:        p.Icon,
			Rarity:      p.Rarity,
			UnlockedAt:  *p.UnlockedAt,
		})
	}
	return unlocked
}
