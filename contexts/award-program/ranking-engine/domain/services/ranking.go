package services

import (
	"sort"

	"laureate/contexts/award-program/ranking-engine/domain/entities"
	"laureate/contexts/award-program/ranking-engine/ports"
)

// DefaultThreshold is the qualifying mean score when no override is
// configured.
const DefaultThreshold = 6.0

type candidate struct {
	project ports.ProjectScan
	mean    float64
	count   int
}

// beats orders candidates: higher mean first, ties to the earliest
// submission, then the smaller project id so the result is total.
func (c candidate) beats(other candidate) bool {
	if c.mean != other.mean {
		return c.mean > other.mean
	}
	if !c.project.SubmittedAt.Equal(other.project.SubmittedAt) {
		return c.project.SubmittedAt.Before(other.project.SubmittedAt)
	}
	return c.project.ProjectID < other.project.ProjectID
}

// Rank is the pure winner computation. Per award it keeps evaluated projects
// whose mean score reaches the threshold and picks the best candidate.
// Awards with no qualifying project are omitted.
func Rank(awards []ports.AwardScan, projects []ports.ProjectScan, scores []ports.ScoreScan, threshold float64) []entities.WinnerDeclaration {
	type tally struct {
		sum   float64
		count int
	}
	tallies := make(map[string]tally, len(projects))
	for _, score := range scores {
		t := tallies[score.ProjectID]
		t.sum += score.Score
		t.count++
		tallies[score.ProjectID] = t
	}

	best := make(map[string]candidate, len(awards))
	for _, project := range projects {
		if project.Status != "evaluated" {
			continue
		}
		t, ok := tallies[project.ProjectID]
		if !ok || t.count == 0 {
			continue
		}
		mean := t.sum / float64(t.count)
		if mean < threshold {
			continue
		}
		contender := candidate{project: project, mean: mean, count: t.count}
		current, taken := best[project.AwardID]
		if !taken || contender.beats(current) {
			best[project.AwardID] = contender
		}
	}

	winners := make([]entities.WinnerDeclaration, 0, len(best))
	for _, award := range awards {
		winner, ok := best[award.AwardID]
		if !ok {
			continue
		}
		winners = append(winners, entities.WinnerDeclaration{
			AwardID:         award.AwardID,
			AwardName:       award.Name,
			Year:            award.Year,
			ProjectID:       winner.project.ProjectID,
			Title:           winner.project.Title,
			AuthorID:        winner.project.AuthorID,
			MeanScore:       winner.mean,
			EvaluationCount: winner.count,
		})
	}
	sort.Slice(winners, func(i, j int) bool {
		if winners[i].Year == winners[j].Year {
			return winners[i].AwardID < winners[j].AwardID
		}
		return winners[i].Year < winners[j].Year
	})
	return winners
}
