package experience

import (
	"math"
	"strings"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/skills"
	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// Relevance scoring weights. The base grants every position a neutral
// half score; technical and target-skill hits add capped increments and a
// management hit adds a flat bonus. The final score is clamped to [0,1].
const (
	relevanceBase            = 0.5
	relevanceTechnicalWeight = 0.05
	relevanceTechnicalCap    = 0.3
	relevanceTargetWeight    = 0.10
	relevanceTargetCap       = 0.4
	relevanceManagementBonus = 0.2
)

// AnalyzePosition builds the per-position analysis record: parsed date
// range, relevance flag and score, extracted skills, and seniority
// indicator tags. Empty or garbage fields degrade to zero-confidence
// dates and base scoring rather than failing.
func (a *Analyzer) AnalyzePosition(position types.WorkExperience, targetSkills []string) types.AnalyzedPosition {
	searchText := strings.ToLower(strings.TrimSpace(position.Position + " " + position.Summary))
	score, relevant := scoreRelevance(searchText, skills.NormalizeTargetSkills(targetSkills))

	return types.AnalyzedPosition{
		Company:             position.Company,
		Title:               position.Position,
		Summary:             position.Summary,
		DateRange:           a.parser.CreateDateRange(position.StartDate, position.EndDate),
		RelevanceScore:      score,
		IsRelevant:          relevant,
		ExtractedSkills:     skills.ExtractSkills(searchText),
		SeniorityIndicators: seniorityIndicators(searchText),
	}
}

// scoreRelevance computes the heuristic relevance score and the relevance
// flag over the lower-cased title+summary text. The flag is true when any
// fixed-category keyword or any supplied target skill appears.
func scoreRelevance(searchText string, targetSkills []string) (float64, bool) {
	technicalHits := countKeywordHits(searchText, technicalKeywords)

	targetHits := 0
	for _, skill := range targetSkills {
		if strings.Contains(searchText, strings.ToLower(skill)) {
			targetHits++
		}
	}

	score := relevanceBase
	score += math.Min(relevanceTechnicalCap, float64(technicalHits)*relevanceTechnicalWeight)
	score += math.Min(relevanceTargetCap, float64(targetHits)*relevanceTargetWeight)
	if containsAny(searchText, managementKeywords) {
		score += relevanceManagementBonus
	}
	score = math.Max(0, math.Min(1, score))

	relevant := targetHits > 0
	if !relevant {
		for _, category := range relevanceCategories {
			if containsAny(searchText, category) {
				relevant = true
				break
			}
		}
	}

	return score, relevant
}

// seniorityIndicators appends a "Tier: keyword" tag for every seniority
// keyword found, tiers scanned entry through expert, keywords in table
// order.
func seniorityIndicators(searchText string) []string {
	indicators := make([]string, 0, 4)
	for _, tier := range seniorityTiers {
		for _, keyword := range tier.keywords {
			if strings.Contains(searchText, keyword) {
				indicators = append(indicators, tier.label+": "+keyword)
			}
		}
	}
	return indicators
}
