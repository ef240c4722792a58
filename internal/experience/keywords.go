package experience

import "strings"

// Fixed keyword tables driving relevance flagging, relevance scoring, and
// seniority classification. All matching is case-insensitive substring
// containment over the concatenated title+summary text; the tables are
// package-level constant data and must never be mutated.

var technicalKeywords = []string{
	"software",
	"developer",
	"engineer",
	"engineering",
	"programming",
	"coding",
	"backend",
	"frontend",
	"full stack",
	"fullstack",
	"architect",
	"technical",
	"api",
	"database",
	"cloud",
	"infrastructure",
	"data",
}

var managementKeywords = []string{
	"manager",
	"management",
	"lead",
	"director",
	"head of",
	"supervisor",
	"chief",
}

var productKeywords = []string{
	"product",
	"roadmap",
	"stakeholder",
	"requirements",
	"user research",
	"market",
}

var qualityKeywords = []string{
	"quality",
	"testing",
	"test automation",
	"qa",
	"assurance",
	"reliability",
}

var devopsKeywords = []string{
	"devops",
	"deployment",
	"ci/cd",
	"automation",
	"monitoring",
	"sre",
	"operations",
}

// relevanceCategories groups the five fixed tables in scan order for the
// is-relevant check.
var relevanceCategories = [][]string{
	technicalKeywords,
	managementKeywords,
	productKeywords,
	qualityKeywords,
	devopsKeywords,
}

// seniorityTier couples an indicator label with its keyword list.
type seniorityTier struct {
	label    string
	keywords []string
}

var (
	entryKeywords = []string{
		"intern",
		"junior",
		"graduate",
		"trainee",
		"entry",
		"associate",
	}
	midKeywords = []string{
		"mid-level",
		"mid level",
		"intermediate",
	}
	seniorKeywords = []string{
		"senior",
		"sr.",
		"lead",
		"staff",
		"tech lead",
		"team lead",
	}
	expertKeywords = []string{
		"principal",
		"distinguished",
		"fellow",
		"architect",
		"chief",
		"vp",
		"vice president",
		"cto",
		"director",
		"head of engineering",
	}
)

// seniorityTiers in indicator-scan order, least to most experienced.
var seniorityTiers = []seniorityTier{
	{label: "Entry", keywords: entryKeywords},
	{label: "Mid", keywords: midKeywords},
	{label: "Senior", keywords: seniorKeywords},
	{label: "Expert", keywords: expertKeywords},
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func countKeywordHits(text string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			hits++
		}
	}
	return hits
}
