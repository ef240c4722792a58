package skills

import "strings"

// technologyKeywords is the fixed vocabulary scanned over position text.
// Entries are lower-case substring tokens; matches are canonicalized
// through NormalizeSkillName. Ambiguous short names stay out of the list
// ("golang" rather than "go") since matching is plain substring
// containment.
var technologyKeywords = []string{
	// Languages
	"javascript",
	"typescript",
	"python",
	"java",
	"golang",
	"ruby",
	"php",
	"swift",
	"kotlin",
	"scala",
	"rust",
	"c++",
	"c#",

	// Frontend
	"react",
	"angular",
	"vue",
	"jquery",
	"html",
	"css",

	// Backend frameworks
	"node.js",
	"nodejs",
	"express",
	"django",
	"flask",
	"fastapi",
	"spring",
	"rails",
	".net",

	// Data stores and messaging
	"sql",
	"mysql",
	"postgresql",
	"postgres",
	"mongodb",
	"redis",
	"elasticsearch",
	"cassandra",
	"dynamodb",
	"kafka",
	"rabbitmq",

	// Cloud and delivery
	"aws",
	"azure",
	"gcp",
	"docker",
	"kubernetes",
	"k8s",
	"terraform",
	"ansible",
	"jenkins",
	"ci/cd",
	"git",
	"linux",

	// Architecture and practices
	"microservices",
	"rest",
	"graphql",
	"grpc",
	"machine learning",
	"data analysis",
	"agile",
	"scrum",
	"tdd",
	"devops",
}

// ExtractSkills scans text for vocabulary hits and returns their canonical
// names, deduplicated, in vocabulary order. Matching is case-insensitive
// substring containment, so broader terms can surface alongside narrower
// ones ("java" alongside "javascript"). Always returns a non-nil slice.
func ExtractSkills(text string) []string {
	found := make([]string, 0, 8)
	if strings.TrimSpace(text) == "" {
		return found
	}

	lower := strings.ToLower(text)
	seen := make(map[string]struct{}, 8)

	for _, keyword := range technologyKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		canonical := NormalizeSkillName(keyword)
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		found = append(found, canonical)
	}

	return found
}
