// Package skills provides the fixed technology vocabulary used for skill
// extraction from position text, plus canonical skill-name normalization.
package skills

import "strings"

// skillNormalizations maps common skill name variants to canonical names.
var skillNormalizations = map[string]string{
	"golang":  "Go",
	"go lang": "Go",

	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"next.js":    "Next.js",
	"nextjs":     "Next.js",
	"jquery":     "jQuery",
	"html":       "HTML",
	"css":        "CSS",

	"c#":     "C#",
	"csharp": "C#",
	"c++":    "C++",
	"cpp":    "C++",
	".net":   ".NET",
	"dotnet": ".NET",
	"php":    "PHP",

	"k8s":           "Kubernetes",
	"kubernetes":    "Kubernetes",
	"aws":           "AWS",
	"gcp":           "GCP",
	"ci/cd":         "CI/CD",
	"cicd":          "CI/CD",
	"sql":           "SQL",
	"nosql":         "NoSQL",
	"mysql":         "MySQL",
	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"mongodb":       "MongoDB",
	"mongo":         "MongoDB",
	"dynamodb":      "DynamoDB",
	"elasticsearch": "Elasticsearch",
	"rabbitmq":      "RabbitMQ",
	"fastapi":       "FastAPI",

	"rest":    "REST",
	"restful": "REST",
	"graphql": "GraphQL",
	"grpc":    "gRPC",
	"devops":  "DevOps",
	"tdd":     "TDD",
	"oop":     "OOP",

	"ml":               "Machine Learning",
	"machine learning": "Machine Learning",
	"data analysis":    "Data Analysis",
}

// NormalizeSkillName normalizes a skill name to its canonical form:
// whitespace is trimmed and collapsed, known variants resolve through the
// normalization map, and uniformly-cased single words get first-letter
// capitalization. Mixed-case input outside the map is trusted as-is.
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.Join(strings.Fields(skillName), " ")
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	if !strings.Contains(normalized, " ") &&
		(normalized == strings.ToLower(normalized) || normalized == strings.ToUpper(normalized)) {
		return strings.ToUpper(lower[:1]) + lower[1:]
	}

	return normalized
}

// NormalizeTargetSkills canonicalizes and deduplicates caller-supplied
// target skills, dropping empties and preserving first-seen order.
func NormalizeTargetSkills(targets []string) []string {
	normalized := make([]string, 0, len(targets))
	seen := make(map[string]struct{}, len(targets))

	for _, target := range targets {
		canonical := NormalizeSkillName(target)
		if canonical == "" {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		normalized = append(normalized, canonical)
	}

	return normalized
}
