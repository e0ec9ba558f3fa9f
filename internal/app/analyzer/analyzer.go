// Package analyzer implements the resume intelligence behind the API:
// matching a resume against a job description, suggesting a growth path,
// rewriting weak phrasing and drafting a cover letter. All of it is
// deterministic text analysis, no network calls.
package analyzer

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

type Result struct {
	MatchPercent  float64  `json:"match_percent"`
	MissingSkills []string `json:"missing_skills"`
	Suggestions   []string `json:"suggestions"`
	ATSScore      float64  `json:"ats_score"`
}

type GrowthPath struct {
	Path []string `json:"growth_path"`
}

// knownSkills is a simple, extensible skills list. Swappable for a
// model-backed extractor later without touching the handlers.
var knownSkills = map[string]bool{
	"python": true, "fastapi": true, "flask": true, "django": true,
	"sql": true, "nosql": true, "mongodb": true, "postgresql": true,
	"docker": true, "kubernetes": true, "aws": true, "gcp": true, "azure": true,
	"ci/cd": true, "github actions": true, "unit testing": true, "pytest": true,
	"rest": true, "graphql": true, "redis": true, "celery": true, "rabbitmq": true,
	"nlp": true, "machine learning": true, "data science": true,
	"pandas": true, "numpy": true, "transformers": true,
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#'
}

// normalize lowercases and splits the text, then merges adjacent token
// pairs that form a known two-word skill ("github actions").
func normalize(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isTokenRune(r)
	})
	merged := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		if i+1 < len(tokens) && knownSkills[tokens[i]+" "+tokens[i+1]] {
			merged = append(merged, tokens[i]+" "+tokens[i+1])
			i++
			continue
		}
		merged = append(merged, tokens[i])
	}
	return merged
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func extractSkills(text string) map[string]bool {
	present := make(map[string]bool)
	for _, token := range normalize(text) {
		if knownSkills[token] {
			present[token] = true
		}
	}
	return present
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Analyze scores the resume against the job description on the known
// skills list, falling back to raw token overlap when the description
// names no known skills. ATS score is the match minus a small penalty
// per missing skill.
func Analyze(resume, jobDesc string) Result {
	resumeSkills := extractSkills(resume)
	jobSkills := extractSkills(jobDesc)

	var matchPercent float64
	missing := []string{}
	if len(jobSkills) == 0 {
		resumeTokens := tokenSet(normalize(resume))
		jobTokens := tokenSet(normalize(jobDesc))
		overlap := 0
		for t := range jobTokens {
			if resumeTokens[t] {
				overlap++
			}
		}
		denom := len(jobTokens)
		if denom < 1 {
			denom = 1
		}
		matchPercent = round1(100 * float64(overlap) / float64(denom))
	} else {
		overlap := 0
		for s := range jobSkills {
			if resumeSkills[s] {
				overlap++
			} else {
				missing = append(missing, s)
			}
		}
		sort.Strings(missing)
		matchPercent = round1(100 * float64(overlap) / float64(len(jobSkills)))
	}

	var suggestions []string
	if matchPercent < 60 {
		suggestions = append(suggestions,
			"Highlight relevant experience and quantify achievements with metrics (%, $, time).")
	}
	if len(missing) > 0 {
		top := missing
		if len(top) > 8 {
			top = top[:8]
		}
		suggestions = append(suggestions,
			"Consider learning or emphasizing: "+strings.Join(top, ", "))
	}
	if resumeSkills["python"] && !resumeSkills["fastapi"] {
		suggestions = append(suggestions, "Add FastAPI projects or APIs to showcase backend skills.")
	}
	if resumeSkills["docker"] && !resumeSkills["kubernetes"] {
		suggestions = append(suggestions, "Explore Kubernetes basics to complement Docker skills.")
	}
	if len(suggestions) == 0 {
		suggestions = []string{"Great alignment. Ensure resume is concise (1-2 pages) and well-formatted."}
	}

	penalty := 5 * float64(len(missing))
	if penalty > 30 {
		penalty = 30
	}
	ats := matchPercent - penalty
	if ats < 0 {
		ats = 0
	}
	if ats > 100 {
		ats = 100
	}

	return Result{
		MatchPercent:  matchPercent,
		MissingSkills: missing,
		Suggestions:   suggestions,
		ATSScore:      round1(ats),
	}
}

// SuggestGrowthPath reads the resume's skill coverage and proposes the
// next learning steps, with a generic bootstrap path when no known
// skills are found.
func SuggestGrowthPath(resume string) GrowthPath {
	skills := extractSkills(resume)

	var path []string
	if skills["fastapi"] || skills["flask"] {
		path = append(path,
			"Deepen API design: auth, rate limiting, versioning, observability.",
			"Add async patterns, background jobs (Celery/RQ), and caching (Redis).")
	}
	if skills["python"] {
		path = append(path, "Master typing (PEP 484), testing (pytest), and packaging.")
	}
	if skills["aws"] || skills["gcp"] || skills["azure"] {
		path = append(path, "Build CI/CD pipelines and infrastructure as code (Terraform).")
	}
	if skills["nlp"] || skills["machine learning"] {
		path = append(path, "Productionize ML: model serving, monitoring, and data pipelines.")
	}

	if len(path) == 0 {
		path = []string{
			"Identify target role, collect 5 job descriptions, and extract required skills.",
			"Close top 3 skill gaps via focused projects and certifications.",
			"Publish projects with READMEs, tests, and live demos (Render/Heroku/Fly).",
		}
	}
	return GrowthPath{Path: path}
}

// weakPhrases maps passive resume language to action verbs. Longest
// phrases first so "was responsible for" wins over "responsible for".
var weakPhrases = []struct{ from, to string }{
	{"was responsible for", "owned"},
	{"is responsible for", "owns"},
	{"responsible for", "owned"},
	{"worked on", "delivered"},
	{"helped with", "drove"},
	{"helped to", "drove efforts to"},
	{"participated in", "contributed to"},
	{"was involved in", "contributed to"},
	{"in charge of", "led"},
	{"tasked with", "led"},
	{"duties included", "achievements include"},
}

// Optimize rewrites the resume into a summary-led bullet list: every
// non-empty line becomes a "- " bullet under a fixed SUMMARY header,
// with weak phrasing swapped for action verbs along the way. It never
// invents content beyond the header.
func Optimize(resume string) string {
	var bullets []string
	for _, line := range strings.Split(resume, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strengthen(line)
		if !strings.HasPrefix(line, "-") {
			line = "- " + line
		}
		bullets = append(bullets, line)
	}
	header := "SUMMARY\nResults-driven professional with measurable achievements.\n"
	return header + strings.Join(bullets, "\n")
}

func strengthen(line string) string {
	lower := strings.ToLower(line)
	for _, p := range weakPhrases {
		for {
			i := strings.Index(lower, p.from)
			if i < 0 {
				break
			}
			line = line[:i] + p.to + line[i+len(p.from):]
			lower = strings.ToLower(line)
		}
	}
	return line
}

// CoverLetter drafts a short cover letter anchored on the skill
// overlap between the resume and the job description.
func CoverLetter(resume, jobDesc string) string {
	resumeSkills := extractSkills(resume)
	jobSkills := extractSkills(jobDesc)

	var overlap []string
	for s := range jobSkills {
		if resumeSkills[s] {
			overlap = append(overlap, s)
		}
	}
	sort.Strings(overlap)

	highlights := "relevant experience"
	if len(overlap) > 0 {
		highlights = strings.Join(overlap, ", ")
	}

	return "Dear Hiring Manager,\n\n" +
		"I am excited to apply for this role. My background aligns with your needs, including " +
		highlights + ". I deliver impact through ownership, collaboration, and measurable outcomes.\n\n" +
		"Sincerely,\nYour Name"
}
