package analyzer

import (
	"strings"
	"testing"
)

// --- Analyze ---

func TestAnalyze_SkillMatch(t *testing.T) {
	res := Analyze("python docker engineer", "needs python docker kubernetes aws")
	if res.MatchPercent != 50.0 {
		t.Fatalf("expected 50.0, got %v", res.MatchPercent)
	}
	want := []string{"aws", "kubernetes"}
	if len(res.MissingSkills) != len(want) {
		t.Fatalf("expected missing %v, got %v", want, res.MissingSkills)
	}
	for i := range want {
		if res.MissingSkills[i] != want[i] {
			t.Fatalf("missing skills not sorted: %v", res.MissingSkills)
		}
	}
	// 50 - 5 per missing skill
	if res.ATSScore != 40.0 {
		t.Fatalf("expected ats_score 40.0, got %v", res.ATSScore)
	}
}

func TestAnalyze_FullMatchSuggestsNothingToFix(t *testing.T) {
	res := Analyze("python fastapi", "python fastapi")
	if res.MatchPercent != 100.0 {
		t.Fatalf("expected 100.0, got %v", res.MatchPercent)
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.MissingSkills)
	}
	if res.ATSScore != 100.0 {
		t.Fatalf("expected ats_score 100.0, got %v", res.ATSScore)
	}
	if len(res.Suggestions) != 1 || !strings.HasPrefix(res.Suggestions[0], "Great alignment.") {
		t.Fatalf("expected the alignment suggestion, got %v", res.Suggestions)
	}
}

func TestAnalyze_TokenOverlapFallback(t *testing.T) {
	// no known skills anywhere, falls back to raw token overlap
	res := Analyze("go is fun", "go makes fun tools")
	if res.MatchPercent != 50.0 {
		t.Fatalf("expected 50.0 from 2/4 token overlap, got %v", res.MatchPercent)
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("fallback path reports no missing skills, got %v", res.MissingSkills)
	}
}

func TestAnalyze_LowMatchSuggestions(t *testing.T) {
	res := Analyze("python docker", "kubernetes aws gcp python docker")
	var hasMetrics, hasLearning, hasFastAPI, hasKubernetes bool
	for _, s := range res.Suggestions {
		switch {
		case strings.HasPrefix(s, "Highlight relevant experience"):
			hasMetrics = true
		case strings.HasPrefix(s, "Consider learning or emphasizing: "):
			hasLearning = true
			if !strings.Contains(s, "aws, gcp, kubernetes") {
				t.Fatalf("missing skills not listed in order: %q", s)
			}
		case strings.Contains(s, "FastAPI"):
			hasFastAPI = true
		case strings.Contains(s, "Kubernetes basics"):
			hasKubernetes = true
		}
	}
	if !hasMetrics || !hasLearning || !hasFastAPI || !hasKubernetes {
		t.Fatalf("expected all four suggestion rules to fire, got %v", res.Suggestions)
	}
}

func TestAnalyze_ATSPenaltyCapped(t *testing.T) {
	res := Analyze("", "python fastapi flask django sql nosql mongodb postgresql docker kubernetes")
	if res.MatchPercent != 0.0 {
		t.Fatalf("expected 0.0 match, got %v", res.MatchPercent)
	}
	// penalty capped at 30 and score floored at 0
	if res.ATSScore != 0.0 {
		t.Fatalf("expected ats_score 0.0, got %v", res.ATSScore)
	}
}

func TestAnalyze_EmptyJobDescription(t *testing.T) {
	res := Analyze("anything at all", "")
	if res.MatchPercent != 0.0 {
		t.Fatalf("expected 0.0 for empty job description, got %v", res.MatchPercent)
	}
	if res.MissingSkills == nil || len(res.MissingSkills) != 0 {
		t.Fatalf("expected empty non-nil missing skills, got %v", res.MissingSkills)
	}
}

func TestExtractSkills_MergesTwoWordSkills(t *testing.T) {
	skills := extractSkills("CI via GitHub Actions and some Machine Learning")
	if !skills["github actions"] {
		t.Fatalf("expected github actions, got %v", skills)
	}
	if !skills["machine learning"] {
		t.Fatalf("expected machine learning, got %v", skills)
	}
}

func TestNormalize_SpecialCharTokens(t *testing.T) {
	got := normalize("C++ and C# developer")
	want := []string{"c++", "and", "c#", "developer"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

// --- SuggestGrowthPath ---

func TestSuggestGrowthPath_TracksFireInOrder(t *testing.T) {
	path := SuggestGrowthPath("python fastapi on aws with nlp").Path
	want := []string{
		"Deepen API design: auth, rate limiting, versioning, observability.",
		"Add async patterns, background jobs (Celery/RQ), and caching (Redis).",
		"Master typing (PEP 484), testing (pytest), and packaging.",
		"Build CI/CD pipelines and infrastructure as code (Terraform).",
		"Productionize ML: model serving, monitoring, and data pipelines.",
	}
	if len(path) != len(want) {
		t.Fatalf("expected %d steps, got %v", len(want), path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("step %d: expected %q, got %q", i, want[i], path[i])
		}
	}
}

func TestSuggestGrowthPath_DefaultPath(t *testing.T) {
	path := SuggestGrowthPath("no recognizable tooling here").Path
	if len(path) != 3 {
		t.Fatalf("expected the 3-step default path, got %v", path)
	}
	if !strings.HasPrefix(path[0], "Identify target role") {
		t.Fatalf("unexpected first default step: %q", path[0])
	}
}

// --- Optimize ---

func TestOptimize_BulletizesUnderSummaryHeader(t *testing.T) {
	got := Optimize("Shipped the billing system\n\n- Already a bullet\nMentored juniors")
	want := "SUMMARY\nResults-driven professional with measurable achievements.\n" +
		"- Shipped the billing system\n- Already a bullet\n- Mentored juniors"
	if got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestOptimize_ReplacesWeakPhrases(t *testing.T) {
	got := Optimize("Responsible for the billing system")
	if !strings.Contains(got, "- owned the billing system") {
		t.Fatalf("weak phrase survived: %q", got)
	}
}

func TestOptimize_LongestPhraseWins(t *testing.T) {
	got := Optimize("Was responsible for deployments")
	if !strings.Contains(got, "- owned deployments") {
		t.Fatalf("unexpected rewrite: %q", got)
	}
}

func TestOptimize_EmptyResume(t *testing.T) {
	got := Optimize("")
	if got != "SUMMARY\nResults-driven professional with measurable achievements.\n" {
		t.Fatalf("unexpected output for empty resume: %q", got)
	}
}

// --- CoverLetter ---

func TestCoverLetter_ListsSortedSkillOverlap(t *testing.T) {
	letter := CoverLetter("python docker engineer", "docker python shop")
	if !strings.Contains(letter, "including docker, python.") {
		t.Fatalf("letter should list the sorted overlap:\n%s", letter)
	}
	if !strings.HasPrefix(letter, "Dear Hiring Manager,") {
		t.Fatalf("letter missing salutation:\n%s", letter)
	}
	if !strings.HasSuffix(letter, "Sincerely,\nYour Name") {
		t.Fatalf("letter missing signoff:\n%s", letter)
	}
}

func TestCoverLetter_NoOverlap(t *testing.T) {
	letter := CoverLetter("", "kubernetes")
	if !strings.Contains(letter, "including relevant experience.") {
		t.Fatalf("expected the generic highlight:\n%s", letter)
	}
}
