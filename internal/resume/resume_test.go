package resume

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultResumeData(t *testing.T) {
	data := DefaultResumeData()

	if data.Experiences == nil || data.Education == nil || data.Skills == nil ||
		data.Projects == nil || data.Certifications == nil {
		t.Fatal("default resume must use empty slices, not nil")
	}
	if len(data.Experiences) != 0 {
		t.Errorf("expected no experiences, got %d", len(data.Experiences))
	}
}

func TestDefaultTemplateSettings(t *testing.T) {
	settings := DefaultTemplateSettings()

	if settings.Template != TemplateModern {
		t.Errorf("expected modern template, got %s", settings.Template)
	}
	if settings.PrimaryColor != "#1e3a5f" {
		t.Errorf("unexpected primary color %s", settings.PrimaryColor)
	}
	if settings.FontSize != FontMedium {
		t.Errorf("expected medium font size, got %s", settings.FontSize)
	}
}

func TestSearchTextIsLowercase(t *testing.T) {
	data := DefaultResumeData()
	data.PersonalInfo.FullName = "ADA LOVELACE"
	data.Skills = append(data.Skills, Skill{ID: "s1", Name: "KuBerNeTes"})

	text := SearchText(data)

	if text != strings.ToLower(text) {
		t.Error("search text must be fully lower-cased")
	}
	if !strings.Contains(text, "ada lovelace") {
		t.Error("search text must contain the lower-cased name")
	}
	if !strings.Contains(text, "kubernetes") {
		t.Error("search text must contain the lower-cased skill")
	}
}

func TestSearchTextIsDeterministic(t *testing.T) {
	data := DefaultResumeData()
	data.PersonalInfo.Summary = "Builds reliable systems"
	data.Experiences = append(data.Experiences, Experience{
		ID:      "exp-1",
		Company: "Acme",
	})

	if SearchText(data) != SearchText(data) {
		t.Error("search text must be identical for identical input")
	}
}

func TestSearchTextIncludesAllSections(t *testing.T) {
	data := DefaultResumeData()
	data.Experiences = append(data.Experiences, Experience{Company: "Initech"})
	data.Education = append(data.Education, Education{Institution: "State University"})
	data.Projects = append(data.Projects, Project{Name: "Sidecar Proxy"})
	data.Certifications = append(data.Certifications, Certification{Name: "CKA"})

	text := SearchText(data)
	for _, want := range []string{"initech", "state university", "sidecar proxy", "cka"} {
		if !strings.Contains(text, want) {
			t.Errorf("search text missing %q", want)
		}
	}
}

func TestContainsKeyword(t *testing.T) {
	text := SearchText(DefaultResumeData())

	if ContainsKeyword(text, "Experiences") != true {
		t.Error("keyword matching must be case-insensitive")
	}
	if ContainsKeyword(text, "nonexistent-keyword") {
		t.Error("unexpected keyword match")
	}
}

func TestResumeDataJSONRoundTrip(t *testing.T) {
	data := DefaultResumeData()
	data.PersonalInfo.FullName = "Sam Okafor"
	data.TargetRole = "Engineer"
	data.Skills = append(data.Skills, Skill{ID: "s1", Name: "Go", Level: SkillExpert, Category: "Languages"})

	encoded, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded ResumeData
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.PersonalInfo.FullName != "Sam Okafor" {
		t.Errorf("full name lost in round trip: %q", decoded.PersonalInfo.FullName)
	}
	if decoded.Skills[0].Level != SkillExpert {
		t.Errorf("skill level lost in round trip: %q", decoded.Skills[0].Level)
	}
}
