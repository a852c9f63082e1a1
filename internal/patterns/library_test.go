package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skillMatcher(t *testing.T, lib *Library, skill string) SkillMatcher {
	t.Helper()
	for _, m := range lib.Skills() {
		if m.Skill == skill {
			return m
		}
	}
	require.Failf(t, "skill not in library", "%s", skill)
	return SkillMatcher{}
}

func TestSkillMatcher_Boundaries(t *testing.T) {
	lib := Default()

	tests := []struct {
		name     string
		skill    string
		text     string
		expected bool
	}{
		{"c alone", "c", "Languages: C\nJava", true},
		{"c inside c++", "c", "Languages: C++", false},
		{"c inside c#", "c", "Languages: C#", false},
		{"c++ alone", "c++", "C++ and Go", true},
		{"c++ case insensitive", "c++", "c++", true},
		{"java not javascript", "java", "JavaScript only", false},
		{"multi word skill", "spring boot", "Spring  Boot services", true},
		{"dotted skill", "node.js", "Built with Node.js.", true},
		{"rest inside word", "rest", "interest", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := skillMatcher(t, lib, tt.skill)
			assert.Equal(t, tt.expected, m.MatchString(tt.text))
		})
	}
}

func TestLibrary_CanonicalCity(t *testing.T) {
	lib := Default()

	assert.Equal(t, "noida", lib.CanonicalCity("Noida, India"))
	assert.Equal(t, "gurgaon", lib.CanonicalCity("Gurugram"))
	assert.Equal(t, "delhi", lib.CanonicalCity("New Delhi NCR"))
	assert.Equal(t, "bangalore", lib.CanonicalCity(" Bengaluru "))
	assert.True(t, lib.IsCity(lib.CanonicalCity("Trivandrum")))
}

func TestLibrary_CityPattern(t *testing.T) {
	lib := Default()
	re := lib.CityPattern()

	assert.Equal(t, "New Delhi", re.FindString("Office in New Delhi"))
	assert.False(t, re.MatchString("a clear goal"), "goa must not match inside goal")
}

func TestLibrary_IsCurrentToken(t *testing.T) {
	lib := Default()

	for _, tok := range []string{"Present", "till date", "Ongoing", "--", "Current"} {
		assert.True(t, lib.IsCurrentToken(tok), tok)
	}
	for _, tok := range []string{"Dec 2019", "2019", "05/2021"} {
		assert.False(t, lib.IsCurrentToken(tok), tok)
	}
}

func TestLibrary_TitleHelpers(t *testing.T) {
	lib := Default()

	assert.True(t, lib.HasTitleIndicator("Senior Software Engineer"))
	assert.True(t, lib.HasTitleIndicator("Software Engineers"))
	assert.False(t, lib.HasTitleIndicator("Amazon Development Center"))

	expanded, ok := lib.ExpandAbbreviation("Sr.")
	assert.True(t, ok)
	assert.Equal(t, "Senior", expanded)

	assert.True(t, lib.IsAcronym("qa"))
	assert.True(t, lib.IsBoilerplate("  Curriculum Vitae "))
	assert.True(t, lib.MentionsInstitution("Pune University"))
}

func TestNew_Extras(t *testing.T) {
	lib := New(Extras{
		Skills:      []string{" Golang "},
		Cities:      []string{"Leeds"},
		CityAliases: map[string]string{"Bombay": "Mumbai"},
	})

	m := skillMatcher(t, lib, "golang")
	assert.True(t, m.MatchString("Golang services"))
	assert.True(t, lib.IsCity("leeds"))
	assert.Equal(t, "mumbai", lib.CanonicalCity("Bombay"))

	// defaults are untouched
	assert.False(t, Default().IsCity("leeds"))
}

func TestTechStackCategories_Disjoint(t *testing.T) {
	for _, l := range defaultLanguages {
		assert.NotContains(t, defaultTools, l)
		assert.NotContains(t, defaultPlatforms, l)
	}
	for _, tool := range defaultTools {
		assert.NotContains(t, defaultPlatforms, tool)
	}
}
