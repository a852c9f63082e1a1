package jobtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	m := newMachine()

	tests := []struct {
		raw      string
		expected string
	}{
		{"Senior Software Engineer", "Senior Software Engineer"},
		{"SENIOR QA ENGINEER", "Senior QA Engineer"},
		{"lead developer - level 3", "Lead Developer"},
		{"Sr. Software Engineer - Grade 5", "Senior Software Engineer"},
		{"Mgr (Remote)", "Manager"},
		{"Developer (Contract) (Team A)", "Developer"},
		{"Project Manager, ", "Project Manager"},
		{": Technical Lead – Payments", "Technical Lead Payments"},
		{"VP of Engineering", "Vice President of Engineering"},
		{"head of it", "Head Of IT"},
		{"sr. software engineer", "Senior Software Engineer"},
		{"SR. QA LEAD", "Senior QA Lead"},
		{"jr developer", "Junior Developer"},
		{"ab", ""},
		{"12345", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.CleanTitle(tt.raw))
		})
	}
}

func TestIsSingleCase(t *testing.T) {
	assert.True(t, isSingleCase("engineer"))
	assert.True(t, isSingleCase("QA ENGINEER 2"))
	assert.False(t, isSingleCase("Engineer"))
	assert.False(t, isSingleCase("1234"))
}
