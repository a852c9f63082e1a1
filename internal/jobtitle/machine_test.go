package jobtitle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/patterns"
)

var testNow = time.Date(2025, time.October, 26, 0, 0, 0, 0, time.UTC)

// contact lines keep the header check from firing on the body under test
const contactHeader = "JANE DOE\njane.doe@example.com\n+91 9876543210\nSector 62, Noida\nLinkedIn: jane-doe\n\n"

func newMachine() *Machine {
	return New(patterns.Default(), dates.Parser{Clock: dates.Fixed(testNow)}, nil)
}

const currentVsPast = contactHeader + `WORK EXPERIENCE
Acme Corp, Noida | Jul'20 - Present
Senior Software Engineer
Built distributed payment services in Go and Kafka.

Beta Systems | 2015-2019
Junior Developer
Maintained internal reporting tools.

EDUCATION
B.Tech, Computer Science`

func TestRun_CurrentBlockWins(t *testing.T) {
	out := newMachine().Run(currentVsPast)

	require.True(t, out.Found())
	assert.Equal(t, "Senior Software Engineer", out.Title)
	assert.Equal(t, Titled, out.State)
	assert.Equal(t, "top_lines", out.Rule)

	require.Len(t, out.Entries, 2)
	assert.Equal(t, 0, out.Selected)

	cur := out.Entries[0]
	assert.True(t, cur.IsCurrent)
	assert.True(t, cur.Dated)
	require.NotNil(t, cur.StartDate)
	assert.Equal(t, time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC), *cur.StartDate)
	require.NotNil(t, cur.EndDate)
	assert.Equal(t, testNow, *cur.EndDate)

	past := out.Entries[1]
	assert.False(t, past.IsCurrent)
	require.NotNil(t, past.EndDate)
	assert.Equal(t, 2019, past.EndDate.Year())
	assert.Equal(t, "2015-2019", past.DateLabel)
}

func TestRun_EntryOffsetsAreAbsolute(t *testing.T) {
	out := newMachine().Run(currentVsPast)
	require.NotEmpty(t, out.Entries)
	for _, e := range out.Entries {
		require.GreaterOrEqual(t, e.Start, 0)
		assert.Equal(t, e.Text[:10], currentVsPast[e.Start:e.Start+10])
	}
}

func TestRun_LatestPastBlock(t *testing.T) {
	text := contactHeader + `PROFESSIONAL EXPERIENCE
Jan 2016 - Dec 2017
Globex Labs
Software Developer
Built billing systems.

Jan 2018 - Mar 2020
Initech Solutions
Lead Engineer
Owned the data platform.
`
	out := newMachine().Run(text)
	require.True(t, out.Found())
	assert.Equal(t, "Lead Engineer", out.Title)
	assert.Equal(t, 1, out.Selected)
}

func TestRun_CurrentTieBrokenByLatestStart(t *testing.T) {
	text := contactHeader + `EMPLOYMENT HISTORY
Mar 2019 - Present
Advisory board consultant for a health startup.

Aug 2021 - Present
Staff Engineer
Owns the search infrastructure roadmap.
`
	out := newMachine().Run(text)
	require.True(t, out.Found())
	assert.Equal(t, 1, out.Selected)
	assert.Equal(t, "Staff Engineer", out.Title)
}

func TestRun_SectionEndsAtQualifiedHeader(t *testing.T) {
	text := contactHeader + `WORK EXPERIENCE
Acme Corp, Noida | Jan 2015 - Dec 2019
Senior Software Engineer
Built distributed payment services in Go and Kafka.

TECHNICAL SKILLS
Go, Python, Kafka

PERSONAL PROJECTS
Hobby Tracker | Jan 2021 - Present
Lead Maintainer of an open source tracker app.`

	out := newMachine().Run(text)
	require.True(t, out.Found())
	assert.Equal(t, "Senior Software Engineer", out.Title)
	require.Len(t, out.Entries, 1)
	assert.False(t, out.Entries[0].IsCurrent)
	assert.NotContains(t, out.Entries[0].Text, "Hobby Tracker")
}

func TestRun_SkillsInDescriptionKeepsSection(t *testing.T) {
	text := contactHeader + `WORK EXPERIENCE
Jan 2018 - Present
Lead Engineer
Improved communication skills
Owned the data platform for analytics teams.

Jan 2016 - Dec 2017
Software Developer
Built billing systems for retail clients.

Key Skills & Tools
Go, Kafka

Academic Projects
Campus Portal | Jan 2023 - Present
Project Lead for the student portal.`

	out := newMachine().Run(text)
	require.True(t, out.Found())
	require.Len(t, out.Entries, 2)
	assert.Equal(t, 0, out.Selected)
	assert.Equal(t, "Lead Engineer", out.Title)
}

func TestFindSection_EndHeaders(t *testing.T) {
	const head = "WORK EXPERIENCE\nAcme Corp | Jan 2015 - Dec 2019\nSenior Developer\n"
	tests := []struct {
		line string
		ends bool
	}{
		{"EDUCATION", true},
		{"Education: B.Tech, 2014", true},
		{"TECHNICAL SKILLS", true},
		{"Key Skills", true},
		{"PERSONAL PROJECTS:", true},
		{"Skills & Tools", true},
		{"Core Skills and Tools", true},
		{"• Professional Certifications", true},
		{"Improved communication skills", false},
		{"Used skills in Go and Python daily", false},
		{"Delivered three client projects on time", false},
	}

	m := newMachine()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			sec, ok := m.findSection(head + tt.line + "\nTrailer line")
			require.True(t, ok)
			if tt.ends {
				assert.NotContains(t, sec.text, "Trailer line")
				assert.NotContains(t, sec.text, tt.line)
			} else {
				assert.Contains(t, sec.text, "Trailer line")
			}
		})
	}
}

func TestRun_LabelledTitle(t *testing.T) {
	text := contactHeader + `WORK EXPERIENCE
Jan 2019 - Present
Company: Globex Pvt Ltd
Designation: Sr. Software Engineer - Grade 5
Responsibilities: building APIs for partner integrations`

	out := newMachine().Run(text)
	require.True(t, out.Found())
	assert.Equal(t, "Senior Software Engineer", out.Title)
	assert.Equal(t, "labelled", out.Rule)
}

func TestRun_HeaderStatement(t *testing.T) {
	text := "Rahul Verma\nCurrently working as Senior Data Analyst at Infosys, Pune\n\nWORK EXPERIENCE\nJan 2015 - Dec 2016\nJunior Analyst at Wipro"

	out := newMachine().Run(text)
	require.True(t, out.Found())
	assert.Equal(t, "Senior Data Analyst", out.Title)
	assert.Equal(t, "header", out.Rule)
	assert.Empty(t, out.Entries)
}

func TestRun_FresherFallback(t *testing.T) {
	text := contactHeader + `OBJECTIVE
Seeking a challenging opportunity as an intern in software.

Graduate Engineer Trainee at XYZ Labs
B.Tech 2024`

	out := newMachine().Run(text)
	require.True(t, out.Found())
	assert.Equal(t, "Graduate Engineer Trainee", out.Title)
	assert.Equal(t, "fresher", out.Rule)
}

func TestRun_LineGroupingFallback(t *testing.T) {
	text := contactHeader + `WORK EXPERIENCE
1. Software Engineer at Acme Solutions
Worked on the payments platform for retail banking clients.
2. Associate Developer at Beta Labs
Supported build tooling and release pipelines.
`
	out := newMachine().Run(text)
	require.True(t, out.Found())
	require.Len(t, out.Entries, 2)
	assert.False(t, out.Entries[0].Dated)
	assert.Equal(t, 0, out.Selected)
	assert.Contains(t, out.Title, "Software Engineer")
}

func TestRun_NothingFound(t *testing.T) {
	for _, text := range []string{"", "just some words\nwithout anything useful"} {
		out := newMachine().Run(text)
		assert.False(t, out.Found())
		assert.Equal(t, Failed, out.State)
		assert.Equal(t, "", out.Title)
		assert.Equal(t, -1, out.Selected)
	}
}

func TestRun_DebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newMachine().WithLogger(zap.New(core))

	m.Run(currentVsPast)
	assert.NotZero(t, logs.FilterMessage("latest job selected").Len())
	assert.NotZero(t, logs.FilterMessage("title extracted").Len())
}

func TestHistory(t *testing.T) {
	history := newMachine().History(currentVsPast)
	assert.Equal(t, []string{"Senior Software Engineer", "Junior Developer"}, history)

	assert.Empty(t, newMachine().History("nothing here"))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "titled", Titled.String())
	assert.Equal(t, "no_section", NoSection.String())
	assert.Equal(t, "unknown", State(42).String())
}
