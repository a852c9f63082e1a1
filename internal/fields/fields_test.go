package fields

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
	"github.com/jonathan/resume-extractor/internal/types"
)

var testNow = time.Date(2025, time.October, 26, 12, 0, 0, 0, time.UTC)

func testEnv() Env {
	return Env{
		Library: patterns.Default(),
		Parser:  dates.Parser{Clock: dates.Fixed(testNow)},
	}
}

func doc(text string) *types.Document {
	return types.NewDocument(text, nil)
}

func TestEmailExtractor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled wins over earlier address", "Contact me at old@site.org\nEmail: jane@example.com", "jane@example.com"},
		{"first unlabelled address", "reach john.doe@mail.co.in today or other@x.com", "john.doe@mail.co.in"},
		{"hyphenated label", "E-mail - dev@corp.io", "dev@corp.io"},
		{"label inside local part", "myemail.box@x.com", "myemail.box@x.com"},
		{"local part starting with label", "write to email.box@x.com", "email.box@x.com"},
		{"none", "no address here", types.NotFound},
	}

	e := NewEmailExtractor(testEnv())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, types.Text(tt.want), e.Extract(doc(tt.text), false))
		})
	}
}

func TestPhoneExtractor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"indian prefix wins over earlier match", "Call 555-123-4567 or +91 9876543210", "+91 9876543210"},
		{"bare mobile", "Mobile 9876543210", "9876543210"},
		{"dotted local", "Office: 555.123.4567", "555.123.4567"},
		{"none", "no digits", types.NotFound},
	}

	p := NewPhoneExtractor(testEnv())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, types.Text(tt.want), p.Extract(doc(tt.text), false))
		})
	}
}

func TestNameExtractor(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		entities []types.Entity
		want     string
	}{
		{"upper-case first line", "JOHN DOE\njohn@example.com", nil, "JOHN DOE"},
		{"capitalized first line", "Jane Doe\njane@example.com", nil, "Jane Doe"},
		{"line above contact", "Resume\nPriya Sharma\npriya@example.com", nil, "Priya Sharma"},
		{"labelled", "profile summary goes here\nName: Ravi Kumar", nil, "Ravi Kumar"},
		{
			"person entity",
			"skills: go and sql",
			[]types.Entity{{Text: "Anita Rao", Start: 0, End: 9, Label: types.LabelPerson}},
			"Anita Rao",
		},
		{
			"institution entity rejected",
			"skills: go and sql",
			[]types.Entity{{Text: "Delhi University", Start: 0, End: 16, Label: types.LabelPerson}},
			types.NotFound,
		},
		{"nothing", "lowercase only text", nil, types.NotFound},
	}

	n := NewNameExtractor(testEnv())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Extract(types.NewDocument(tt.text, tt.entities), false)
			assert.Equal(t, types.Text(tt.want), got)
		})
	}
}

func TestSkillsExtractor(t *testing.T) {
	s := NewSkillsExtractor(testEnv())

	got := s.Extract(doc("Proficient in C/C++ and Python."), false)
	assert.Equal(t, []string{"c", "c++", "python"}, got.Items)

	got = s.Extract(doc("• Java\n• Docker, Kubernetes"), false)
	assert.Equal(t, []string{"docker", "java", "kubernetes"}, got.Items)

	got = s.Extract(doc("nothing relevant"), false)
	assert.Equal(t, types.KindList, got.Kind)
	assert.Empty(t, got.Items)
}

func TestExperienceExtractor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"summed ranges", "Jan 2018 - Dec 2019\nJan 2020 - Present", "7 years 8 months"},
		{"stated years exceed ranges", "Over 10+ years of experience in Java. Jan 2020 - Dec 2020", "10+ years"},
		{"ranges exceed stated years", "2 years of experience\nJan 2018 - Dec 2019\nJan 2020 - Present", "7 years 8 months"},
		{"implausible stated years ignored", "Experience: 60 years", "0 years 0 months"},
		{"nothing", "no dates", "0 years 0 months"},
	}

	e := NewExperienceExtractor(testEnv())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, types.Text(tt.want), e.Extract(doc(tt.text), false))
		})
	}
}

func TestLocationExtractor_CurrentBlockOverride(t *testing.T) {
	text := "JOHN DOE\njohn@example.com\nAmazon (Noida) - Present\nStudied at Pune University"

	got := NewLocationExtractor(testEnv()).Extract(doc(text), false)
	assert.Equal(t, types.Text("Noida"), got)
}

func TestLocationExtractor_Vote(t *testing.T) {
	l := NewLocationExtractor(testEnv())

	got := l.Extract(doc("Location: Bengaluru, India\nPriya Sharma"), false)
	assert.Equal(t, types.Text("Bangalore"), got)

	entities := []types.Entity{{Text: "Hyderabad", Start: 10, End: 19, Label: types.LabelGPE}}
	got = l.Extract(types.NewDocument("Location: Hyderabad\nOpen to remote roles.", entities), false)
	assert.Equal(t, types.Text("Hyderabad"), got)

	assert.Equal(t, types.NotFoundText(), l.Extract(doc("no places here"), false))
}

func TestCompanyExtractor(t *testing.T) {
	c := NewCompanyExtractor(testEnv())

	got := c.Extract(doc("Company: Globex Corporation Pvt Ltd\nWorked at Initech Solutions (Pune) as a developer"), false)
	assert.Equal(t, []string{"Globex Corporation Pvt Ltd", "Initech Solutions"}, got.Items)

	text := "Company: Acme\n" +
		"Organization: Client project for Big Bank\n" +
		"<tr><td>Tata Consultancy Services</td></tr>\n" +
		"Company FROM TO DURATION\n" +
		"Employer: Wipro Technologies, Bangalore"
	got = c.Extract(doc(text), false)
	assert.Equal(t, []string{"Tata Consultancy Services", "Wipro Technologies"}, got.Items)
}

const workHistory = "JANE DOE\njane.doe@example.com\n+91 9876543210\nSector 62, Noida\nLinkedIn: jane-doe\n\n" +
	`WORK EXPERIENCE
Acme Corp, Noida | Jul'20 - Present
Senior Software Engineer
Built distributed payment services in Go and Kafka.

Beta Systems | 2015-2019
Junior Developer
Maintained internal reporting tools.

EDUCATION
B.Tech, Computer Science`

func TestJobTitleExtractors(t *testing.T) {
	env := testEnv()

	title := NewJobTitleExtractor(env).Extract(doc(workHistory), false)
	assert.Equal(t, types.Text("Senior Software Engineer"), title)

	history := NewJobHistoryExtractor(env).Extract(doc(workHistory), false)
	assert.Equal(t, []string{"Senior Software Engineer", "Junior Developer"}, history.Items)

	assert.Equal(t, types.NotFoundText(), NewJobTitleExtractor(env).Extract(doc("nothing here"), false))
}

func TestTechStackDeriver(t *testing.T) {
	d := NewTechStackDeriver(testEnv())
	assert.Equal(t, []string{Skills}, d.Dependencies())

	prior := types.Result{Skills: types.SortedSet([]string{"python", "linux", "c++", "docker", "java"})}
	got := d.Derive(prior, false)
	assert.Equal(t, []string{"Languages: c++, java, python", "Tools: ", "Platforms: linux"}, got.Items)

	empty := d.Derive(types.Result{Skills: types.SortedSet(nil)}, false)
	assert.Equal(t, types.KindList, empty.Kind)
	assert.Empty(t, empty.Items)

	assert.Empty(t, d.Derive(types.Result{}, false).Items)
}

func TestScoreDeriver(t *testing.T) {
	full := types.Result{
		Name:       types.Text("Jane Doe"),
		Email:      types.Text("jane@example.com"),
		Phone:      types.Text("+91 9876543210"),
		JobHistory: types.List([]string{"Lead", "Senior", "Junior"}),
		Skills:     types.SortedSet([]string{"a", "b", "c", "d", "e"}),
		Companies:  types.SortedSet([]string{"A Co", "B Co", "C Co"}),
	}
	partial := types.Result{
		Name:   types.Text("Jane Doe"),
		Email:  types.Text("jane@example.com"),
		Phone:  types.NotFoundText(),
		Skills: types.SortedSet([]string{"a", "b", "c", "d", "e", "f"}),
	}

	tests := []struct {
		name  string
		prior types.Result
		want  string
	}{
		{"all criteria", full, "5/5"},
		{"missing phone and history", partial, "2/5"},
		{"empty", types.Result{}, "0/5"},
	}

	s := NewScoreDeriver(testEnv())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, types.Text(tt.want), s.Derive(tt.prior, false))
		})
	}

	b := Breakdown(partial)
	assert.True(t, b.Name)
	assert.False(t, b.Contact)
	assert.True(t, b.Skills)
}

func TestExtractors_Idempotent(t *testing.T) {
	r := Default(testEnv())
	d := doc(workHistory)

	for _, name := range r.Names() {
		e, ok := r.Extractor(name)
		if !ok {
			continue
		}
		assert.Equal(t, e.Extract(d, false), e.Extract(d, false), name)
	}
}

func TestDebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	env := testEnv()
	env.Logger = zap.New(core)

	e := NewEmailExtractor(env)
	e.Extract(doc("Email: jane@example.com"), false)
	assert.Zero(t, logs.Len())

	e.Extract(doc("Email: jane@example.com"), true)
	entries := logs.FilterMessage("labelled email matched").All()
	require.Len(t, entries, 1)
	assert.Equal(t, Email, entries[0].LoggerName)
}
