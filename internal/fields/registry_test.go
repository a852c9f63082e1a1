package fields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default(testEnv())

	assert.Equal(t, []string{
		Name, Email, Phone, Location, Skills, Experience,
		JobTitles, JobHistory, Companies, TechStack, Score,
	}, r.Names())
	require.NoError(t, r.Validate())

	_, ok := r.Extractor(Email)
	assert.True(t, ok)
	_, ok = r.Deriver(Email)
	assert.False(t, ok)
	_, ok = r.Deriver(Score)
	assert.True(t, ok)
	assert.False(t, r.Has("salary"))
}

func TestRegistry_Definitions(t *testing.T) {
	defs := Default(testEnv()).Definitions()
	require.Len(t, defs, 11)

	assert.Equal(t, Definition{Name: Name, Label: "Name"}, defs[0])

	tech := defs[9]
	assert.Equal(t, TechStack, tech.Name)
	assert.True(t, tech.Derived)
	assert.Equal(t, []string{Skills}, tech.Dependencies)
}

type orphanDeriver struct{}

func (orphanDeriver) Name() string { return "orphan" }
func (orphanDeriver) Dependencies() []string { return []string{Skills, "missing"} }
func (orphanDeriver) Derive(types.Result, bool) types.Value {
	return types.None()
}

func TestRegistry_ValidateMissingDependency(t *testing.T) {
	r := NewRegistry()
	r.Register(NewSkillsExtractor(testEnv()))
	r.RegisterDeriver(orphanDeriver{})

	err := r.Validate()
	require.Error(t, err)

	var depErr *DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, "orphan", depErr.Field)
	assert.Equal(t, []string{"missing"}, depErr.MissingDependencies)
}

func TestRegistry_ReplaceKeepsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(NewEmailExtractor(testEnv()))
	r.Register(NewPhoneExtractor(testEnv()))
	r.Register(NewEmailExtractor(testEnv()))

	assert.Equal(t, []string{Email, Phone}, r.Names())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Job Titles", Label(JobTitles))
	assert.Equal(t, "Total Experience", Label(Experience))
	assert.Equal(t, "Resume Score", Label(Score))
	assert.Equal(t, "Salary Band", Label("salary_band"))
}
