package fields

import (
	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/jobtitle"
	"github.com/jonathan/resume-extractor/internal/types"
)

// JobTitleExtractor reports the title of the most recent job
type JobTitleExtractor struct {
	env     Env
	machine *jobtitle.Machine
}

// NewJobTitleExtractor creates the job-title extractor
func NewJobTitleExtractor(env Env) *JobTitleExtractor {
	return &JobTitleExtractor{
		env:     env,
		machine: jobtitle.New(env.library(), env.Parser, nil),
	}
}

// Name returns the field name
func (j *JobTitleExtractor) Name() string { return JobTitles }

// Extract returns the latest job title or "Not found"
func (j *JobTitleExtractor) Extract(doc *types.Document, debug bool) types.Value {
	log := j.env.debugLogger(JobTitles, debug)
	out := j.machine.WithLogger(log).Run(doc.Text)
	log.Debug("job title outcome",
		zap.Stringer("state", out.State),
		zap.String("rule", out.Rule),
		zap.Int("entries", len(out.Entries)),
		zap.Int("selected", out.Selected))
	return types.TextOrNotFound(out.Title)
}

// JobHistoryExtractor reports the titles of every job, most recent first
type JobHistoryExtractor struct {
	env     Env
	machine *jobtitle.Machine
}

// NewJobHistoryExtractor creates the job-history extractor
func NewJobHistoryExtractor(env Env) *JobHistoryExtractor {
	return &JobHistoryExtractor{
		env:     env,
		machine: jobtitle.New(env.library(), env.Parser, nil),
	}
}

// Name returns the field name
func (j *JobHistoryExtractor) Name() string { return JobHistory }

// Extract returns the distinct titles in recency order
func (j *JobHistoryExtractor) Extract(doc *types.Document, debug bool) types.Value {
	log := j.env.debugLogger(JobHistory, debug)
	titles := j.machine.WithLogger(log).History(doc.Text)
	log.Debug("job history", zap.Strings("titles", titles))
	return types.List(titles)
}
