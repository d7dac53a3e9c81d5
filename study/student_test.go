package study

import (
	"testing"

	"github.com/sky-flux/nova"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures(t *testing.T) (*Optimizer, *nova.Generator) {
	t.Helper()
	opt, err := NewOptimizer(OptimizerConfig{})
	require.NoError(t, err)
	gen, err := nova.NewGenerator(nova.GeneratorConfig{Seed: 42})
	require.NoError(t, err)
	return opt, gen
}

func TestSubjectValidate(t *testing.T) {
	assert.NoError(t, Subject{Name: "Math", DifficultyWeight: 1}.Validate())
	for _, s := range []Subject{
		{Name: "", DifficultyWeight: 1},
		{Name: "Math", DifficultyWeight: 0},
		{Name: "Math", DifficultyWeight: -0.5},
	} {
		assert.ErrorIs(t, s.Validate(), nova.ErrInvalidConfiguration, "%+v", s)
	}
}

func TestEnrollOrder(t *testing.T) {
	s := NewStudent("Student_1")
	for _, sub := range DefaultSubjects {
		s.Enroll(sub)
	}
	assert.Equal(t, DefaultSubjects, s.Subjects())
}

func TestEnrollReplacesInPlace(t *testing.T) {
	s := NewStudent("Student_1")
	s.Enroll(Subject{Name: "Math", DifficultyWeight: 1})
	s.Enroll(Subject{Name: "Science", DifficultyWeight: 0.9})
	s.Enroll(Subject{Name: "Math", DifficultyWeight: 1.2})

	subs := s.Subjects()
	require.Len(t, subs, 2)
	assert.Equal(t, "Math", subs[0].Name)
	assert.Equal(t, 1.2, subs[0].DifficultyWeight)
}

func TestStudyRecords(t *testing.T) {
	opt, gen := fixtures(t)
	s := NewStudent("Student_1")
	for _, sub := range DefaultSubjects {
		s.Enroll(sub)
	}
	assert.Empty(t, s.Records())

	s.Study(opt, gen)
	records := s.Records()
	require.Len(t, records, len(DefaultSubjects))
	for i, r := range records {
		assert.Equal(t, DefaultSubjects[i].Name, r.Subject)
		assert.InDelta(t, opt.Optimize(r.Parameters), r.Gain, 1e-12)
		assert.Equal(t, opt.ClassifyStage(r.Gain), r.Stage)

		got, ok := s.Record(r.Subject)
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}
	_, ok := s.Record("History")
	assert.False(t, ok)
}

func TestStudyAppliesDifficultyWeight(t *testing.T) {
	opt, gen := fixtures(t)
	plain := NewStudent("Student_1")
	plain.Enroll(Subject{Name: "Math", DifficultyWeight: 1})
	plain.Study(opt, gen)

	hard := NewStudent("Student_1")
	hard.Enroll(Subject{Name: "Math", DifficultyWeight: 0.5})
	hard.Study(opt, gen)

	p, _ := plain.Record("Math")
	h, _ := hard.Record("Math")
	assert.InDelta(t, p.Parameters.Accuracy*0.5, h.Parameters.Accuracy, 1e-12)
	assert.Equal(t, p.Parameters.Engagement, h.Parameters.Engagement)
	assert.Less(t, h.Gain, p.Gain)
}

func TestStudyPairIndependentOfOtherSubjects(t *testing.T) {
	opt, gen := fixtures(t)
	alone := NewStudent("Student_3")
	alone.Enroll(DefaultSubjects[1])
	alone.Study(opt, gen)

	all := NewStudent("Student_3")
	for _, sub := range DefaultSubjects {
		all.Enroll(sub)
	}
	all.Study(opt, gen)

	a, _ := alone.Record("Science")
	b, _ := all.Record("Science")
	assert.Equal(t, a, b)
}

func TestStudyTwiceIsStable(t *testing.T) {
	opt, gen := fixtures(t)
	s := NewStudent("Student_1")
	s.Enroll(DefaultSubjects[0])
	s.Study(opt, gen)
	first := s.Records()
	s.Study(opt, gen)
	assert.Equal(t, first, s.Records())
}
