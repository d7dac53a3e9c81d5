package study

import (
	"encoding/json"

	"github.com/sky-flux/nova"
)

// Record is the outcome of one subject for one student.
type Record struct {
	Subject    string            `json:"subject"`
	Parameters nova.ParameterSet `json:"parameters"`
	Gain       float64           `json:"learning_gain"`
	Stage      nova.Stage        `json:"stage"`
}

// Student is a learner enrolled in a set of subjects.
type Student struct {
	Name string

	subjects []Subject
	position map[string]int // subject name → index in subjects
	records  map[string]Record
}

// NewStudent creates a student with no subjects.
func NewStudent(name string) *Student {
	return &Student{
		Name:     name,
		position: make(map[string]int),
		records:  make(map[string]Record),
	}
}

// Enroll adds a subject. Enrolling a name twice replaces the earlier
// subject in place and drops any record it produced.
func (s *Student) Enroll(sub Subject) {
	if i, ok := s.position[sub.Name]; ok {
		s.subjects[i] = sub
		delete(s.records, sub.Name)
		return
	}
	s.position[sub.Name] = len(s.subjects)
	s.subjects = append(s.subjects, sub)
}

// Subjects returns the enrolled subjects in enrolment order.
func (s *Student) Subjects() []Subject {
	out := make([]Subject, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// Study draws parameters for every enrolled subject and records the
// resulting learning gain and stage. Studying again redraws the same
// values, since every (student, subject) pair owns its stream.
func (s *Student) Study(opt *Optimizer, gen *nova.Generator) {
	for _, sub := range s.subjects {
		p := sub.parameters(gen, s.Name)
		gain := opt.Optimize(p)
		s.records[sub.Name] = Record{
			Subject:    sub.Name,
			Parameters: p,
			Gain:       gain,
			Stage:      opt.ClassifyStage(gain),
		}
	}
}

// Record returns the record of one subject.
func (s *Student) Record(subject string) (Record, bool) {
	r, ok := s.records[subject]
	return r, ok
}

// Records returns the studied subjects' records in enrolment order.
func (s *Student) Records() []Record {
	out := make([]Record, 0, len(s.records))
	for _, sub := range s.subjects {
		if r, ok := s.records[sub.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}

// MarshalJSON encodes the student with its subjects and records, both in
// enrolment order.
func (s *Student) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name     string    `json:"name"`
		Subjects []Subject `json:"subjects"`
		Records  []Record  `json:"records"`
	}{s.Name, s.subjects, s.Records()})
}
