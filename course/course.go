// Package course knows the on-disk layout of a PrairieLearn course: which file marks
// the course root, which documents reference questions, and where a question lives.
package course

import (
	"path/filepath"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("course")

const (
	// MarkerFile identifies a directory as the root of a course.
	MarkerFile = "infoCourse.json"
	// AssessmentFile is the only document that carries question references.
	AssessmentFile = "infoAssessment.json"
	// QuestionsDir holds one directory per question id.
	QuestionsDir = "questions"
	// QuestionFile is the file opened when following a question link.
	QuestionFile = "question.html"
)

// IsAssessmentFile reports whether path names an infoAssessment.json document.
func IsAssessmentFile(path string) bool {
	return filepath.Base(path) == AssessmentFile
}

// QuestionPath returns the question.html location for qid under root.
func QuestionPath(root string, qid string) string {
	return filepath.Join(root, QuestionsDir, qid, QuestionFile)
}
