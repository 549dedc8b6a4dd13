package grading

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"
)

const reportTmpl = `{{ rule }}
GRADE REPORT
{{ rule }}
Student ID: {{ .StudentID }}
Student Name: {{ .StudentName }}
Total Evaluations: {{ .EvaluationCount }}

GRADE CALCULATION BREAKDOWN:
  Weighted Average: {{ num .WeightedAverage }}
  Attendance: {{ num .AttendancePercentage }}%
  Attendance Penalty: -{{ num .AttendancePenalty }}
  Grade Before Extra Points: {{ num .GradeBeforeExtra }}
  Extra Points Applied: +{{ num .ExtraPointsApplied }}

FINAL GRADE: {{ num .FinalGrade }}/20
{{ rule }}`

const reportWidth = 60

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"rule": func() string { return strings.Repeat("=", reportWidth) },
	"num":  formatNum,
}).Parse(reportTmpl))

type reportData struct {
	Breakdown
	StudentID       string
	StudentName     string
	EvaluationCount int
}

// GradeReport renders the final grade breakdown of a student as text.
// It never fails: a calculation error is rendered as an error message instead.
func (c *Calculator) GradeReport(studentID, studentName string, evals []Evaluation, attendance, extraPoints float64, reachedMinimum bool) string {
	_, breakdown, err := c.FinalGrade(evals, attendance, extraPoints, reachedMinimum)
	if err != nil {
		return "Error generating report: " + err.Error()
	}

	var buff bytes.Buffer
	err = reportTemplate.Execute(&buff, reportData{
		Breakdown:       breakdown,
		StudentID:       studentID,
		StudentName:     studentName,
		EvaluationCount: len(evals),
	})
	if err != nil {
		return "Error generating report: " + err.Error()
	}
	return buff.String()
}

func (c *Calculator) GradeReportWithOptions(studentID, studentName string, evals []Evaluation, opts GradeOptions) string {
	return c.GradeReport(studentID, studentName, evals, opts.Attendance, opts.ExtraPoints, opts.ReachedMinimum)
}

// formatNum prints the shortest text that reads back as `v`, keeping a ".0" on whole numbers.
func formatNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
