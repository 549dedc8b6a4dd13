package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/grading"
)

const (
	attendanceParam     = "attendance"
	extraPointsParam    = "extra"
	reachedMinimumParam = "reached_minimum"
)

// GradeQuery holds the grade inputs read from the query string.
type GradeQuery struct {
	Attendance     float64 `json:"attendance" validate:"gte=0,lte=100"`
	ExtraPoints    float64 `json:"extra" validate:"gte=0"`
	ReachedMinimum *bool   `json:"reached_minimum"`
}

// Bind reads the query params; missing ones keep grading.DefaultGradeOptions values.
func (q *GradeQuery) Bind(ctx echo.Context) error {
	defaults := grading.DefaultGradeOptions()
	q.Attendance = defaults.Attendance
	q.ExtraPoints = defaults.ExtraPoints

	var fldErrs []core.FieldError
	if val := ctx.QueryParam(attendanceParam); val != "" {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			fldErrs = append(fldErrs, core.FieldError{Field: attendanceParam, Error: "must be a number"})
		}
		q.Attendance = v
	}
	if val := ctx.QueryParam(extraPointsParam); val != "" {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			fldErrs = append(fldErrs, core.FieldError{Field: extraPointsParam, Error: "must be a number"})
		}
		q.ExtraPoints = v
	}
	if val := ctx.QueryParam(reachedMinimumParam); val != "" {
		v, err := strconv.ParseBool(val)
		if err != nil {
			fldErrs = append(fldErrs, core.FieldError{Field: reachedMinimumParam, Error: "must be a boolean"})
		}
		q.ReachedMinimum = &v
	}
	if fldErrs != nil {
		return core.NewValidationError(nil, fldErrs...)
	}
	return core.Validate.Struct(q)
}

// Options derives the grade options; reached_minimum defaults to the attendance policy verdict.
func (q GradeQuery) Options(reachedMinimum func(attendance float64) bool) grading.GradeOptions {
	opts := grading.GradeOptions{
		Attendance:  q.Attendance,
		ExtraPoints: q.ExtraPoints,
	}
	if q.ReachedMinimum != nil {
		opts.ReachedMinimum = *q.ReachedMinimum
	} else {
		opts.ReachedMinimum = reachedMinimum(q.Attendance)
	}
	return opts
}
