package grading

import (
	"math"

	"github.com/trezcool/gradecalc/core"
)

const (
	MaxEvaluationsPerStudent = 10

	// share of MaxGrade lost per 100% of missed attendance
	AttendancePenaltyPercentage = 0.1

	// documented latency target of a single calculation; not enforced
	MaxCalculationTimeMS = 300
)

// GradeOptions are the per-student inputs of a final grade besides the evaluations.
type GradeOptions struct {
	Attendance     float64 `json:"attendance"`
	ExtraPoints    float64 `json:"extra_points"`
	ReachedMinimum bool    `json:"reached_minimum"`
}

// DefaultGradeOptions: full attendance, no extra points, minimum attendance reached.
func DefaultGradeOptions() GradeOptions {
	return GradeOptions{Attendance: 100, ExtraPoints: 0, ReachedMinimum: true}
}

// Breakdown holds every intermediate quantity of a final grade, rounded to 2 decimals.
type Breakdown struct {
	WeightedAverage      float64 `json:"weighted_average"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	AttendancePenalty    float64 `json:"attendance_penalty"`
	GradeBeforeExtra     float64 `json:"grade_before_extra"`
	ExtraPointsApplied   float64 `json:"extra_points_applied"`
	FinalGrade           float64 `json:"final_grade"`
}

// Calculator computes final grades under one attendance and one extra points policy.
// It keeps no state between calls and is safe for concurrent use.
type Calculator struct {
	attendancePolicy  *AttendancePolicy
	extraPointsPolicy *ExtraPointsPolicy
}

// NewCalculator uses the default policy for any nil argument.
func NewCalculator(attendancePolicy *AttendancePolicy, extraPointsPolicy *ExtraPointsPolicy) *Calculator {
	if attendancePolicy == nil {
		attendancePolicy = defaultAttendancePolicy()
	}
	if extraPointsPolicy == nil {
		extraPointsPolicy = defaultExtraPointsPolicy()
	}
	return &Calculator{
		attendancePolicy:  attendancePolicy,
		extraPointsPolicy: extraPointsPolicy,
	}
}

func (c *Calculator) AttendancePolicy() *AttendancePolicy   { return c.attendancePolicy }
func (c *Calculator) ExtraPointsPolicy() *ExtraPointsPolicy { return c.extraPointsPolicy }

// WeightedAverage normalizes by the total declared weight, so weights need not add up to 100:
// Σ weighted grades / (Σ weights / 100).
func (c *Calculator) WeightedAverage(evals []Evaluation) (float64, error) {
	const op = "grading.WeightedAverage"

	if len(evals) == 0 {
		return 0, core.NewDomainError(op, "No evaluations provided")
	}
	if len(evals) > MaxEvaluationsPerStudent {
		return 0, core.NewDomainError(op, "Maximum %d evaluations allowed per student", MaxEvaluationsPerStudent)
	}

	var totalWeighted, totalWeight float64
	for _, e := range evals {
		totalWeighted += e.WeightedGrade()
		totalWeight += e.WeightPercentage()
	}
	// unreachable for evaluations built by NewEvaluation
	if totalWeight == 0 {
		return 0, core.NewDomainError(op, "Total weight cannot be zero")
	}
	return totalWeighted / (totalWeight / 100), nil
}

// AttendancePenalty deducts 10% of MaxGrade per 100% of missed attendance.
// An attendance outside [0, 100] is not an error: it yields no penalty.
func (c *Calculator) AttendancePenalty(attendance float64) float64 {
	if attendance < 0 || attendance > 100 {
		return 0
	}
	missing := (100 - attendance) / 100
	penalty := missing * MaxGrade * AttendancePenaltyPercentage
	return math.Min(penalty, MaxGrade)
}

// FinalGrade applies the attendance penalty to the weighted average, floors it at MinGrade,
// then adds the extra points only if the student reached the minimum attendance.
// The returned grade and the breakdown are rounded to 2 decimals.
func (c *Calculator) FinalGrade(evals []Evaluation, attendance, extraPoints float64, reachedMinimum bool) (float64, Breakdown, error) {
	avg, err := c.WeightedAverage(evals)
	if err != nil {
		return 0, Breakdown{}, err
	}
	penalty := c.AttendancePenalty(attendance)

	afterPenalty := math.Max(MinGrade, avg-penalty)

	var extraApplied float64
	if reachedMinimum {
		// capped against the penalized grade, not the raw average
		extraApplied = c.extraPointsPolicy.Apply(afterPenalty, extraPoints) - afterPenalty
	}

	final := core.Round2(math.Min(MaxGrade, afterPenalty+extraApplied))

	return final, Breakdown{
		WeightedAverage:      core.Round2(avg),
		AttendancePercentage: core.Round2(attendance),
		AttendancePenalty:    core.Round2(penalty),
		GradeBeforeExtra:     core.Round2(afterPenalty),
		ExtraPointsApplied:   core.Round2(extraApplied),
		FinalGrade:           final,
	}, nil
}

func (c *Calculator) FinalGradeWithOptions(evals []Evaluation, opts GradeOptions) (float64, Breakdown, error) {
	return c.FinalGrade(evals, opts.Attendance, opts.ExtraPoints, opts.ReachedMinimum)
}
