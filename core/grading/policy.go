package grading

import (
	"fmt"
	"math"

	"github.com/trezcool/gradecalc/core"
)

const (
	DefaultMinimumAttendance = 80.0
	DefaultExtraPointValue   = 1.0
)

// AttendancePolicy holds the minimum attendance percentage a student needs.
// It is immutable and may be shared by any number of calculators.
type AttendancePolicy struct {
	minimum float64
}

// NewAttendancePolicy fails unless minimum ∈ [0, 100]. minimum defaults to 80%.
func NewAttendancePolicy(minimum ...float64) (*AttendancePolicy, error) {
	minPct := DefaultMinimumAttendance
	if len(minimum) > 0 {
		minPct = minimum[0]
	}
	if !(minPct >= 0 && minPct <= 100) {
		return nil, core.NewDomainError("grading.NewAttendancePolicy", "Attendance percentage must be between 0 and 100")
	}
	return &AttendancePolicy{minimum: minPct}, nil
}

func (p *AttendancePolicy) Minimum() float64 { return p.minimum }

// IsSufficient reports whether attendance meets the minimum (inclusive).
func (p *AttendancePolicy) IsSufficient(attendance float64) bool {
	return attendance >= p.minimum
}

func (p *AttendancePolicy) String() string {
	return fmt.Sprintf("AttendancePolicy(minimum=%v%%)", p.minimum)
}

// ExtraPointsPolicy holds the grade credit given per extra point.
type ExtraPointsPolicy struct {
	value float64
}

// NewExtraPointsPolicy fails if value is negative. value defaults to 1.0.
func NewExtraPointsPolicy(value ...float64) (*ExtraPointsPolicy, error) {
	val := DefaultExtraPointValue
	if len(value) > 0 {
		val = value[0]
	}
	if !(val >= 0) {
		return nil, core.NewDomainError("grading.NewExtraPointsPolicy", "Extra points value cannot be negative")
	}
	return &ExtraPointsPolicy{value: val}, nil
}

func (p *ExtraPointsPolicy) Value() float64 { return p.value }

// Apply adds count × value to grade, capped at MaxGrade.
// count is not validated: a negative count lowers the grade.
func (p *ExtraPointsPolicy) Apply(grade, count float64) float64 {
	return math.Min(grade+count*p.value, MaxGrade)
}

func (p *ExtraPointsPolicy) String() string {
	return fmt.Sprintf("ExtraPointsPolicy(value=%v)", p.value)
}

func defaultAttendancePolicy() *AttendancePolicy {
	return &AttendancePolicy{minimum: DefaultMinimumAttendance}
}

func defaultExtraPointsPolicy() *ExtraPointsPolicy {
	return &ExtraPointsPolicy{value: DefaultExtraPointValue}
}
