package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core/grading"
	"github.com/trezcool/gradecalc/core/school"
)

type studentApi struct {
	svc *school.Service
}

func registerStudentAPI(g *echo.Group, svc *school.Service) {
	api := studentApi{svc: svc}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.POST("", api.create)

	// detail endpoints
	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.POST("/evaluations", api.addEvaluation)
	dg.GET("/grade", api.grade)
	dg.GET("/report", api.report)
}

// GradeResponse is the final grade of a student with its breakdown.
type GradeResponse struct {
	StudentID  string            `json:"student_id"`
	FinalGrade float64           `json:"final_grade"`
	Breakdown  grading.Breakdown `json:"breakdown"`
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	students, err := api.svc.Students(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data school.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	student, err := api.svc.AddStudent(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, student)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	student, err := api.svc.GetStudent(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting student")
	}
	return ctx.JSON(http.StatusOK, student)
}

func (api *studentApi) addEvaluation(ctx echo.Context) error {
	var data school.NewEvaluation
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvaluation")
	}
	data.StudentID = ctx.Param("id")

	student, err := api.svc.AddEvaluation(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding evaluation")
	}
	return ctx.JSON(http.StatusCreated, student)
}

func (api *studentApi) gradeOptions(ctx echo.Context) (grading.GradeOptions, error) {
	var q GradeQuery
	if err := q.Bind(ctx); err != nil {
		return grading.GradeOptions{}, err
	}
	return q.Options(api.svc.ReachedMinimum), nil
}

func (api *studentApi) grade(ctx echo.Context) error {
	opts, err := api.gradeOptions(ctx)
	if err != nil {
		return err
	}
	studentID := ctx.Param("id")
	final, breakdown, err := api.svc.FinalGrade(ctx.Request().Context(), studentID, opts)
	if err != nil {
		return errors.Wrap(err, "computing final grade")
	}
	return ctx.JSON(http.StatusOK, GradeResponse{
		StudentID:  studentID,
		FinalGrade: final,
		Breakdown:  breakdown,
	})
}

func (api *studentApi) report(ctx echo.Context) error {
	opts, err := api.gradeOptions(ctx)
	if err != nil {
		return err
	}
	report, err := api.svc.GradeReport(ctx.Request().Context(), ctx.Param("id"), opts)
	if err != nil {
		return errors.Wrap(err, "generating report")
	}
	return ctx.String(http.StatusOK, report)
}
