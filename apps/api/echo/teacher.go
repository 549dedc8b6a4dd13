package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/school"
)

type teacherApi struct {
	svc *school.Service
}

func registerTeacherAPI(g *echo.Group, svc *school.Service) {
	api := teacherApi{svc: svc}

	tg := g.Group("/teachers")
	tg.GET("", api.query)
	tg.POST("", api.create)
	tg.GET("/:id", api.retrieve)
}

// Handlers

// query lists teachers; `?all_years=true` keeps only those teaching across all academic years.
func (api *teacherApi) query(ctx echo.Context) error {
	var allYears bool
	if val := ctx.QueryParam("all_years"); val != "" {
		var err error
		if allYears, err = strconv.ParseBool(val); err != nil {
			return core.NewValidationError(nil, core.FieldError{Field: "all_years", Error: "must be a boolean"})
		}
	}

	var teachers []school.Teacher
	var err error
	if allYears {
		teachers, err = api.svc.AllYearsTeachers(ctx.Request().Context())
	} else {
		teachers, err = api.svc.Teachers(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *teacherApi) create(ctx echo.Context) error {
	var data school.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	teacher, err := api.svc.AddTeacher(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating teacher")
	}
	return ctx.JSON(http.StatusCreated, teacher)
}

func (api *teacherApi) retrieve(ctx echo.Context) error {
	teacher, err := api.svc.GetTeacher(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting teacher")
	}
	return ctx.JSON(http.StatusOK, teacher)
}
