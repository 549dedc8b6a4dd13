package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core/grading"
	"github.com/trezcool/gradecalc/core/school"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	svc *school.Service
	out io.Writer
	in  lineReader
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  menu - interactive menu (calculate final grade, add students & evaluations)")
	_, _ = fmt.Fprintln(cli.out, "  report -student ID [-attendance PCT] [-extra N] [-reached=BOOL] - print a student's grade report")
	_, _ = fmt.Fprintln(cli.out, "  grade -student ID [-attendance PCT] [-extra N] [-reached=BOOL] - print a student's final grade as JSON")
	_, _ = fmt.Fprintln(cli.out, "  students - list registered students")
	_, _ = fmt.Fprintln(cli.out, "  teachers - list registered teachers")
}

// gradeFlags are shared by the report and grade commands.
type gradeFlags struct {
	fs         *flag.FlagSet
	student    *string
	attendance *float64
	extra      *float64
	reached    *bool
}

func (cli *commandLine) newGradeFlags(name string) *gradeFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return &gradeFlags{
		fs:         fs,
		student:    fs.String("student", "", "The student's ID."),
		attendance: fs.Float64("attendance", 100, "The student's attendance percentage (0-100)."),
		extra:      fs.Float64("extra", 0, "The number of extra points earned."),
		reached:    fs.Bool("reached", true, "Whether the minimum attendance was reached. Derived from the attendance policy when omitted."),
	}
}

func (gf *gradeFlags) parse(cli *commandLine, args []string) (grading.GradeOptions, error) {
	if err := gf.fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return grading.GradeOptions{}, errHelp
		}
		return grading.GradeOptions{}, err
	}
	if *gf.student == "" {
		gf.fs.Usage()
		return grading.GradeOptions{}, errHelp
	}
	if *gf.attendance < 0 || *gf.attendance > 100 {
		return grading.GradeOptions{}, errors.New("invalid attendance value: Attendance must be between 0 and 100")
	}
	if *gf.extra < 0 {
		return grading.GradeOptions{}, errors.New("invalid extra points: Extra points cannot be negative")
	}

	opts := grading.GradeOptions{
		Attendance:     *gf.attendance,
		ExtraPoints:    *gf.extra,
		ReachedMinimum: cli.svc.ReachedMinimum(*gf.attendance),
	}
	gf.fs.Visit(func(f *flag.Flag) {
		if f.Name == "reached" {
			opts.ReachedMinimum = *gf.reached
		}
	})
	return opts, nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	switch args[1] {
	case "menu":
		return cli.menu(ctx)
	case "report":
		gf := cli.newGradeFlags("report")
		opts, err := gf.parse(cli, args[2:])
		if err != nil {
			return err
		}
		return cli.report(ctx, *gf.student, opts)
	case "grade":
		gf := cli.newGradeFlags("grade")
		opts, err := gf.parse(cli, args[2:])
		if err != nil {
			return err
		}
		return cli.grade(ctx, *gf.student, opts)
	case "students":
		return cli.listStudents(ctx)
	case "teachers":
		return cli.listTeachers(ctx)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) report(ctx context.Context, studentID string, opts grading.GradeOptions) error {
	report, err := cli.svc.GradeReport(ctx, studentID, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cli.out, report)
	return err
}

func (cli *commandLine) grade(ctx context.Context, studentID string, opts grading.GradeOptions) error {
	final, breakdown, err := cli.svc.FinalGrade(ctx, studentID, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		StudentID  string            `json:"student_id"`
		FinalGrade float64           `json:"final_grade"`
		Breakdown  grading.Breakdown `json:"breakdown"`
	}{studentID, final, breakdown})
}

func (cli *commandLine) listStudents(ctx context.Context) error {
	students, err := cli.svc.Students(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tEVALUATIONS")
	for _, s := range students {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.Name, s.EvaluationCount())
	}
	return w.Flush()
}

func (cli *commandLine) listTeachers(ctx context.Context) error {
	teachers, err := cli.svc.Teachers(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tCOURSE\tALL YEARS")
	for _, t := range teachers {
		allYears := "no"
		if t.AllYears {
			allYears = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Course, allYears)
	}
	return w.Flush()
}
