package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core/grading"
	"github.com/trezcool/gradecalc/core/school"
)

var (
	rule = strings.Repeat("=", 60)
	sep  = strings.Repeat("-", 60)
)

func (cli *commandLine) println(a ...interface{}) {
	_, _ = fmt.Fprintln(cli.out, a...)
}

func (cli *commandLine) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(cli.out, format, a...)
}

func (cli *commandLine) printMenu() {
	cli.println("\n" + rule)
	cli.println("CS-GRADECALCULATOR MAIN MENU")
	cli.println(rule)
	cli.println("1. Use Case CU001: Calculate student final grade (interactive)")
	cli.println("2. Add student")
	cli.println("3. Add evaluation")
	cli.println("4. View student information")
	cli.println("5. Exit")
	cli.println(sep)
}

// menu runs the interactive loop until the user exits or input ends.
func (cli *commandLine) menu(ctx context.Context) error {
	for {
		cli.printMenu()
		choice, err := cli.in.ReadLine("Select an option (1-5): ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = cli.calculateFinalGrade(ctx)
		case "2":
			err = cli.addStudent(ctx)
		case "3":
			err = cli.addEvaluation(ctx)
		case "4":
			err = cli.viewStudent(ctx)
		case "5":
			cli.println("\nGoodbye!")
			return nil
		default:
			cli.println("Error: Invalid option. Please select 1-5.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput treats a closed input stream as a normal exit.
func endOfInput(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}

func formatGrade(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (cli *commandLine) calculateFinalGrade(ctx context.Context) error {
	cli.println("\n" + rule)
	cli.println("CS-GRADECALCULATOR - Use Case CU001")
	cli.println("Calculate Student Final Grade")
	cli.println(rule + "\n")

	studentID, err := cli.in.ReadLine("Enter student ID/code: ")
	if err != nil {
		return err
	}
	student, err := cli.svc.GetStudent(ctx, studentID)
	if err != nil {
		if err == school.ErrStudentNotFound {
			cli.printf("Error: Student %s not registered in system\n", studentID)
			return nil
		}
		return err
	}
	cli.printf("\nStudent found: %s\n", student.Name)

	if student.EvaluationCount() == 0 {
		cli.println("Error: Student has no evaluations registered")
		return nil
	}
	cli.printf("Total evaluations: %d\n", student.EvaluationCount())
	cli.println("\nEvaluations:")
	for i, e := range student.Evaluations {
		cli.printf("  %d. %s: %s/20 (%s%%)\n", i+1, e.EvaluationID(), formatGrade(e.Grade()), formatGrade(e.WeightPercentage()))
	}

	input, err := cli.in.ReadLine("\nEnter student attendance percentage (0-100): ")
	if err != nil {
		return err
	}
	attendance, err := parseAttendance(input)
	if err != nil {
		cli.printf("Error: Invalid attendance value - %s\n", err)
		return nil
	}

	reached := cli.svc.ReachedMinimum(attendance)
	cli.printf("Minimum attendance required: %s%%\n", formatGrade(cli.svc.MinimumAttendance()))
	if reached {
		cli.println("Reached minimum: YES")
	} else {
		cli.println("Reached minimum: NO")
	}

	input, err = cli.in.ReadLine("\nEnter extra points earned (0 or more): ")
	if err != nil {
		return err
	}
	extra, err := parseExtraPoints(input)
	if err != nil {
		cli.printf("Error: Invalid extra points - %s\n", err)
		return nil
	}

	cli.println("\n" + sep)
	return cli.report(ctx, student.ID, grading.GradeOptions{
		Attendance:     attendance,
		ExtraPoints:    extra,
		ReachedMinimum: reached,
	})
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("could not convert string to float: '%s'", s)
	}
	return v, nil
}

func parseAttendance(s string) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, errors.New("Attendance must be between 0 and 100")
	}
	return v, nil
}

func parseExtraPoints(s string) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.New("Extra points cannot be negative")
	}
	return v, nil
}

func (cli *commandLine) addStudent(ctx context.Context) error {
	id, err := cli.in.ReadLine("Enter student ID: ")
	if err != nil {
		return err
	}
	name, err := cli.in.ReadLine("Enter student name: ")
	if err != nil {
		return err
	}
	if id == "" || name == "" {
		cli.println("Error: Student ID and name cannot be empty")
		return nil
	}

	student, err := cli.svc.AddStudent(ctx, school.NewStudent{ID: id, Name: name})
	switch {
	case errors.Is(err, school.ErrStudentExists):
		cli.printf("Error: Student %s already exists\n", id)
	case err != nil:
		cli.printf("Error: %s\n", err)
	default:
		cli.printf("Student %s (%s) added successfully\n", student.Name, student.ID)
	}
	return nil
}

func (cli *commandLine) addEvaluation(ctx context.Context) error {
	studentID, err := cli.in.ReadLine("Enter student ID: ")
	if err != nil {
		return err
	}
	if _, err := cli.svc.GetStudent(ctx, studentID); err != nil {
		if err == school.ErrStudentNotFound {
			cli.printf("Error: Student %s not found\n", studentID)
			return nil
		}
		return err
	}

	evalID, err := cli.in.ReadLine("Enter evaluation ID: ")
	if err != nil {
		return err
	}
	input, err := cli.in.ReadLine("Enter grade (0-20): ")
	if err != nil {
		return err
	}
	grade, err := parseFloat(input)
	if err != nil {
		cli.printf("Error: Invalid input - %s\n", err)
		return nil
	}
	input, err = cli.in.ReadLine("Enter weight percentage (default 100): ")
	if err != nil {
		return err
	}
	weight := grading.DefaultWeightPercentage
	if input != "" {
		if weight, err = parseFloat(input); err != nil {
			cli.printf("Error: Invalid input - %s\n", err)
			return nil
		}
	}

	_, err = cli.svc.AddEvaluation(ctx, school.NewEvaluation{
		StudentID:    studentID,
		EvaluationID: evalID,
		Grade:        &grade,
		Weight:       &weight,
	})
	if err != nil {
		cli.printf("Failed to add evaluation: %s\n", err)
		return nil
	}
	cli.println("Evaluation added successfully")
	return nil
}

func (cli *commandLine) viewStudent(ctx context.Context) error {
	studentID, err := cli.in.ReadLine("Enter student ID: ")
	if err != nil {
		return err
	}
	student, err := cli.svc.GetStudent(ctx, studentID)
	if err != nil {
		if err == school.ErrStudentNotFound {
			cli.printf("Error: Student %s not found\n", studentID)
			return nil
		}
		return err
	}

	cli.printf("\nStudent: %s (ID: %s)\n", student.Name, student.ID)
	cli.printf("Evaluations: %d\n", student.EvaluationCount())
	if student.EvaluationCount() > 0 {
		cli.println("\nEvaluation details:")
		for _, e := range student.Evaluations {
			cli.printf("  - %s: %s/20 (Weight: %s%%)\n", e.EvaluationID(), formatGrade(e.Grade()), formatGrade(e.WeightPercentage()))
		}
	}
	return nil
}
