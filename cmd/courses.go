// ABOUTME: Course catalog commands: list, create, update, delete

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brightboard/admin-cli/internal/api"
)

var (
	courseTitle       string
	courseDescription string
	courseCategory    string
	coursePrice       float64
	courseDuration    string
	courseImage       string
	courseFilter      string
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Manage the course catalog",
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(runCoursesList)
	},
}

var coursesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a course",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runCoursesCreate(ctx, w)
		})
	},
}

var coursesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a course",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runCoursesUpdate(ctx, w, args[0])
		})
	},
}

var coursesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a course",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runCoursesDelete(ctx, w, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.AddCommand(coursesListCmd, coursesCreateCmd, coursesUpdateCmd, coursesDeleteCmd)

	coursesListCmd.Flags().StringVar(&courseFilter, "filter", "", "Only show courses whose title or category contains this text")

	for _, c := range []*cobra.Command{coursesCreateCmd, coursesUpdateCmd} {
		c.Flags().StringVar(&courseTitle, "title", "", "Course title")
		c.Flags().StringVar(&courseDescription, "description", "", "Course description")
		c.Flags().StringVar(&courseCategory, "category", "", "Course category name")
		c.Flags().Float64Var(&coursePrice, "price", 0, "Course price")
		c.Flags().StringVar(&courseDuration, "duration", "", "Course duration, e.g. '6 months'")
		c.Flags().StringVar(&courseImage, "image", "", "Course image URL")
	}
	coursesCreateCmd.MarkFlagRequired("title")
}

// runStandalone wires signal handling around a command body, exiting
// non-zero on failure.
func runStandalone(run func(ctx context.Context, w io.Writer) int) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if exitCode := run(ctx, os.Stdout); exitCode != 0 {
		os.Exit(exitCode)
	}
}

func courseInput() api.CourseInput {
	return api.CourseInput{
		Title:       courseTitle,
		Description: courseDescription,
		Category:    courseCategory,
		Price:       coursePrice,
		Duration:    courseDuration,
		Image:       courseImage,
	}
}

// runCoursesList fetches and prints the catalog, returning the exit code
func runCoursesList(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	courses, err := s.gate.ListCourses(ctx)
	if err != nil {
		return fail(w, err)
	}

	courses = filterCourses(courses, courseFilter)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(courses, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tDURATION")
	for _, c := range courses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%s\n", c.ID, c.Title, c.Category, c.Price, c.Duration)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d course(s)\n", len(courses))
	return 0
}

// filterCourses keeps courses whose title or category contains the term
func filterCourses(courses []api.Course, term string) []api.Course {
	if term == "" {
		return courses
	}
	term = strings.ToLower(term)
	filtered := make([]api.Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Title), term) ||
			strings.Contains(strings.ToLower(c.Category), term) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func runCoursesCreate(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.CreateCourse(ctx, courseInput()); err != nil {
		return fail(w, err)
	}
	fmt.Fprintln(w, "Course created")
	return 0
}

func runCoursesUpdate(ctx context.Context, w io.Writer, id string) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.UpdateCourse(ctx, id, courseInput()); err != nil {
		return fail(w, err)
	}
	fmt.Fprintln(w, "Course updated")
	return 0
}

func runCoursesDelete(ctx context.Context, w io.Writer, id string) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.DeleteCourse(ctx, id); err != nil {
		return fail(w, err)
	}
	fmt.Fprintln(w, "Course deleted")
	return 0
}
