package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keng/internal/exercise/student"
	"github.com/vovakirdan/keng/internal/platform/tui"
	"github.com/vovakirdan/keng/internal/storage"
)

var (
	flagStudentName    string
	flagStudentSurname string
	flagStudentAlbum   int
	flagStudentGrades  []float64
	flagStudentTUI     bool
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage student records and grades",
	Long: `Store students with their album numbers and grades in the keng database.

Album numbers must be in [10000, 999999]; grades in [2.0, 5.0].
A student passes unless more than one failing grade (2.0) is recorded.

Examples:
  keng student add --name Ala --surname Kowalska --album 12345 --grade 4.5
  keng student grade 12345 3.5
  keng student show 12345
  keng student list --tui
  keng student remove 12345`,
}

var studentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or replace a student",
	Args:  cobra.NoArgs,
	RunE:  runStudentAdd,
}

var studentGradeCmd = &cobra.Command{
	Use:   "grade <album> <grade>",
	Short: "Record a grade for a student",
	Args:  cobra.ExactArgs(2),
	RunE:  runStudentGrade,
}

var studentShowCmd = &cobra.Command{
	Use:   "show <album>",
	Short: "Show one student",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentShow,
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all students",
	Args:  cobra.NoArgs,
	RunE:  runStudentList,
}

var studentRemoveCmd = &cobra.Command{
	Use:   "remove <album>",
	Short: "Delete a student and their grades",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentRemove,
}

func init() {
	studentAddCmd.Flags().StringVar(&flagStudentName, "name", "", "First name")
	studentAddCmd.Flags().StringVar(&flagStudentSurname, "surname", "", "Surname")
	studentAddCmd.Flags().IntVar(&flagStudentAlbum, "album", 0, "Album number (10000-999999)")
	studentAddCmd.Flags().Float64SliceVar(&flagStudentGrades, "grade", nil, "Grade to record (repeatable)")
	_ = studentAddCmd.MarkFlagRequired("name")
	_ = studentAddCmd.MarkFlagRequired("surname")
	_ = studentAddCmd.MarkFlagRequired("album")

	studentListCmd.Flags().BoolVar(&flagStudentTUI, "tui", false, "Browse students in an interactive table")

	studentCmd.AddCommand(studentAddCmd, studentGradeCmd, studentShowCmd, studentListCmd, studentRemoveCmd)
}

// withStore opens the database for the duration of fn.
func withStore(fn func(*storage.Store) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func parseAlbum(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !student.ValidAlbum(n) {
		return 0, fmt.Errorf("%w: %q", student.ErrInvalidAlbum, s)
	}
	return n, nil
}

func notFound(album int, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no student with album number %d", album)
	}
	return err
}

func runStudentAdd(_ *cobra.Command, _ []string) error {
	r, err := student.New(flagStudentName, flagStudentSurname, flagStudentAlbum)
	if err != nil {
		return err
	}
	for _, g := range flagStudentGrades {
		if err := r.AddGrade(g); err != nil {
			return fmt.Errorf("%w: %g", err, g)
		}
	}

	return withStore(func(s *storage.Store) error {
		if err := s.SaveStudent(r); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", r.Summary())
		return nil
	})
}

func runStudentGrade(_ *cobra.Command, args []string) error {
	album, err := parseAlbum(args[0])
	if err != nil {
		return err
	}
	grade, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: %q", student.ErrInvalidGrade, args[1])
	}

	return withStore(func(s *storage.Store) error {
		r, err := s.AddGrade(album, grade)
		if err != nil {
			return notFound(album, err)
		}
		fmt.Printf("%s (mean %.2f)\n", r.Summary(), r.Mean())
		return nil
	})
}

func runStudentShow(_ *cobra.Command, args []string) error {
	album, err := parseAlbum(args[0])
	if err != nil {
		return err
	}

	return withStore(func(s *storage.Store) error {
		r, err := s.Student(album)
		if err != nil {
			return notFound(album, err)
		}
		printStudent(r)
		return nil
	})
}

func printStudent(r student.Record) {
	status := "passed"
	if !r.Passed() {
		status = "failed"
	}
	fmt.Println(r.Summary())
	fmt.Printf("  Album:  %d\n", r.AlbumNumber())
	fmt.Printf("  Grades: %d\n", len(r.Grades()))
	fmt.Printf("  Mean:   %.2f\n", r.Mean())
	fmt.Printf("  Status: %s\n", status)
}

func runStudentList(_ *cobra.Command, _ []string) error {
	return withStore(func(s *storage.Store) error {
		records, err := s.Students()
		if err != nil {
			return err
		}

		if flagStudentTUI {
			width, height := terminalSize()
			return tui.RunRoster(records, width, height)
		}

		if len(records) == 0 {
			fmt.Println("No students yet.")
			return nil
		}
		fmt.Printf("  %-7s  %-14s  %-12s  %-5s  %s\n", "Album", "Surname", "Name", "Mean", "Grades")
		for i := range records {
			r := &records[i]
			fmt.Printf("  %-7d  %-14s  %-12s  %-5.2f  %v\n", r.AlbumNumber(), r.Surname, r.Name, r.Mean(), r.Grades())
		}
		return nil
	})
}

func runStudentRemove(_ *cobra.Command, args []string) error {
	album, err := parseAlbum(args[0])
	if err != nil {
		return err
	}

	return withStore(func(s *storage.Store) error {
		if err := s.DeleteStudent(album); err != nil {
			return notFound(album, err)
		}
		fmt.Printf("Removed student %d\n", album)
		return nil
	})
}
