package main

import (
	"fmt"
	"time"
)

// cmdEnroll enrolls in a catalog course and opens its progress ledger
func cmdEnroll(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: coursetrail enroll <course-id>")
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	course, err := app.Catalog.Get(args[0])
	if err != nil {
		return err
	}

	if err := app.Enrollment.Enroll(*course); err != nil {
		return err
	}
	if err := app.Progress.InitCourseProgress(course.ID, course.Title, course.TotalLessons); err != nil {
		return err
	}

	fmt.Printf("Enrolled in %s (%d lessons)\n", course.Title, course.TotalLessons)
	return nil
}

func cmdUnenroll(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: coursetrail unenroll <course-id>")
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.Enrollment.IsEnrolled(args[0]) {
		fmt.Printf("Not enrolled in %s\n", args[0])
		return nil
	}
	if err := app.Enrollment.Unenroll(args[0]); err != nil {
		return err
	}
	fmt.Printf("Dropped %s\n", args[0])
	return nil
}

// cmdCourses lists enrolled courses
func cmdCourses(args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	courses := app.Enrollment.List()
	if len(args) > 0 {
		switch args[0] {
		case "completed":
			courses = app.Enrollment.ListCompleted()
		case "active":
			courses = app.Enrollment.ListInProgress()
		default:
			return fmt.Errorf("unknown courses filter: %s (valid: completed, active)", args[0])
		}
	}

	if len(courses) == 0 {
		fmt.Println("No courses. Enroll with 'coursetrail enroll <course-id>'.")
		return nil
	}

	fmt.Println("My Courses")
	fmt.Println("==========")
	for _, c := range courses {
		bar := renderProgressBar(float64(c.Progress)/100, 20)
		marker := " "
		if c.Completed {
			marker = "✓"
		}
		fmt.Printf("%s %-24s %s %3d%%  %s\n", marker, c.ID, bar, c.Progress, c.Title)
	}
	return nil
}

// cmdComplete marks a lesson done (or undoes it) across the enrollment,
// progress, and learning stores. The three ledgers are independent, so each
// is updated explicitly.
func cmdComplete(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: coursetrail complete <course-id> <lesson-id> [undo]")
	}
	courseID, lessonID := args[0], args[1]
	completed := !(len(args) > 2 && args[2] == "undo")

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.Enrollment.IsEnrolled(courseID) {
		return fmt.Errorf("not enrolled in %s", courseID)
	}

	if err := app.Enrollment.SetLessonCompletion(courseID, lessonID, completed); err != nil {
		return err
	}
	if err := app.Progress.UpdateLessonProgress(courseID, lessonID, completed); err != nil {
		return err
	}
	if err := app.Learning.UpdateProgress(courseID, lessonID, completed, time.Now()); err != nil {
		return err
	}

	enrolled := app.Enrollment.Get(courseID)
	verb := "Completed"
	if !completed {
		verb = "Unmarked"
	}
	fmt.Printf("%s %s/%s (course at %d%%)\n", verb, courseID, lessonID, enrolled.Progress)
	if completed && enrolled.Completed {
		fmt.Printf("Course complete! 🎉\n")
	}
	return nil
}

// cmdReset clears a course's progress ledger and learning ledger. The
// enrollment record keeps its own completion flags.
func cmdReset(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: coursetrail reset <course-id>")
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Progress.ResetCourseProgress(args[0]); err != nil {
		return err
	}
	if err := app.Learning.ResetCourseProgress(args[0]); err != nil {
		return err
	}
	fmt.Printf("Reset progress for %s\n", args[0])
	return nil
}
