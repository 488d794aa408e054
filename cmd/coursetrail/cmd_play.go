package main

import (
	"fmt"
	"time"
)

// cmdPlay opens a lesson in the player. The CLI has no real media surface,
// so playback state is synthetic, but saved positions and the recent list
// persist the same way they would under a real surface.
func cmdPlay(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: coursetrail play <course-id> <lesson-id> | play next|prev <course-id>")
	}

	switch args[0] {
	case "next", "prev":
		if len(args) < 2 {
			return fmt.Errorf("usage: coursetrail play %s <course-id>", args[0])
		}
		return cmdPlayStep(args[0], args[1])
	default:
		if len(args) < 2 {
			return fmt.Errorf("usage: coursetrail play <course-id> <lesson-id>")
		}
		return cmdPlayLesson(args[0], args[1])
	}
}

func cmdPlayLesson(courseID, lessonID string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	course, err := app.Catalog.Get(courseID)
	if err != nil {
		return err
	}

	for _, lesson := range course.Lessons {
		if lesson.ID != lessonID {
			continue
		}
		if err := app.Player.SetCurrentLesson(lesson, courseID); err != nil {
			return err
		}
		state := app.Player.State()
		fmt.Printf("Playing %s — %s\n", course.Title, lesson.Title)
		if state.LastPosition > 0 {
			fmt.Printf("Resuming at %s\n", formatSeconds(state.LastPosition))
		}
		return nil
	}
	return fmt.Errorf("lesson %s not found in %s", lessonID, courseID)
}

func cmdPlayStep(direction, courseID string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	course, err := app.Catalog.Get(courseID)
	if err != nil {
		return err
	}

	// Step from the last lesson played in this course.
	loaded := false
	for _, r := range app.Player.RecentLessons() {
		if r.CourseID != courseID {
			continue
		}
		for _, lesson := range course.Lessons {
			if lesson.ID == r.LessonID {
				if err := app.Player.SetCurrentLesson(lesson, courseID); err != nil {
					return err
				}
				loaded = true
			}
		}
		break
	}
	if !loaded {
		return fmt.Errorf("nothing played in %s yet (use 'coursetrail play %s <lesson-id>')", courseID, courseID)
	}

	step := app.Player.NextLesson
	if direction == "prev" {
		step = app.Player.PreviousLesson
	}
	lesson, err := step(course.Lessons)
	if err != nil {
		return err
	}
	if lesson == nil {
		fmt.Println("No adjacent lesson to step to.")
		return nil
	}
	fmt.Printf("Now playing: %s\n", lesson.Title)
	return nil
}

// cmdRecent shows or clears playback history
func cmdRecent(args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) > 0 && args[0] == "clear" {
		if err := app.Player.ClearHistory(); err != nil {
			return err
		}
		fmt.Println("Playback history cleared.")
		return nil
	}

	recent := app.Player.RecentLessons()
	if len(recent) == 0 {
		fmt.Println("No recently played lessons.")
		return nil
	}

	fmt.Println("Recently Played")
	fmt.Println("===============")
	for _, r := range recent {
		pos := ""
		if saved := app.Player.SavedPositionFor(r.CourseID, r.LessonID); saved != nil {
			pos = " (at " + formatSeconds(saved.Position) + ")"
		}
		fmt.Printf("%-24s %s%s\n", r.CourseID, r.Title, pos)
	}
	return nil
}

func formatSeconds(seconds float64) string {
	d := time.Duration(seconds) * time.Second
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
