package main

import (
	"fmt"
)

// cmdStats shows learning statistics across the stores
func cmdStats(args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	study := app.Learning.StudyStats()

	fmt.Println("Learning Statistics")
	fmt.Println("==================")
	fmt.Printf("Enrolled Courses:   %d\n", app.Enrollment.Count())
	fmt.Printf("Completed Courses:  %d\n", app.Progress.CompletedCount())
	fmt.Printf("Lessons Completed:  %d\n", app.Progress.TotalLessonsCompleted())
	fmt.Printf("Learning Hours:     %d\n", app.Enrollment.TotalLearningHours())
	fmt.Printf("Study Time:         %dm\n", study.StudyMinutes)
	fmt.Printf("Current Streak:     %d day(s)\n", study.StreakDays)

	overall := app.Progress.OverallProgress()
	fmt.Printf("\nOverall Progress:   %s %d%%\n", renderProgressBar(float64(overall)/100, 20), overall)

	recent := app.Progress.RecentActivity(5)
	if len(recent) > 0 {
		fmt.Println("\nRecent Activity")
		fmt.Println("---------------")
		for _, r := range recent {
			bar := renderProgressBar(float64(r.Progress)/100, 20)
			fmt.Printf("%-24s %s %3d%%  %s\n", r.CourseID, bar, r.Progress, r.CourseTitle)
		}
	}
	return nil
}
