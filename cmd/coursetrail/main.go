package main

import (
	"fmt"
	"os"
	"strings"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "catalog":
		err = cmdCatalog(os.Args[2:])
	case "enroll":
		err = cmdEnroll(os.Args[2:])
	case "unenroll":
		err = cmdUnenroll(os.Args[2:])
	case "courses":
		err = cmdCourses(os.Args[2:])
	case "complete":
		err = cmdComplete(os.Args[2:])
	case "reset":
		err = cmdReset(os.Args[2:])
	case "play":
		err = cmdPlay(os.Args[2:])
	case "recent":
		err = cmdRecent(os.Args[2:])
	case "bookmark":
		err = cmdBookmark(os.Args[2:])
	case "note":
		err = cmdNote(os.Args[2:])
	case "wishlist":
		err = cmdWishlist(os.Args[2:])
	case "stats":
		err = cmdStats(os.Args[2:])
	case "config":
		err = cmdConfig(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("coursetrail %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`CourseTrail - Local Learning Progress Tracker

Usage:
  coursetrail <command> [arguments]

Catalog Commands:
  catalog list              List courses in the catalog
  catalog show <course>     Show course details and lessons
  catalog import <file>     Import courses from a YAML file
  catalog remove <course>   Remove a course from the catalog

Enrollment Commands:
  enroll <course>           Enroll in a course
  unenroll <course>         Drop a course
  courses                   List enrolled courses
  courses completed         List completed courses
  complete <course> <lesson>       Mark a lesson completed
  complete <course> <lesson> undo  Unmark a lesson
  reset <course>            Reset a course's progress

Playback Commands:
  play <course> <lesson>    Open a lesson (resumes saved position)
  play next <course>        Step to the next lesson
  play prev <course>        Step to the previous lesson
  recent                    Show recently played lessons
  recent clear              Clear playback history

Study Commands:
  bookmark <course> <lesson> [note]  Toggle a lesson bookmark
  note add <title> <content>         Add a sticky note
  note list                          List sticky notes
  note star <id>                     Toggle a note's star
  note tag <id> <tag>                Tag a note
  note rm <id>                       Remove a note
  stats                     Show learning statistics

Other:
  wishlist add|rm|list|clear   Manage the wishlist
  config                    Show current configuration
  config init               Write the default config file
  help                      Show this help message
  version                   Show version information`)
}

// renderProgressBar creates a visual progress bar
func renderProgressBar(value float64, width int) string {
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", empty) + "]"
}
