package main

import (
	"fmt"
	"strings"

	"github.com/coursetrail/coursetrail/internal/domain"
)

// cmdBookmark toggles a lesson bookmark, optionally attaching a note
func cmdBookmark(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: coursetrail bookmark <course-id> <lesson-id> [note text]")
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	note := strings.Join(args[2:], " ")
	on, err := app.Learning.ToggleBookmark(args[0], args[1], note)
	if err != nil {
		return err
	}
	if on {
		fmt.Printf("Bookmarked %s/%s\n", args[0], args[1])
	} else {
		fmt.Printf("Removed bookmark on %s/%s\n", args[0], args[1])
	}
	return nil
}

// cmdNote manages sticky notes
func cmdNote(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: coursetrail note add|list|star|tag|rm|clear [arguments]")
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	switch args[0] {
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: coursetrail note add <title> <content...>")
		}
		return cmdNoteAdd(app, args[1], strings.Join(args[2:], " "))
	case "list":
		return cmdNoteList(app)
	case "star":
		if len(args) < 2 {
			return fmt.Errorf("usage: coursetrail note star <id>")
		}
		starred, err := app.Notes.ToggleStar(args[1])
		if err != nil {
			return err
		}
		if starred {
			fmt.Println("Starred.")
		} else {
			fmt.Println("Unstarred.")
		}
		return nil
	case "tag":
		if len(args) < 3 {
			return fmt.Errorf("usage: coursetrail note tag <id> <tag>")
		}
		return app.Notes.AddTag(args[1], args[2])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: coursetrail note rm <id>")
		}
		return app.Notes.Remove(args[1])
	case "clear":
		return app.Notes.Clear()
	default:
		return fmt.Errorf("unknown note command: %s (valid: add, list, star, tag, rm, clear)", args[0])
	}
}

func cmdNoteAdd(app *App, title, content string) error {
	note, err := app.Notes.Add(domain.StickyNote{Title: title, Content: content})
	if err != nil {
		return err
	}
	fmt.Printf("Added note %s\n", note.ID)
	return nil
}

func cmdNoteList(app *App) error {
	list := app.Notes.List()
	if len(list) == 0 {
		fmt.Println("No notes yet. Add one with 'coursetrail note add <title> <content>'.")
		return nil
	}

	fmt.Println("Sticky Notes")
	fmt.Println("============")
	for _, n := range list {
		star := " "
		if n.Starred {
			star = "★"
		}
		tags := ""
		if len(n.Tags) > 0 {
			tags = " [" + strings.Join(n.Tags, ", ") + "]"
		}
		fmt.Printf("%s %s  %s%s\n", star, n.ID, n.Title, tags)
		if n.Content != "" {
			fmt.Printf("    %s\n", n.Content)
		}
	}
	return nil
}
