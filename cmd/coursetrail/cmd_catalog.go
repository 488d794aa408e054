package main

import (
	"fmt"
	"strings"
)

// cmdCatalog manages the course catalog
func cmdCatalog(args []string) error {
	subCmd := "list"
	if len(args) > 0 {
		subCmd = args[0]
	}

	switch subCmd {
	case "list", "":
		return cmdCatalogList()
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: coursetrail catalog show <course-id>")
		}
		return cmdCatalogShow(args[1])
	case "import":
		if len(args) < 2 {
			return fmt.Errorf("usage: coursetrail catalog import <file.yaml>")
		}
		return cmdCatalogImport(args[1])
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: coursetrail catalog remove <course-id>")
		}
		return cmdCatalogRemove(args[1])
	default:
		return fmt.Errorf("unknown catalog command: %s (valid: list, show, import, remove)", subCmd)
	}
}

func cmdCatalogList() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	courses, err := app.Catalog.List()
	if err != nil {
		return err
	}

	if len(courses) == 0 {
		fmt.Println("Catalog is empty. Import courses with 'coursetrail catalog import <file.yaml>'.")
		return nil
	}

	fmt.Println("Course Catalog")
	fmt.Println("==============")
	for _, course := range courses {
		fmt.Printf("%-24s %s (%s, %d lessons)\n",
			course.ID, course.Title, course.Level, course.TotalLessons)
	}
	return nil
}

func cmdCatalogShow(id string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	course, err := app.Catalog.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", course.Title)
	fmt.Println(strings.Repeat("=", len(course.Title)))
	fmt.Printf("Instructor:  %s\n", course.Instructor)
	fmt.Printf("Category:    %s\n", course.Category)
	fmt.Printf("Level:       %s\n", course.Level)
	fmt.Printf("Duration:    %s\n", course.Duration)
	fmt.Printf("Rating:      %.1f (%d students)\n", course.Rating, course.Students)
	if course.DiscountedPrice > 0 && course.DiscountedPrice < course.Price {
		fmt.Printf("Price:       $%.2f (was $%.2f)\n", course.DiscountedPrice, course.Price)
	} else {
		fmt.Printf("Price:       $%.2f\n", course.Price)
	}

	if len(course.Lessons) > 0 {
		fmt.Println("\nLessons")
		fmt.Println("-------")
		for i, lesson := range course.Lessons {
			fmt.Printf("%2d. %-16s %s\n", i+1, lesson.ID, lesson.Title)
		}
	}
	return nil
}

func cmdCatalogImport(path string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	n, err := app.Catalog.ImportFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d course(s) from %s\n", n, path)
	return nil
}

func cmdCatalogRemove(id string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Catalog.Remove(id); err != nil {
		return err
	}
	fmt.Printf("Removed %s from the catalog\n", id)
	return nil
}
