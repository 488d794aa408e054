package main

import (
	"fmt"

	"github.com/coursetrail/coursetrail/internal/domain"
)

// cmdWishlist manages saved-for-later courses
func cmdWishlist(args []string) error {
	subCmd := "list"
	if len(args) > 0 {
		subCmd = args[0]
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	switch subCmd {
	case "list", "":
		items := app.Wishlist.Items()
		if len(items) == 0 {
			fmt.Println("Wishlist is empty.")
			return nil
		}
		fmt.Println("Wishlist")
		fmt.Println("========")
		for _, item := range items {
			price := item.Price
			if item.DiscountedPrice > 0 && item.DiscountedPrice < item.Price {
				price = item.DiscountedPrice
			}
			fmt.Printf("%-24s $%-8.2f %s\n", item.ID, price, item.Title)
		}
		return nil
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: coursetrail wishlist add <course-id>")
		}
		course, err := app.Catalog.Get(args[1])
		if err != nil {
			return err
		}
		if err := app.Wishlist.Add(domain.NewWishlistItem(*course)); err != nil {
			return err
		}
		fmt.Printf("Saved %s for later\n", course.Title)
		return nil
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: coursetrail wishlist rm <course-id>")
		}
		return app.Wishlist.Remove(args[1])
	case "clear":
		return app.Wishlist.Clear()
	default:
		return fmt.Errorf("unknown wishlist command: %s (valid: list, add, rm, clear)", subCmd)
	}
}
