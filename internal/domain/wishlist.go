package domain

// WishlistItem is a course saved for later. Items carry set semantics keyed
// by course id.
type WishlistItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Instructor      string  `json:"instructor"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Thumbnail       string  `json:"thumbnail"`
	Rating          float64 `json:"rating"`
	Students        int     `json:"students"`
	Category        string  `json:"category"`
}

// NewWishlistItem copies the display fields of a catalog course.
func NewWishlistItem(course Course) WishlistItem {
	return WishlistItem{
		ID:              course.ID,
		Title:           course.Title,
		Instructor:      course.Instructor,
		Price:           course.Price,
		DiscountedPrice: course.DiscountedPrice,
		Thumbnail:       course.Thumbnail,
		Rating:          course.Rating,
		Students:        course.Students,
		Category:        course.Category,
	}
}
