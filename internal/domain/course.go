package domain

import (
	"strconv"
	"strings"
)

// Course is catalog metadata for a single course. It is supplied by the
// course catalog and copied into the stores that need it at enroll time.
type Course struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Instructor      string   `json:"instructor" yaml:"instructor"`
	Thumbnail       string   `json:"thumbnail" yaml:"thumbnail"`
	Category        string   `json:"category" yaml:"category"`
	Level           string   `json:"level" yaml:"level"`
	Duration        string   `json:"duration" yaml:"duration"` // free text, e.g. "12 hours"
	Price           float64  `json:"price" yaml:"price"`
	DiscountedPrice float64  `json:"discounted_price" yaml:"discounted_price"`
	Rating          float64  `json:"rating" yaml:"rating"`
	Students        int      `json:"students" yaml:"students"`
	TotalLessons    int      `json:"total_lessons" yaml:"total_lessons"`
	Lessons         []Lesson `json:"lessons,omitempty" yaml:"lessons"`
}

// Lesson is the atomic unit of course content.
type Lesson struct {
	ID        string  `json:"id" yaml:"id"`
	Title     string  `json:"title" yaml:"title"`
	URL       string  `json:"url,omitempty" yaml:"url"`
	Thumbnail string  `json:"thumbnail,omitempty" yaml:"thumbnail"`
	Duration  float64 `json:"duration,omitempty" yaml:"duration"` // seconds
}

// DurationHours parses the leading integer out of the free-text duration
// ("12 hours" -> 12). A duration with no numeric prefix contributes 0.
func (c *Course) DurationHours() int {
	return ParseDurationHours(c.Duration)
}

// ParseDurationHours extracts the numeric prefix of a free-text duration.
func ParseDurationHours(duration string) int {
	s := strings.TrimSpace(duration)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}

// LessonKey builds the composite key used wherever state is tracked per
// (course, lesson) pair. Safe for use as a file name.
func LessonKey(courseID, lessonID string) string {
	return courseID + "__" + lessonID
}
