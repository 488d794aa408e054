package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/coursetrail/coursetrail/internal/domain"
	"github.com/coursetrail/coursetrail/internal/storage"
)

// CatalogStore persists course catalog metadata in the courses and lessons
// tables.
type CatalogStore struct {
	db *DB
}

// NewCatalogStore creates a new SQLite-backed catalog store.
func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// SaveCourse persists a course and its lesson list (insert or update).
func (s *CatalogStore) SaveCourse(course *domain.Course) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO courses (id, title, instructor, thumbnail, category, level,
			duration, price, discounted_price, rating, students, total_lessons)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			instructor=excluded.instructor,
			thumbnail=excluded.thumbnail,
			category=excluded.category,
			level=excluded.level,
			duration=excluded.duration,
			price=excluded.price,
			discounted_price=excluded.discounted_price,
			rating=excluded.rating,
			students=excluded.students,
			total_lessons=excluded.total_lessons`,
		course.ID, course.Title, course.Instructor, course.Thumbnail,
		course.Category, course.Level, course.Duration, course.Price,
		course.DiscountedPrice, course.Rating, course.Students, course.TotalLessons,
	)
	if err != nil {
		return fmt.Errorf("upsert course: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM lessons WHERE course_id = ?", course.ID); err != nil {
		return fmt.Errorf("clear lessons: %w", err)
	}

	for i, lesson := range course.Lessons {
		_, err := tx.Exec(`
			INSERT INTO lessons (course_id, id, position, title, url, thumbnail, duration)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			course.ID, lesson.ID, i, lesson.Title, lesson.URL, lesson.Thumbnail, lesson.Duration,
		)
		if err != nil {
			return fmt.Errorf("insert lesson %s: %w", lesson.ID, err)
		}
	}

	return tx.Commit()
}

// GetCourse retrieves a course and its lessons by ID.
func (s *CatalogStore) GetCourse(id string) (*domain.Course, error) {
	row := s.db.QueryRow(`
		SELECT id, title, instructor, thumbnail, category, level, duration,
			price, discounted_price, rating, students, total_lessons
		FROM courses WHERE id = ?`, id)

	course, err := scanCourse(row)
	if err != nil {
		return nil, err
	}

	lessons, err := s.courseLessons(id)
	if err != nil {
		return nil, err
	}
	course.Lessons = lessons

	return course, nil
}

// ListCourses returns all courses, without their lesson lists.
func (s *CatalogStore) ListCourses() ([]*domain.Course, error) {
	rows, err := s.db.Query(`
		SELECT id, title, instructor, thumbnail, category, level, duration,
			price, discounted_price, rating, students, total_lessons
		FROM courses ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// DeleteCourse removes a course; its lessons cascade.
func (s *CatalogStore) DeleteCourse(id string) error {
	result, err := s.db.Exec("DELETE FROM courses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *CatalogStore) courseLessons(courseID string) ([]domain.Lesson, error) {
	rows, err := s.db.Query(`
		SELECT id, title, url, thumbnail, duration
		FROM lessons WHERE course_id = ? ORDER BY position`, courseID)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var lessons []domain.Lesson
	for rows.Next() {
		var lesson domain.Lesson
		if err := rows.Scan(&lesson.ID, &lesson.Title, &lesson.URL, &lesson.Thumbnail, &lesson.Duration); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var course domain.Course
	err := row.Scan(
		&course.ID, &course.Title, &course.Instructor, &course.Thumbnail,
		&course.Category, &course.Level, &course.Duration, &course.Price,
		&course.DiscountedPrice, &course.Rating, &course.Students, &course.TotalLessons,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("scan course: %w", err)
	}
	return &course, nil
}
