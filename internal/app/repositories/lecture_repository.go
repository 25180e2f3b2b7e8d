package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devraj/lecturehall/internal/app/models"
)

// ILectureRepository defines the interface for lecture-related database operations
type ILectureRepository interface {
	Create(ctx context.Context, lecture *models.Lecture) error
	ListScheduleByInstructor(ctx context.Context, email string) ([]models.ScheduleItem, error)
}

// LectureRepository handles lecture database operations
type LectureRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLectureRepository creates a new LectureRepository
func NewLectureRepository(db *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new lecture and sets the generated ID.
func (r *LectureRepository) Create(ctx context.Context, lecture *models.Lecture) error {
	sql, args, err := r.sb.Insert("lectures").
		Columns("course_id", "instructor_email", "date").
		Values(lecture.CourseID, lecture.InstructorEmail, lecture.Date).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create lecture query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&lecture.ID, &lecture.CreatedAt); err != nil {
		return fmt.Errorf("error creating lecture: %w", err)
	}

	return nil
}

// ListScheduleByInstructor returns the lectures assigned to the given
// instructor with the course name resolved, soonest date first.
func (r *LectureRepository) ListScheduleByInstructor(ctx context.Context, email string) ([]models.ScheduleItem, error) {
	sql, args, err := r.sb.Select("c.name", "l.date").
		From("lectures l").
		Join("courses c ON c.id = l.course_id").
		Where(squirrel.Eq{"l.instructor_email": email}).
		OrderBy("l.date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing schedule: %w", err)
	}
	defer rows.Close()

	items := make([]models.ScheduleItem, 0)
	for rows.Next() {
		var item models.ScheduleItem
		if err := rows.Scan(&item.CourseName, &item.Date); err != nil {
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return items, nil
}
