package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/keng/internal/exercise/student"
)

// SaveStudent inserts or updates a student and replaces their grades.
// Records with an invalid album number are rejected with student.ErrInvalidAlbum.
func (s *Store) SaveStudent(r student.Record) error {
	if !student.ValidAlbum(r.AlbumNumber()) {
		return fmt.Errorf("storage: %w: %d", student.ErrInvalidAlbum, r.AlbumNumber())
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	album := r.AlbumNumber()
	_, err = tx.Exec(
		`INSERT INTO students (album, name, surname) VALUES (?, ?, ?)
		 ON CONFLICT(album) DO UPDATE SET
		   name = excluded.name,
		   surname = excluded.surname,
		   updated_at = CURRENT_TIMESTAMP`,
		album, r.Name, r.Surname,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save student %d: %w", album, err)
	}

	if _, err := tx.Exec("DELETE FROM grades WHERE album = ?", album); err != nil {
		return fmt.Errorf("storage: cannot clear grades for %d: %w", album, err)
	}
	for _, g := range r.Grades() {
		if _, err := tx.Exec("INSERT INTO grades (album, grade) VALUES (?, ?)", album, g); err != nil {
			return fmt.Errorf("storage: cannot save grade for %d: %w", album, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit student %d: %w", album, err)
	}
	return nil
}

// Student loads one student with grades in insertion order.
// Returns ErrNotFound if the album number is unknown.
func (s *Store) Student(album int) (student.Record, error) {
	var name, surname string
	err := s.db.QueryRow(
		"SELECT name, surname FROM students WHERE album = ?", album,
	).Scan(&name, &surname)
	if errors.Is(err, sql.ErrNoRows) {
		return student.Record{}, fmt.Errorf("%w: student %d", ErrNotFound, album)
	}
	if err != nil {
		return student.Record{}, fmt.Errorf("storage: cannot query student %d: %w", album, err)
	}

	grades, err := s.gradesByAlbum(album)
	if err != nil {
		return student.Record{}, err
	}
	return buildRecord(name, surname, album, grades[album])
}

// Students returns every student ordered by surname, name and album.
func (s *Store) Students() ([]student.Record, error) {
	rows, err := s.db.Query(
		"SELECT album, name, surname FROM students ORDER BY surname, name, album",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query students: %w", err)
	}
	defer rows.Close()

	type row struct {
		album         int
		name, surname string
	}
	var list []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.album, &r.name, &r.surname); err != nil {
			return nil, fmt.Errorf("storage: cannot scan student: %w", err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	grades, err := s.gradesByAlbum(0)
	if err != nil {
		return nil, err
	}

	records := make([]student.Record, 0, len(list))
	for _, r := range list {
		rec, err := buildRecord(r.name, r.surname, r.album, grades[r.album])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// AddGrade validates and appends one grade to a stored student.
// Invalid grades return student.ErrInvalidGrade and nothing is written.
func (s *Store) AddGrade(album int, grade float64) (student.Record, error) {
	rec, err := s.Student(album)
	if err != nil {
		return student.Record{}, err
	}
	if err := rec.AddGrade(grade); err != nil {
		return student.Record{}, err
	}

	if _, err := s.db.Exec("INSERT INTO grades (album, grade) VALUES (?, ?)", album, grade); err != nil {
		return student.Record{}, fmt.Errorf("storage: cannot save grade for %d: %w", album, err)
	}
	return rec, nil
}

// DeleteStudent removes a student and their grades.
// Returns ErrNotFound if the album number is unknown.
func (s *Store) DeleteStudent(album int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM grades WHERE album = ?", album); err != nil {
		return fmt.Errorf("storage: cannot delete grades for %d: %w", album, err)
	}
	res, err := tx.Exec("DELETE FROM students WHERE album = ?", album)
	if err != nil {
		return fmt.Errorf("storage: cannot delete student %d: %w", album, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: student %d", ErrNotFound, album)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete of %d: %w", album, err)
	}
	return nil
}

// gradesByAlbum loads grades grouped by album; album 0 loads every student.
func (s *Store) gradesByAlbum(album int) (map[int][]float64, error) {
	query := "SELECT album, grade FROM grades ORDER BY album, id"
	args := []any{}
	if album != 0 {
		query = "SELECT album, grade FROM grades WHERE album = ? ORDER BY id"
		args = append(args, album)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query grades: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]float64)
	for rows.Next() {
		var a int
		var g float64
		if err := rows.Scan(&a, &g); err != nil {
			return nil, fmt.Errorf("storage: cannot scan grade: %w", err)
		}
		out[a] = append(out[a], g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// buildRecord rebuilds a validated record from stored columns.
func buildRecord(name, surname string, album int, grades []float64) (student.Record, error) {
	rec, err := student.New(name, surname, album)
	if err != nil {
		return student.Record{}, fmt.Errorf("storage: stored student %d: %w", album, err)
	}
	for _, g := range grades {
		if err := rec.AddGrade(g); err != nil {
			return student.Record{}, fmt.Errorf("storage: stored grade for %d: %w", album, err)
		}
	}
	return rec, nil
}
