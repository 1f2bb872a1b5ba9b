package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/keng/internal/exercise/student"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "students.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newRecord(t *testing.T, name, surname string, album int, grades ...float64) student.Record {
	t.Helper()
	r, err := student.New(name, surname, album)
	require.NoError(t, err)
	for _, g := range grades {
		require.NoError(t, r.AddGrade(g))
	}
	return r
}

func TestSaveAndLoadStudent(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveStudent(newRecord(t, "Jan", "Kowalski", 123456, 4.5, 3, 2)))

	got, err := store.Student(123456)
	require.NoError(t, err)
	assert.Equal(t, "Jan", got.Name)
	assert.Equal(t, "Kowalski", got.Surname)
	assert.Equal(t, 123456, got.AlbumNumber())
	assert.Equal(t, []float64{4.5, 3, 2}, got.Grades())
	assert.InDelta(t, 3.1666, got.Mean(), 1e-3)
}

func TestSaveStudentUpserts(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveStudent(newRecord(t, "Jan", "Kowalski", 123456, 2, 2)))
	require.NoError(t, store.SaveStudent(newRecord(t, "Janusz", "Kowalski", 123456, 5)))

	got, err := store.Student(123456)
	require.NoError(t, err)
	assert.Equal(t, "Janusz", got.Name)
	assert.Equal(t, []float64{5}, got.Grades())

	all, err := store.Students()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveStudentRejectsInvalidAlbum(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveStudent(newRecord(t, "Jan", "Kowalski", 123456)))

	err := store.SaveStudent(student.Record{Name: "Bad"})
	assert.ErrorIs(t, err, student.ErrInvalidAlbum)

	all, err := store.Students()
	require.NoError(t, err, "the roster stays readable")
	require.Len(t, all, 1)
	assert.Equal(t, 123456, all[0].AlbumNumber())
}

func TestStudentNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Student(99999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.DeleteStudent(99999), ErrNotFound)
}

func TestStudentsOrdered(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveStudent(newRecord(t, "Zofia", "Nowak", 20000, 5)))
	require.NoError(t, store.SaveStudent(newRecord(t, "Adam", "Nowak", 30000)))
	require.NoError(t, store.SaveStudent(newRecord(t, "Ewa", "Adamska", 40000, 3, 4)))

	all, err := store.Students()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 40000, all[0].AlbumNumber())
	assert.Equal(t, 30000, all[1].AlbumNumber())
	assert.Equal(t, 20000, all[2].AlbumNumber())
	assert.Equal(t, []float64{3, 4}, all[0].Grades())
	assert.Empty(t, all[1].Grades())
}

func TestAddGrade(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveStudent(newRecord(t, "Jan", "Kowalski", 123456)))

	rec, err := store.AddGrade(123456, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, rec.Grades())

	_, err = store.AddGrade(123456, 5.5)
	assert.ErrorIs(t, err, student.ErrInvalidGrade)

	_, err = store.AddGrade(11111, 4)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := store.Student(123456)
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, got.Grades(), "rejected grade must not be stored")
}

func TestDeleteStudent(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveStudent(newRecord(t, "Jan", "Kowalski", 123456, 4)))
	require.NoError(t, store.DeleteStudent(123456))

	_, err := store.Student(123456)
	assert.ErrorIs(t, err, ErrNotFound)

	// Re-adding the album starts with no leftover grades.
	require.NoError(t, store.SaveStudent(newRecord(t, "Jan", "Kowalski", 123456)))
	got, err := store.Student(123456)
	require.NoError(t, err)
	assert.Empty(t, got.Grades())
}
