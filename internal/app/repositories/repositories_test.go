package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yigit/campusregistry/internal/app/models"
)

func TestStudentRepositorySaveReturnsReplacedRow(t *testing.T) {
	t.Parallel()

	repo := NewStudentRepository()
	require.Nil(t, repo.Save(models.NewStudent(1, "Alice", 20)))

	previous := repo.Save(models.NewStudent(1, "Alicia", 21))
	require.NotNil(t, previous)
	require.Equal(t, "Alice", previous.Name)

	got, ok := repo.FindByID(1)
	require.True(t, ok)
	require.Equal(t, "Alicia", got.Name)
	require.Equal(t, 1, repo.Count())
}

func TestClassRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := NewClassRepository()
	repo.Save(models.NewClass(201, "Computer Science"))

	require.True(t, repo.Exists(201))
	removed := repo.Delete(201)
	require.NotNil(t, removed)
	require.Equal(t, int64(201), removed.ID)
	require.False(t, repo.Exists(201))
	require.Nil(t, repo.Delete(201))
}

func TestFindAllIsOrderedByID(t *testing.T) {
	t.Parallel()

	repos := NewRepositories()
	for _, id := range []int64{303, 301, 302} {
		repos.CourseRepository.Save(models.NewCourse(id, "course"))
	}

	var ids []int64
	for _, c := range repos.CourseRepository.FindAll() {
		ids = append(ids, c.ID)
	}
	require.Equal(t, []int64{301, 302, 303}, ids)
	require.Empty(t, repos.ClubRepository.FindAll())
}
