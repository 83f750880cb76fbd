package memory_test

import (
	"context"
	"sync"
	"testing"

	"resume-collector-backend/internal/domain"
	"resume-collector-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCandidate(name string, skills []string, exp float64, year int) *domain.Candidate {
	return &domain.Candidate{
		FullName:          name,
		DateOfBirth:       domain.NewDate(2000, 1, 2),
		ContactNumber:     "12345",
		SkillSet:          skills,
		YearsOfExperience: exp,
		GraduationYear:    year,
		ResumeFilename:    "cv.pdf",
		ResumeContent:     []byte("%PDF-1.4"),
	}
}

func TestCandidateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign distinct ids and return stored copies", func(t *testing.T) {
		repo := memory.NewCandidateRepository()

		a := newCandidate("A", []string{"Go"}, 1, 2020)
		b := newCandidate("B", []string{"SQL"}, 2, 2021)
		idA, err := repo.Insert(ctx, a)
		require.NoError(t, err)
		idB, err := repo.Insert(ctx, b)
		require.NoError(t, err)

		assert.NotEqual(t, idA, idB)
		assert.Equal(t, idA, a.ID)
		assert.Len(t, idA, 36)

		got, err := repo.GetByID(ctx, idA)
		require.NoError(t, err)
		assert.Equal(t, "A", got.FullName)
		assert.Equal(t, []byte("%PDF-1.4"), got.ResumeContent)

		// mutating the returned value must not leak into the store
		got.SkillSet[0] = "changed"
		again, err := repo.GetByID(ctx, idA)
		require.NoError(t, err)
		assert.Equal(t, []string{"Go"}, again.SkillSet)

		gotB, err := repo.GetByID(ctx, idB)
		require.NoError(t, err)
		assert.Equal(t, "B", gotB.FullName)
	})

	t.Run("Should fail with not found after delete", func(t *testing.T) {
		repo := memory.NewCandidateRepository()
		id, err := repo.Insert(ctx, newCandidate("A", []string{"Go"}, 1, 2020))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, id))

		_, err = repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrCandidateNotFound)
	})

	t.Run("Should fail with not found for unknown ids", func(t *testing.T) {
		repo := memory.NewCandidateRepository()
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
	})

	t.Run("Should filter conjunctively in insertion order", func(t *testing.T) {
		repo := memory.NewCandidateRepository()
		for _, c := range []*domain.Candidate{
			newCandidate("pg", []string{"PostgreSQL", "Go"}, 3, 2020),
			newCandidate("py", []string{"Python"}, 5, 2020),
			newCandidate("sql", []string{"sql"}, 1, 2019),
			newCandidate("mysql", []string{"MySQL"}, 7, 2020),
		} {
			_, err := repo.Insert(ctx, c)
			require.NoError(t, err)
		}

		names := func(filter domain.CandidateFilter) []string {
			list, err := repo.List(ctx, filter)
			require.NoError(t, err)
			out := make([]string, 0, len(list))
			for _, c := range list {
				out = append(out, c.FullName)
			}
			return out
		}

		exp := 3.0
		year := 2020

		assert.Equal(t, []string{"pg", "py", "sql", "mysql"}, names(domain.CandidateFilter{}))
		assert.Equal(t, []string{"pg", "sql", "mysql"}, names(domain.CandidateFilter{Skill: "sql"}))
		assert.Equal(t, []string{"pg", "sql", "mysql"}, names(domain.CandidateFilter{Skill: " SQL "}))
		assert.Equal(t, []string{"pg", "py", "mysql"}, names(domain.CandidateFilter{MinExperience: &exp}))
		assert.Equal(t, []string{"pg", "py", "mysql"}, names(domain.CandidateFilter{GraduationYear: &year}))
		assert.Equal(t, []string{"pg", "mysql"}, names(domain.CandidateFilter{Skill: "sql", MinExperience: &exp, GraduationYear: &year}))
		assert.Empty(t, names(domain.CandidateFilter{Skill: "rust"}))
	})

	t.Run("Should keep order after deleting from the middle", func(t *testing.T) {
		repo := memory.NewCandidateRepository()
		var ids []string
		for _, n := range []string{"a", "b", "c"} {
			id, err := repo.Insert(ctx, newCandidate(n, []string{"Go"}, 1, 2020))
			require.NoError(t, err)
			ids = append(ids, id)
		}
		require.NoError(t, repo.Delete(ctx, ids[1]))

		list, err := repo.List(ctx, domain.CandidateFilter{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, ids[0], list[0].ID)
		assert.Equal(t, ids[2], list[1].ID)
	})

	t.Run("Should be safe for concurrent use", func(t *testing.T) {
		repo := memory.NewCandidateRepository()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := repo.Insert(ctx, newCandidate("c", []string{"Go"}, 1, 2020))
				assert.NoError(t, err)
				_, _ = repo.List(ctx, domain.CandidateFilter{Skill: "go"})
				assert.NoError(t, repo.Delete(ctx, id))
			}()
		}
		wg.Wait()

		list, err := repo.List(ctx, domain.CandidateFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
