package goal

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memoryRepository struct {
	goals map[uuid.UUID]*CareerGoal
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{goals: make(map[uuid.UUID]*CareerGoal)}
}

func (m *memoryRepository) Create(goal *CareerGoal) error {
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	m.goals[goal.ID] = goal
	return nil
}

func (m *memoryRepository) FindAllByUserID(userID uuid.UUID) ([]CareerGoal, error) {
	var out []CareerGoal
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (m *memoryRepository) FindByID(id uuid.UUID) (*CareerGoal, error) {
	g, ok := m.goals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (m *memoryRepository) Update(goal *CareerGoal) error {
	m.goals[goal.ID] = goal
	return nil
}

func (m *memoryRepository) Delete(id uuid.UUID) error {
	delete(m.goals, id)
	return nil
}

func TestCareerGoalService(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("CreateRequiresTitle", func(t *testing.T) {
		svc := NewService(newMemoryRepository())
		if _, err := svc.Create(owner, CreateCareerGoalDTO{}); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("esperava ErrEmptyTitle, obteve %v", err)
		}
	})

	t.Run("CreateAndList", func(t *testing.T) {
		svc := NewService(newMemoryRepository())
		created, err := svc.Create(owner, CreateCareerGoalDTO{Title: "Become a backend developer"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if created.Status != CareerGoalStatusActive {
			t.Errorf("status inicial deveria ser ACTIVE, obteve %s", created.Status)
		}

		goals, err := svc.List(owner)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(goals) != 1 || goals[0].Title != "Become a backend developer" {
			t.Fatalf("lista inesperada: %+v", goals)
		}
	})

	t.Run("UpdateRejectsOtherUser", func(t *testing.T) {
		svc := NewService(newMemoryRepository())
		created, _ := svc.Create(owner, CreateCareerGoalDTO{Title: "Learn Flutter"})

		title := "hijacked"
		if _, err := svc.Update(created.ID, stranger, UpdateCareerGoalDTO{Title: &title}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("esperava ErrForbidden, obteve %v", err)
		}
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		svc := NewService(newMemoryRepository())
		created, _ := svc.Create(owner, CreateCareerGoalDTO{Title: "Learn Dart"})

		status := CareerGoalStatusCompleted
		updated, err := svc.Update(created.ID, owner, UpdateCareerGoalDTO{Status: &status})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if updated.Status != CareerGoalStatusCompleted {
			t.Errorf("status deveria ser COMPLETED, obteve %s", updated.Status)
		}
	})

	t.Run("DeleteRejectsOtherUser", func(t *testing.T) {
		svc := NewService(newMemoryRepository())
		created, _ := svc.Create(owner, CreateCareerGoalDTO{Title: "Study AI"})

		if err := svc.Delete(created.ID, stranger); !errors.Is(err, ErrForbidden) {
			t.Fatalf("esperava ErrForbidden, obteve %v", err)
		}
		if err := svc.Delete(created.ID, owner); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if goals, _ := svc.List(owner); len(goals) != 0 {
			t.Fatalf("meta deveria ter sido removida: %+v", goals)
		}
	})
}
