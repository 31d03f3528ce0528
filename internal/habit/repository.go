package habit

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/streakquest/streakquest/internal/constants"
	"github.com/streakquest/streakquest/internal/models"
	"github.com/streakquest/streakquest/internal/storage"
	"github.com/streakquest/streakquest/internal/validation"
)

// ErrNotFound is returned when no habit has the requested id.
var ErrNotFound = errors.New("habit not found")

// CreateInput carries the user-supplied fields of a new habit. Derived
// fields (id, streak, progress, history) are assigned by the repository.
type CreateInput struct {
	Name         string
	Category     string
	Frequency    []string
	ReminderTime string
	Color        string
	Icon         string
	Unit         string
	Goal         int
	DailyTarget  int
}

// UpdateInput is a partial habit update; nil fields are left unchanged.
type UpdateInput struct {
	ID           string
	Name         *string
	Category     *string
	Frequency    []string
	ReminderTime *string
	Color        *string
	Icon         *string
	Unit         *string
	Goal         *int
	DailyTarget  *int
}

// Repository owns the habit collection. All mutation is read-modify-write
// through the storage provider; the clock is injected so tests can pin
// "today".
type Repository struct {
	store storage.Provider
	now   func() time.Time
}

func NewRepository(store storage.Provider, now func() time.Time) *Repository {
	return &Repository{store: store, now: now}
}

func (r *Repository) today() string {
	return r.now().Format(constants.DateFormat)
}

// List returns the habit collection after applying the daily progress
// reset, re-persisting only when the reset changed something.
func (r *Repository) List() ([]models.Habit, error) {
	habits, err := r.store.GetHabits()
	if err != nil {
		return nil, err
	}

	if resetDailyProgress(habits, r.today()) {
		if err := r.store.SaveHabits(habits); err != nil {
			return nil, err
		}
	}

	return habits, nil
}

// Create validates the input, assigns a fresh id with zeroed counters, and
// appends the habit to the collection.
func (r *Repository) Create(in CreateInput) (models.Habit, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return models.Habit{}, err
	}
	if err := validation.ValidateDailyTarget(in.DailyTarget); err != nil {
		return models.Habit{}, err
	}
	if err := validation.ValidateGoal(in.Goal); err != nil {
		return models.Habit{}, err
	}
	if err := validation.ValidateReminderTime(in.ReminderTime); err != nil {
		return models.Habit{}, err
	}
	frequency, err := validation.ParseFrequency(in.Frequency)
	if err != nil {
		return models.Habit{}, err
	}
	if len(frequency) == 0 {
		return models.Habit{}, fmt.Errorf("habit must be scheduled on at least one weekday")
	}

	habit := models.Habit{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Category:          in.Category,
		Frequency:         frequency,
		ReminderTime:      in.ReminderTime,
		Color:             in.Color,
		Icon:              in.Icon,
		Unit:              in.Unit,
		Goal:              in.Goal,
		DailyTarget:       in.DailyTarget,
		CompletionHistory: make(map[string]int),
	}
	if habit.DailyTarget == 0 {
		habit.DailyTarget = constants.DefaultDailyTarget
	}
	if habit.Goal == 0 {
		habit.Goal = constants.DefaultGoal
	}

	habits, err := r.List()
	if err != nil {
		return models.Habit{}, err
	}

	habits = append(habits, habit)
	if err := r.store.SaveHabits(habits); err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

// Update merges the non-nil fields of the partial into the habit with the
// matching id.
func (r *Repository) Update(in UpdateInput) (models.Habit, error) {
	habits, err := r.List()
	if err != nil {
		return models.Habit{}, err
	}

	i := indexOf(habits, in.ID)
	if i < 0 {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrNotFound, in.ID)
	}

	h := &habits[i]
	if in.Name != nil {
		if err := validation.ValidateName(*in.Name); err != nil {
			return models.Habit{}, err
		}
		h.Name = *in.Name
	}
	if in.Category != nil {
		h.Category = *in.Category
	}
	if in.Frequency != nil {
		frequency, err := validation.ParseFrequency(in.Frequency)
		if err != nil {
			return models.Habit{}, err
		}
		if len(frequency) == 0 {
			return models.Habit{}, fmt.Errorf("habit must be scheduled on at least one weekday")
		}
		h.Frequency = frequency
	}
	if in.ReminderTime != nil {
		if err := validation.ValidateReminderTime(*in.ReminderTime); err != nil {
			return models.Habit{}, err
		}
		h.ReminderTime = *in.ReminderTime
	}
	if in.Color != nil {
		h.Color = *in.Color
	}
	if in.Icon != nil {
		h.Icon = *in.Icon
	}
	if in.Unit != nil {
		h.Unit = *in.Unit
	}
	if in.Goal != nil {
		if *in.Goal < 1 {
			return models.Habit{}, fmt.Errorf("goal must be a positive number")
		}
		h.Goal = *in.Goal
	}
	if in.DailyTarget != nil {
		if *in.DailyTarget < 1 {
			return models.Habit{}, fmt.Errorf("daily target must be a positive number")
		}
		h.DailyTarget = *in.DailyTarget
	}

	if err := r.store.SaveHabits(habits); err != nil {
		return models.Habit{}, err
	}

	return *h, nil
}

// Delete removes the habit with the given id. A missing id is not an error;
// it reports false.
func (r *Repository) Delete(id string) (bool, error) {
	habits, err := r.List()
	if err != nil {
		return false, err
	}

	i := indexOf(habits, id)
	if i < 0 {
		return false, nil
	}

	habits = append(habits[:i], habits[i+1:]...)
	if err := r.store.SaveHabits(habits); err != nil {
		return false, err
	}

	return true, nil
}

// Get returns the habit with the given id.
func (r *Repository) Get(id string) (models.Habit, error) {
	habits, err := r.List()
	if err != nil {
		return models.Habit{}, err
	}
	i := indexOf(habits, id)
	if i < 0 {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return habits[i], nil
}

// Complete records one completion event for the habit at today's date and
// persists the collection. The returned bool is true when this event first
// brought the day to full completion.
func (r *Repository) Complete(id string) (models.Habit, bool, error) {
	habits, err := r.List()
	if err != nil {
		return models.Habit{}, false, err
	}

	i := indexOf(habits, id)
	if i < 0 {
		return models.Habit{}, false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	completed := applyCompletion(&habits[i], r.now())
	if err := r.store.SaveHabits(habits); err != nil {
		return models.Habit{}, false, err
	}

	return habits[i], completed, nil
}

func indexOf(habits []models.Habit, id string) int {
	for i := range habits {
		if habits[i].ID == id {
			return i
		}
	}
	return -1
}
