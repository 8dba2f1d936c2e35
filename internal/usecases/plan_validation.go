package usecases

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"finroute.backend/internal/domain/entities"
	"finroute.backend/pkg/utils"
)

// ValidationErrors maps field paths to messages. Goal fields use the
// wire convention goal-<id>-<field> so clients can attach errors to the
// inputs they submitted; scalar fields use their bare name.
type ValidationErrors map[string]string

// Valid reports whether validation passed
func (v ValidationErrors) Valid() bool {
	return len(v) == 0
}

func (v ValidationErrors) add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

func goalField(goalID, field string) string {
	return fmt.Sprintf("goal-%s-%s", goalID, field)
}

// ValidateGeneratePlanInput checks the whole generation request and
// returns a field-keyed error map. It never panics past this boundary;
// callers must check Valid() before proceeding.
func ValidateGeneratePlanInput(input *entities.GeneratePlanInput) ValidationErrors {
	errs := ValidationErrors{}

	if len(input.Goals) == 0 {
		errs.add("goals", "at least one goal is required")
	}

	for i, g := range input.Goals {
		id := g.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		validateGoal(errs, id, g)
	}

	if input.NetWorth < 0 {
		errs.add("netWorth", "net worth must be zero or greater")
	}
	if input.SavingsRate < 0 || input.SavingsRate > 100 {
		errs.add("savingsRate", "savings rate must be between 0 and 100")
	}
	if input.TotalDebt < 0 {
		errs.add("totalDebt", "total debt must be zero or greater")
	}
	if input.MonthlyNetSalary < 1 {
		errs.add("monthlyNetSalary", "monthly net salary must be at least 1")
	}

	return errs
}

func validateGoal(errs ValidationErrors, id string, g entities.GoalInput) {
	if strings.TrimSpace(g.Name) == "" {
		errs.add(goalField(id, "name"), "goal name is required")
	}

	target, targetOK := parseAmount(g.TargetAmount)
	if !targetOK || target < 1 {
		errs.add(goalField(id, "targetAmount"), "target amount must be a number of at least 1")
	}

	current, currentOK := parseAmount(g.CurrentAmount)
	if !currentOK || current < 0 {
		errs.add(goalField(id, "currentAmount"), "current amount must be a number of zero or greater")
	}

	// Cross-field check attaches to currentAmount
	if targetOK && currentOK && current > target {
		errs.add(goalField(id, "currentAmount"), "current amount cannot exceed target amount")
	}

	if strings.TrimSpace(g.TargetDate) == "" {
		errs.add(goalField(id, "targetDate"), "target date is required")
	}
}

func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NormalizeGoals converts validated goal inputs into domain goals,
// assigning each a stable server-side ID. Call only after validation
// has passed.
func NormalizeGoals(inputs []entities.GoalInput) []entities.Goal {
	goals := make([]entities.Goal, 0, len(inputs))
	for _, in := range inputs {
		target, _ := parseAmount(in.TargetAmount)
		current, _ := parseAmount(in.CurrentAmount)

		g := entities.Goal{
			ID:            utils.GenerateUUIDv7(),
			Name:          strings.TrimSpace(in.Name),
			TargetAmount:  target,
			CurrentAmount: current,
			TargetDate:    strings.TrimSpace(in.TargetDate),
		}
		if parsed, err := uuid.Parse(in.ID); err == nil {
			// Client-supplied ids are kept when they are real UUIDs
			g.ID = parsed
		}
		if desc := strings.TrimSpace(in.Description); desc != "" {
			g.Description = null.StringFrom(desc)
		}
		goals = append(goals, g)
	}
	return goals
}
