package handlers

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"finroute.backend/internal/domain/entities"
	"finroute.backend/internal/usecases"
)

// goalFieldNames are the recognized suffixes of flattened goal keys
var goalFieldNames = []string{"name", "description", "targetAmount", "currentAmount", "targetDate"}

// parseGeneratePlanForm decodes the flattened generate request. Goal
// inputs arrive as goal-<id>-<field> keys; the id segment may itself
// contain hyphens, so keys are split on the known field suffix. Scalar
// parse failures come back as field-keyed validation errors.
func parseGeneratePlanForm(values url.Values) (*entities.GeneratePlanInput, usecases.ValidationErrors) {
	errs := usecases.ValidationErrors{}
	input := &entities.GeneratePlanInput{}

	goals := map[string]*entities.GoalInput{}
	var order []string

	for key := range values {
		if !strings.HasPrefix(key, "goal-") {
			continue
		}
		id, field, ok := splitGoalKey(key)
		if !ok {
			continue
		}

		g, exists := goals[id]
		if !exists {
			g = &entities.GoalInput{ID: id}
			goals[id] = g
			order = append(order, id)
		}

		value := values.Get(key)
		switch field {
		case "name":
			g.Name = value
		case "description":
			g.Description = value
		case "targetAmount":
			g.TargetAmount = value
		case "currentAmount":
			g.CurrentAmount = value
		case "targetDate":
			g.TargetDate = value
		}
	}

	// Map iteration is unordered; sort so repeated submissions of the
	// same form produce the same goal order
	sort.Strings(order)
	for _, id := range order {
		input.Goals = append(input.Goals, *goals[id])
	}

	input.NetWorth = parseFormFloat(values, "netWorth", errs)
	input.SavingsRate = parseFormFloat(values, "savingsRate", errs)
	input.TotalDebt = parseFormFloat(values, "totalDebt", errs)
	input.MonthlyNetSalary = parseFormFloat(values, "monthlyNetSalary", errs)
	input.Currency = strings.TrimSpace(values.Get("currency"))
	input.IsFirstPlan = values.Get("isFirstPlan") == "true"

	return input, errs
}

func splitGoalKey(key string) (id, field string, ok bool) {
	rest := strings.TrimPrefix(key, "goal-")
	for _, f := range goalFieldNames {
		suffix := "-" + f
		if strings.HasSuffix(rest, suffix) && len(rest) > len(suffix) {
			return strings.TrimSuffix(rest, suffix), f, true
		}
	}
	return "", "", false
}

func parseFormFloat(values url.Values, field string, errs usecases.ValidationErrors) float64 {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs[field] = field + " must be a number"
		return 0
	}
	return v
}
