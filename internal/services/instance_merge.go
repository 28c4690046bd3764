package services

import (
	"errors"
	"time"

	"github.com/strideapp/stride/internal/models"
)

var ErrInstanceNotFound = errors.New("workout instance not found")

// SameDay reports whether two timestamps fall on the same calendar day.
// Instance dates carry no meaningful time component; the day is the identity.
func SameDay(left time.Time, right time.Time) bool {
	return left.Year() == right.Year() && left.Month() == right.Month() && left.Day() == right.Day()
}

// MergeInstances folds a submission into an instance set. A submission for a
// day that already has an instance adds its amount onto that instance, keeping
// its identity; any other day appends a fresh instance. The input slice is
// left untouched and the result keeps the input order.
//
// Amounts are assumed validated non-negative by the caller.
func MergeInstances(instances []models.Instance, day time.Time, amount float64) []models.Instance {
	merged := make([]models.Instance, len(instances))
	copy(merged, instances)

	for index := range merged {
		if SameDay(merged[index].Date, day) {
			merged[index].Amount += amount
			return merged
		}
	}

	return append(merged, models.Instance{Date: day, Amount: amount})
}

// ApplyInstanceEdit replaces the date and amount of the identified instance,
// keeping its identity. An amount of zero removes the instance instead; the
// second result reports whether the removal emptied the set, in which case
// the owning workout must be deleted.
//
// Edits do not re-run the same-day merge: moving an instance onto a day that
// already has one leaves both in place. Only the submission path merges.
func ApplyInstanceEdit(instances []models.Instance, instanceID uint, day time.Time, amount float64) ([]models.Instance, bool, error) {
	matched := -1
	for index := range instances {
		if instances[index].ID == instanceID {
			matched = index
			break
		}
	}
	if matched < 0 {
		return nil, false, ErrInstanceNotFound
	}

	if amount == 0 {
		remaining := make([]models.Instance, 0, len(instances)-1)
		remaining = append(remaining, instances[:matched]...)
		remaining = append(remaining, instances[matched+1:]...)
		return remaining, len(remaining) == 0, nil
	}

	edited := make([]models.Instance, len(instances))
	copy(edited, instances)
	edited[matched].Date = day
	edited[matched].Amount = amount
	return edited, false, nil
}
