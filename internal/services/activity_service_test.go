package services

import (
	"errors"
	"testing"

	"github.com/strideapp/stride/internal/models"
)

type activityCatalogStub struct {
	activities []models.Activity
	nextID     uint
	createErr  error
}

func newActivityCatalogStub() *activityCatalogStub {
	return &activityCatalogStub{nextID: 1}
}

func (stub *activityCatalogStub) List() ([]models.Activity, error) {
	return stub.activities, nil
}

func (stub *activityCatalogStub) ListSlugs() ([]string, error) {
	slugs := make([]string, 0, len(stub.activities))
	for _, activity := range stub.activities {
		slugs = append(slugs, activity.Slug)
	}
	return slugs, nil
}

func (stub *activityCatalogStub) ExistsBySlug(slugValue string) (bool, error) {
	for _, activity := range stub.activities {
		if activity.Slug == slugValue {
			return true, nil
		}
	}
	return false, nil
}

func (stub *activityCatalogStub) FindByID(activityID uint) (models.Activity, bool, error) {
	for _, activity := range stub.activities {
		if activity.ID == activityID {
			return activity, true, nil
		}
	}
	return models.Activity{}, false, nil
}

func (stub *activityCatalogStub) Create(activity *models.Activity) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	activity.ID = stub.nextID
	stub.nextID++
	stub.activities = append(stub.activities, *activity)
	return nil
}

func TestNormalizeActivityName(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantName string
		wantSlug string
	}{
		{name: "plain word lowers", raw: "Running", wantName: "Running", wantSlug: "running"},
		{name: "spaces become dashes", raw: "Push Ups", wantName: "Push Ups", wantSlug: "push-ups"},
		{name: "surrounding space trimmed", raw: "  running ", wantName: "running", wantSlug: "running"},
		{name: "punctuation normalized", raw: "Sit-ups!", wantName: "Sit-ups!", wantSlug: "sit-ups"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			name, slugValue := NormalizeActivityName(testCase.raw)
			if name != testCase.wantName || slugValue != testCase.wantSlug {
				t.Fatalf("NormalizeActivityName(%q) = (%q, %q), want (%q, %q)",
					testCase.raw, name, slugValue, testCase.wantName, testCase.wantSlug)
			}
		})
	}
}

func TestCreateActivityStoresSlug(t *testing.T) {
	service := NewActivityService(newActivityCatalogStub())

	activity, err := service.Create(ActivityInput{Name: "Push Ups", Points: 2, Unit: "reps"})
	if err != nil {
		t.Fatalf("expected activity creation to succeed, got %v", err)
	}
	if activity.Slug != "push-ups" {
		t.Fatalf("expected slug push-ups, got %q", activity.Slug)
	}
	if activity.ID == 0 {
		t.Fatalf("expected persisted activity to carry an id")
	}
}

func TestCreateActivityRejectsCollidingNames(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		incoming string
	}{
		{name: "trailing space", existing: "Running", incoming: "running "},
		{name: "case difference", existing: "Running", incoming: "RUNNING"},
		{name: "punctuation collapse", existing: "Push Ups", incoming: "push-ups"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			service := NewActivityService(newActivityCatalogStub())
			if _, err := service.Create(ActivityInput{Name: testCase.existing}); err != nil {
				t.Fatalf("seed activity creation failed: %v", err)
			}

			_, err := service.Create(ActivityInput{Name: testCase.incoming})
			if !errors.Is(err, ErrActivityNameTaken) {
				t.Fatalf("expected ErrActivityNameTaken for %q after %q, got %v",
					testCase.incoming, testCase.existing, err)
			}
		})
	}
}

func TestCreateActivityRequiresName(t *testing.T) {
	service := NewActivityService(newActivityCatalogStub())

	if _, err := service.Create(ActivityInput{Name: "   "}); !errors.Is(err, ErrActivityNameRequired) {
		t.Fatalf("expected ErrActivityNameRequired, got %v", err)
	}
}

func TestCreateActivityInsertFailureSurfacesAsCreateFailed(t *testing.T) {
	catalog := newActivityCatalogStub()
	service := NewActivityService(catalog)
	catalog.createErr = errors.New("disk I/O error")

	if _, err := service.Create(ActivityInput{Name: "Running"}); !errors.Is(err, ErrActivityCreateFailed) {
		t.Fatalf("expected ErrActivityCreateFailed for store failure, got %v", err)
	}
}
