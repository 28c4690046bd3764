package services

import (
	"errors"
	"strings"

	"github.com/gosimple/slug"
	"github.com/strideapp/stride/internal/models"
)

var (
	ErrActivityNameRequired = errors.New("activity name is required")
	ErrActivityNameTaken    = errors.New("activity name would not be unique as a URL")
	ErrActivityLoadFailed   = errors.New("load activities failed")
	ErrActivityCreateFailed = errors.New("create activity failed")
)

type ActivityStore interface {
	List() ([]models.Activity, error)
	ListSlugs() ([]string, error)
	ExistsBySlug(slugValue string) (bool, error)
	FindByID(activityID uint) (models.Activity, bool, error)
	Create(activity *models.Activity) error
}

type ActivityInput struct {
	Name        string
	Points      int
	Type        string
	Unit        string
	Description string
	URL         string
	Icon        string
}

// ActivityService guards the catalog: an activity's name must stay unique
// after slugification, since the slug doubles as its URL identity. The slug
// scan is advisory; uidx_activity_slug in the store settles concurrent
// creations with colliding names.
type ActivityService struct {
	activities ActivityStore
}

func NewActivityService(activities ActivityStore) *ActivityService {
	return &ActivityService{activities: activities}
}

func NormalizeActivityName(name string) (string, string) {
	trimmed := strings.TrimSpace(name)
	return trimmed, slug.Make(trimmed)
}

func (service *ActivityService) List() ([]models.Activity, error) {
	return service.activities.List()
}

func (service *ActivityService) Create(input ActivityInput) (models.Activity, error) {
	name, slugValue := NormalizeActivityName(input.Name)
	if name == "" || slugValue == "" {
		return models.Activity{}, ErrActivityNameRequired
	}

	existingSlugs, err := service.activities.ListSlugs()
	if err != nil {
		return models.Activity{}, ErrActivityLoadFailed
	}
	for _, existing := range existingSlugs {
		if existing == slugValue {
			return models.Activity{}, ErrActivityNameTaken
		}
	}

	activity := models.Activity{
		Name:        name,
		Slug:        slugValue,
		Points:      input.Points,
		Type:        strings.TrimSpace(input.Type),
		Unit:        strings.TrimSpace(input.Unit),
		Description: strings.TrimSpace(input.Description),
		URL:         strings.TrimSpace(input.URL),
		Icon:        strings.TrimSpace(input.Icon),
	}
	if err := service.activities.Create(&activity); err != nil {
		// The advisory scan is not race-free: a concurrent creation may have
		// claimed the slug between the scan and the insert.
		if taken, checkErr := service.activities.ExistsBySlug(slugValue); checkErr == nil && taken {
			return models.Activity{}, ErrActivityNameTaken
		}
		return models.Activity{}, ErrActivityCreateFailed
	}
	return activity, nil
}
