package services

import (
	"strings"

	"github.com/jiamdoescs/AnnenBites/models"
	"github.com/jiamdoescs/AnnenBites/services/recommend"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DashboardService assembles everything the dashboard shows for one
// (user, date, meal): recommendations, the admissible menu, which items are
// already logged, the user's ratings, and the day's macro totals.
type DashboardService struct {
	prefs   *PreferenceService
	menu    *MenuService
	intake  *IntakeService
	ratings *RatingService
	log     *zap.Logger
}

func NewDashboardService(db *gorm.DB, log *zap.Logger) *DashboardService {
	return &DashboardService{
		prefs:   NewPreferenceService(db),
		menu:    NewMenuService(db),
		intake:  NewIntakeService(db),
		ratings: NewRatingService(db),
		log:     log,
	}
}

type DashboardView struct {
	Date            string            `json:"date"`
	Meal            string            `json:"meal"`
	Recommendations []models.MenuItem `json:"recommendations"`
	Items           []models.MenuItem `json:"items"`
	SelectedIDs     map[uint]uint     `json:"selected_ids"`
	Ratings         map[uint]int      `json:"ratings"`
	Totals          recommend.Totals  `json:"totals"`
}

// View builds the dashboard. An empty date means "most recent menu we have";
// an empty meal defaults to breakfast. When no menu has been ingested at all,
// the view comes back empty rather than erroring.
func (s *DashboardService) View(userID uint, date, meal string) (*DashboardView, error) {
	meal = strings.ToLower(meal)
	if meal == "" {
		meal = "breakfast"
	}

	if date == "" {
		latest, err := s.menu.LatestMenuDate()
		if err != nil {
			return nil, err
		}
		date = latest
	}

	view := &DashboardView{
		Date:            date,
		Meal:            meal,
		Recommendations: []models.MenuItem{},
		Items:           []models.MenuItem{},
		SelectedIDs:     map[uint]uint{},
		Ratings:         map[uint]int{},
	}
	if date == "" {
		return view, nil
	}

	prefs, err := s.prefs.Get(userID)
	if err != nil {
		return nil, err
	}
	flags := recommend.DietaryFlags(prefs)

	rawItems, err := s.menu.ItemsForMeal(date, meal)
	if err != nil {
		return nil, err
	}

	view.Items = recommend.Filter(rawItems, flags)
	s.flagTagConflicts(rawItems, flags)
	view.Recommendations = recommend.Recommend(view.Items, prefs, flags, recommend.DefaultMaxResults)

	if view.SelectedIDs, err = s.intake.SelectedIDs(userID, date, meal); err != nil {
		return nil, err
	}
	if view.Ratings, err = s.ratings.RatingsByUser(userID); err != nil {
		return nil, err
	}
	if view.Totals, err = s.intake.DailyTotals(userID, date); err != nil {
		return nil, err
	}

	return view, nil
}

// flagTagConflicts surfaces items whose tags claim a diet that their own
// name/tag text contradicts (e.g. tagged "vegetarian" with "chicken" in the
// name). Those items were already excluded; the log line is a data-quality
// signal for the ingestion side.
func (s *DashboardService) flagTagConflicts(items []models.MenuItem, flags map[string]bool) {
	if s.log == nil {
		return
	}
	for _, item := range items {
		if recommend.IsAdmissible(item, flags) {
			continue
		}
		tags := recommend.ParseListField(item.Tags)
		for _, claim := range []string{"vegetarian", "vegan"} {
			if flags[claim] && containsToken(tags, claim) {
				s.log.Warn("menu item tag contradicts dietary keyword filter",
					zap.Uint("menu_item_id", item.ID),
					zap.String("name", item.Name),
					zap.String("claimed_tag", claim),
				)
			}
		}
	}
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}
