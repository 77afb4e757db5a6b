package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jiamdoescs/AnnenBites/models"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	hudsBaseHost  = "https://www.foodpro.huds.harvard.edu"
	hudsLocation  = "Annenberg"
	hudsUserAgent = "Mozilla/5.0 (AnnenBites)"
)

var hudsMeals = []struct {
	meal  string
	param string
}{
	{"breakfast", "Breakfast Menu"},
	{"lunch", "Lunch Menu"},
	{"dinner", "Dinner Menu"},
}

var numberRe = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// ScraperService ingests the HUDS menu for a day: one longmenucopy page per
// meal, then one menudetail page per item for the Nutrition Facts label.
type ScraperService struct {
	client *http.Client
	menu   *MenuService
	log    *zap.Logger
}

func NewScraperService(db *gorm.DB, log *zap.Logger) *ScraperService {
	return &ScraperService{
		client: &http.Client{Timeout: 30 * time.Second},
		menu:   NewMenuService(db),
		log:    log,
	}
}

// ScrapeDay fetches all three meals for a date and replaces any existing menu
// items for it (dependent logged meals and ratings are cascaded away by
// MenuService.ReplaceDay).
func (s *ScraperService) ScrapeDay(ctx context.Context, day time.Time) error {
	dateISO := day.Format("2006-01-02")
	s.log.Info("starting HUDS scrape", zap.String("date", dateISO))

	var all []models.MenuItem
	for _, m := range hudsMeals {
		doc, err := s.fetch(ctx, s.buildMenuURL(day, m.param))
		if err != nil {
			return fmt.Errorf("fetch %s menu: %w", m.meal, err)
		}

		links := s.parseItemLinks(doc)
		s.log.Info("parsed meal page",
			zap.String("meal", m.meal),
			zap.Int("items_found", len(links)),
		)

		for _, link := range links {
			item := models.MenuItem{
				Date:     dateISO,
				Meal:     m.meal,
				Location: hudsLocation,
				Name:     link.name,
				Tags:     "",
			}

			calories, protein, carbs, fat, err := s.extractNutrition(ctx, link.detailURL)
			if err != nil {
				// Keep the item without macros rather than dropping it.
				s.log.Warn("nutrition lookup failed",
					zap.String("item", link.name),
					zap.Error(err),
				)
			} else {
				item.Calories = calories
				item.Protein = protein
				item.Carbs = carbs
				item.Fat = fat
			}
			all = append(all, item)
		}
	}

	if err := s.menu.ReplaceDay(dateISO, all); err != nil {
		return fmt.Errorf("replace menu for %s: %w", dateISO, err)
	}
	s.log.Info("HUDS scrape completed",
		zap.String("date", dateISO),
		zap.Int("items_ingested", len(all)),
	)
	return nil
}

func (s *ScraperService) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", hudsUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, pageURL)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

type itemLink struct {
	name      string
	detailURL string
}

// parseItemLinks extracts (name, detail URL) pairs from a meal menu page.
// Only anchors pointing at menudetail.aspx are item links.
func (s *ScraperService) parseItemLinks(doc *goquery.Document) []itemLink {
	var links []itemLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		name := strings.TrimSpace(sel.Text())
		if name == "" || !strings.Contains(strings.ToLower(href), "menudetail.aspx") {
			return
		}

		var detailURL string
		switch {
		case strings.HasPrefix(href, "http"):
			detailURL = href
		case strings.HasPrefix(href, "/"):
			detailURL = hudsBaseHost + href
		default:
			detailURL = hudsBaseHost + "/foodpro/" + href
		}

		links = append(links, itemLink{name: titleCase(name), detailURL: detailURL})
	})
	return links
}

// extractNutrition pulls calories/protein/carbs/fat from a menudetail page's
// Nutrition Facts table. Any field that cannot be located stays nil.
func (s *ScraperService) extractNutrition(ctx context.Context, detailURL string) (calories, protein, carbs, fat *float64, err error) {
	doc, err := s.fetch(ctx, detailURL)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	calories = findLabeledNumber(doc, "calories")
	protein = findLabeledNumber(doc, "protein")
	carbs = findLabeledNumber(doc, "total carbohydrate")
	fat = findLabeledNumber(doc, "total fat")
	return calories, protein, carbs, fat, nil
}

// findLabeledNumber locates the table row containing the label and returns
// the first number in that row's text.
func findLabeledNumber(doc *goquery.Document, label string) *float64 {
	var value *float64
	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		text := strings.ToLower(row.Text())
		if !strings.Contains(text, label) {
			return true
		}
		match := numberRe.FindString(text)
		if match == "" {
			return true
		}
		v, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return true
		}
		value = &v
		return false
	})
	return value
}

// buildMenuURL builds the longmenucopy.aspx URL for a date + meal, matching
// the query string HUDS expects (mm/dd/YYYY, URL-encoded).
func (s *ScraperService) buildMenuURL(day time.Time, mealParam string) string {
	q := url.Values{}
	q.Set("sName", "HARVARD UNIVERSITY DINING SERVICES")
	q.Set("locationNum", "30")
	q.Set("locationName", "Dining Hall")
	q.Set("naFlag", "1")
	q.Set("WeeksMenus", "This Week's Menus")
	q.Set("dtdate", day.Format("01/02/2006"))
	q.Set("mealName", mealParam)
	return hudsBaseHost + "/foodpro/longmenucopy.aspx?" + q.Encode()
}

// titleCase normalizes the all-caps item names HUDS serves.
func titleCase(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
