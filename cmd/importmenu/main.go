package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/models"
)

// Seeds menu_items from a CSV with header:
// date,meal,location,name,category,calories,protein,carbs,fat,tags
func main() {
	path := flag.String("file", "sample_menu.csv", "CSV file to import")
	flag.Parse()

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("open %s: %v", *path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		log.Fatalf("read header: %v", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	rows, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("read rows: %v", err)
	}

	config.InitDB()

	imported := 0
	for _, row := range rows {
		item := models.MenuItem{
			Date:     row[col["date"]],
			Meal:     strings.ToLower(row[col["meal"]]),
			Location: row[col["location"]],
			Name:     row[col["name"]],
			Category: row[col["category"]],
			Calories: parseOptionalFloat(row[col["calories"]]),
			Protein:  parseOptionalFloat(row[col["protein"]]),
			Carbs:    parseOptionalFloat(row[col["carbs"]]),
			Fat:      parseOptionalFloat(row[col["fat"]]),
			Tags:     row[col["tags"]],
		}
		if err := config.DB.Create(&item).Error; err != nil {
			log.Fatalf("insert %q: %v", item.Name, err)
		}
		imported++
	}

	log.Printf("Menu imported! (%d items)", imported)
}

// Empty cells stay NULL so "no nutrition data" is distinct from zero.
func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
