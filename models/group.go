package models

import (
	"fmt"
	"log"
	"strings"

	"scribe/db"
	"scribe/utils"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func GroupCreate(title, slug, description string) (g Group, err error) {
	if !utils.ValidSlug(slug) {
		return g, fmt.Errorf("invalid group slug %q", slug)
	}
	g = Group{Title: title, Slug: slug, Description: description}
	return g, db.Instance.Create(&g).Error
}

// SeedGroups creates any missing groups from a "slug:Title,slug:Title"
// list. Groups are administrative; this is the only creation path.
func SeedGroups(list string) {
	for _, pair := range strings.Split(list, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		slug, title, found := strings.Cut(pair, ":")
		if !found {
			title = slug
		}
		if _, err := GroupBySlug(slug); err == nil {
			continue
		}
		if _, err := GroupCreate(title, slug, ""); err != nil {
			log.Printf("Error seeding group %q: %v", slug, err)
		}
	}
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title ASC").Find(&groups).Error
	return
}
