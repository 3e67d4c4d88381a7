package models

import (
	"time"

	"scribe/db"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:post_order"`
	UpdatedAt int64
	UserID    uint64 `gorm:"index"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
	Image     string `gorm:"type:varchar(300)"` // Storage path of the original upload, empty if none
	ThumbPath string `gorm:"type:varchar(300)"`
}

func (p Post) CreatedTime() time.Time {
	return time.Unix(p.CreatedAt, 0)
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("User").Preload("Group").First(&p, id).Error
	return
}

func (p *Post) Create() error {
	return db.Instance.Create(p).Error
}

// SaveEdit persists the fields the edit flow is allowed to change.
// CreatedAt and UserID stay untouched regardless of what the caller set.
func (p *Post) SaveEdit() error {
	return db.Instance.Model(p).Updates(map[string]interface{}{
		"text":       p.Text,
		"group_id":   p.GroupID,
		"image":      p.Image,
		"thumb_path": p.ThumbPath,
	}).Error
}
