package models

import (
	"time"

	"scribe/db"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index"`
	PostID    uint64 `gorm:"index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint64
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

func (c Comment) CreatedTime() time.Time {
	return time.Unix(c.CreatedAt, 0)
}

func CommentCreate(postID, userID uint64, text string) (c Comment, err error) {
	c = Comment{PostID: postID, UserID: userID, Text: text}
	return c, db.Instance.Create(&c).Error
}

func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.Preload("User").Where("post_id = ?", postID).Order("created_at ASC, id ASC").Find(&comments).Error
	return
}
