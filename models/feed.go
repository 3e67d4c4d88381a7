package models

import (
	"scribe/config"
	"scribe/db"

	"gorm.io/gorm"
)

// FeedPage is one bounded slice of a feed: at most POSTS_PER_PAGE
// posts, newest first, 1-based numbering.
type FeedPage struct {
	Posts      []Post
	Number     int
	TotalPages int
}

func (p FeedPage) HasPrev() bool { return p.Number > 1 }
func (p FeedPage) HasNext() bool { return p.Number < p.TotalPages }
func (p FeedPage) PrevPage() int { return p.Number - 1 }
func (p FeedPage) NextPage() int { return p.Number + 1 }

// PostFeed is the base query every feed starts from.
func PostFeed() *gorm.DB {
	return db.Instance.Model(&Post{}).Preload("User").Preload("Group")
}

func FeedByGroup(groupID uint64) *gorm.DB {
	return PostFeed().Where("group_id = ?", groupID)
}

func FeedByAuthor(userID uint64) *gorm.DB {
	return PostFeed().Where("user_id = ?", userID)
}

// FeedByFollowed filters to authors the viewer follows.
func FeedByFollowed(viewerID uint64) *gorm.DB {
	return PostFeed().Where(
		"user_id IN (?)",
		db.Instance.Model(&Follow{}).Select("followed_id").Where("follower_id = ?", viewerID),
	)
}

// Paginate resolves one page of the given feed query. Out-of-range
// page numbers clamp to the nearest valid page; an empty feed has one
// (empty) page.
func Paginate(query *gorm.DB, page int) (result FeedPage, err error) {
	perPage := config.POSTS_PER_PAGE
	var total int64
	if err = query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return
	}
	result.TotalPages = int((total + int64(perPage) - 1) / int64(perPage))
	if result.TotalPages < 1 {
		result.TotalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > result.TotalPages {
		page = result.TotalPages
	}
	result.Number = page
	err = query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&result.Posts).Error
	return
}
