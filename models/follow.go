package models

import "scribe/db"

// Follow is a directed edge: the follower receives the followed
// author's posts in their follow feed. The pair is unique.
type Follow struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	FollowerID uint64 `gorm:"index:uniq_follow_pair,unique"`
	Follower   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FollowedID uint64 `gorm:"index:uniq_follow_pair,unique"`
	Followed   User   `gorm:"foreignKey:FollowedID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowUser creates the edge if missing. Self-follows are ignored and
// repeated calls leave a single edge.
func FollowUser(followerID, followedID uint64) error {
	if followerID == followedID {
		return nil
	}
	f := Follow{FollowerID: followerID, FollowedID: followedID}
	return db.Instance.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		FirstOrCreate(&f).Error
}

// UnfollowUser removes the edge if present, no error when absent.
func UnfollowUser(followerID, followedID uint64) error {
	return db.Instance.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&Follow{}).Error
}

func IsFollowing(followerID, followedID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count)
	return count > 0
}
