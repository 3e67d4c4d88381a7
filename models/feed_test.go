package models

import (
	"fmt"
	"testing"
)

func TestPaginateSplitsPages(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "leo")
	group := mustCreateGroup(t, "go")
	base := int64(1_700_000_000)
	for i := 0; i < 13; i++ {
		mustCreatePost(t, author, &group.ID, fmt.Sprintf("post %d", i), base+int64(i))
	}

	page1, err := Paginate(FeedByGroup(group.ID), 1)
	if err != nil {
		t.Fatal(err)
	}
	page2, err := Paginate(FeedByGroup(group.ID), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(page1.Posts) != 10 || len(page2.Posts) != 3 {
		t.Fatalf("got %d and %d posts, want 10 and 3", len(page1.Posts), len(page2.Posts))
	}
	if page1.TotalPages != 2 || page2.TotalPages != 2 {
		t.Errorf("TotalPages = %d/%d, want 2", page1.TotalPages, page2.TotalPages)
	}

	// Newest first, every post exactly once
	seen := map[string]bool{}
	last := int64(1 << 62)
	for _, p := range append(page1.Posts, page2.Posts...) {
		if p.CreatedAt > last {
			t.Errorf("post %q out of order", p.Text)
		}
		last = p.CreatedAt
		if seen[p.Text] {
			t.Errorf("post %q returned twice", p.Text)
		}
		seen[p.Text] = true
	}
	if len(seen) != 13 {
		t.Errorf("saw %d distinct posts, want 13", len(seen))
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "leo")
	for i := 0; i < 13; i++ {
		mustCreatePost(t, author, nil, fmt.Sprintf("post %d", i), 1_700_000_000+int64(i))
	}

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantPosts int
	}{
		{"beyond last", 99, 2, 3},
		{"zero", 0, 1, 10},
		{"negative", -5, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Paginate(PostFeed(), tt.page)
			if err != nil {
				t.Fatal(err)
			}
			if got.Number != tt.wantPage {
				t.Errorf("Number = %d, want %d", got.Number, tt.wantPage)
			}
			if len(got.Posts) != tt.wantPosts {
				t.Errorf("len(Posts) = %d, want %d", len(got.Posts), tt.wantPosts)
			}
		})
	}
}

func TestPaginateEmptyFeed(t *testing.T) {
	setupTestDB(t)
	page, err := Paginate(PostFeed(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Posts) != 0 || page.TotalPages != 1 || page.Number != 1 {
		t.Errorf("got %d posts, page %d of %d, want an empty single page",
			len(page.Posts), page.Number, page.TotalPages)
	}
}

func TestPostVisibleInAllItsFeeds(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "leo")
	viewer := mustCreateUser(t, "mia")
	group := mustCreateGroup(t, "go")
	other := mustCreateGroup(t, "rust")
	post := mustCreatePost(t, author, &group.ID, "hello", 1_700_000_000)

	if err := FollowUser(viewer.ID, author.ID); err != nil {
		t.Fatal(err)
	}

	feeds := []struct {
		name string
		page func() (FeedPage, error)
		want bool
	}{
		{"global index", func() (FeedPage, error) { return Paginate(PostFeed(), 1) }, true},
		{"author profile", func() (FeedPage, error) { return Paginate(FeedByAuthor(author.ID), 1) }, true},
		{"own group", func() (FeedPage, error) { return Paginate(FeedByGroup(group.ID), 1) }, true},
		{"follow feed", func() (FeedPage, error) { return Paginate(FeedByFollowed(viewer.ID), 1) }, true},
		{"other group", func() (FeedPage, error) { return Paginate(FeedByGroup(other.ID), 1) }, false},
		{"non-follower feed", func() (FeedPage, error) { return Paginate(FeedByFollowed(author.ID), 1) }, false},
	}
	for _, tt := range feeds {
		t.Run(tt.name, func(t *testing.T) {
			page, err := tt.page()
			if err != nil {
				t.Fatal(err)
			}
			found := false
			for _, p := range page.Posts {
				if p.ID == post.ID {
					found = true
				}
			}
			if found != tt.want {
				t.Errorf("post in feed = %v, want %v", found, tt.want)
			}
		})
	}
}

func TestFeedPreloadsAuthorAndGroup(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "leo")
	group := mustCreateGroup(t, "go")
	mustCreatePost(t, author, &group.ID, "hello", 1_700_000_000)

	page, err := Paginate(PostFeed(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Posts) != 1 {
		t.Fatal("expected one post")
	}
	p := page.Posts[0]
	if p.User.Username != "leo" {
		t.Errorf("User not preloaded: %+v", p.User)
	}
	if p.Group == nil || p.Group.Slug != "go" {
		t.Errorf("Group not preloaded: %+v", p.Group)
	}
}
