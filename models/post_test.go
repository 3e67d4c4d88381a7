package models

import "testing"

func TestSaveEditKeepsAuthorAndTimestamp(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "leo")
	group := mustCreateGroup(t, "go")
	post := mustCreatePost(t, author, nil, "first draft", 1_700_000_000)

	post.Text = "edited"
	post.GroupID = &group.ID
	if err := post.SaveEdit(); err != nil {
		t.Fatal(err)
	}

	got, err := PostByID(post.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "edited" {
		t.Errorf("Text = %q, want %q", got.Text, "edited")
	}
	if got.GroupID == nil || *got.GroupID != group.ID {
		t.Errorf("GroupID = %v, want %d", got.GroupID, group.ID)
	}
	if got.UserID != author.ID {
		t.Errorf("UserID changed to %d", got.UserID)
	}
	if got.CreatedAt != 1_700_000_000 {
		t.Errorf("CreatedAt changed to %d", got.CreatedAt)
	}
}

func TestSaveEditCanDetachGroup(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "leo")
	group := mustCreateGroup(t, "go")
	post := mustCreatePost(t, author, &group.ID, "text", 1_700_000_000)

	post.GroupID = nil
	if err := post.SaveEdit(); err != nil {
		t.Fatal(err)
	}
	got, err := PostByID(post.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.GroupID != nil {
		t.Errorf("GroupID = %v, want nil", got.GroupID)
	}
}

func TestCommentsForPost(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "leo")
	commenter := mustCreateUser(t, "mia")
	post := mustCreatePost(t, author, nil, "text", 1_700_000_000)

	if _, err := CommentCreate(post.ID, commenter.ID, "nice"); err != nil {
		t.Fatal(err)
	}
	if _, err := CommentCreate(post.ID, author.ID, "thanks"); err != nil {
		t.Fatal(err)
	}
	comments, err := CommentsForPost(post.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].Text != "nice" || comments[0].User.Username != "mia" {
		t.Errorf("first comment = %q by %q", comments[0].Text, comments[0].User.Username)
	}
}
