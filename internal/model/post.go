package model

import "time"

// Post represents a blog article stored in the `posts` table.
// Title and Content both carry unique indexes. Author is the
// denormalized username of the user who created the post, not a
// foreign key; the data model keeps it as a plain string.
//
// Fields:
//  ID         – primary key identifier.
//  Title      – unique post title.
//  Content    – unique post body.
//  Author     – username of the creating user.
//  DatePosted – set once at creation, never updated.
type Post struct {
	ID         uint64    // posts.id
	Title      string    // posts.title
	Content    string    // posts.content
	Author     string    // posts.author
	DatePosted time.Time // posts.date_posted
}
