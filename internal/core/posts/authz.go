package posts

import "inkwell/internal/core/users"

// Authorization rules for posts. These are pure functions evaluated fresh on
// every request: post state is volatile, and admin/ownership only change via
// re-authentication, so nothing here is cached.

// CanView reports whether the actor may read the post.
// Published posts are world-readable, including by anonymous actors;
// drafts are visible only to their author and to admins.
func CanView(actor *users.Actor, post *Post) bool {
	if post.Published() {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.ID == post.AuthorID || actor.IsAdmin
}

// CanEdit reports whether the actor may modify the post.
// Only the author may edit, and only while the post is a draft: published
// posts are immutable so readers can trust that what they saw is what was
// written. Admins get no edit override.
func CanEdit(actor *users.Actor, post *Post) bool {
	if actor == nil {
		return false
	}
	return actor.ID == post.AuthorID && post.State == StateDraft
}

// CanDelete reports whether the actor may delete the post.
// The author may always delete their own post, in any state; admins may
// delete anything.
func CanDelete(actor *users.Actor, post *Post) bool {
	if actor == nil {
		return false
	}
	return actor.ID == post.AuthorID || actor.IsAdmin
}
