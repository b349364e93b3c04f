package posts

import (
	"Inkwell/internal/core/users"
)

// Authorizer decides whether an actor may mutate a post.
// The rule is owner-only: the authenticated identity must match the post's
// recorded owner. Stateless, no side effects.
type Authorizer struct{}

// NewAuthorizer creates a new post authorizer
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// EnsureUserCanModifyPost returns ErrNotOwner unless actor is non-nil and
// is the post's owner. Anonymous actors are always denied.
func (a *Authorizer) EnsureUserCanModifyPost(post *Post, actor *users.Identity) error {
	if !a.canUserModifyPost(post, actor) {
		return ErrNotOwner
	}
	return nil
}

func (a *Authorizer) canUserModifyPost(post *Post, actor *users.Identity) bool {
	if actor == nil {
		return false
	}
	return post.OwnerID == actor.ID
}
