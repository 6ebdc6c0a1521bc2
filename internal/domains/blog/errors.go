package blog

import "errors"

var (
	// ErrBlogNotFound - the target record does not exist. Always
	// reported before any ownership decision, so a non-owner probing a
	// missing id learns nothing.
	ErrBlogNotFound = errors.New("blog not found")

	// ErrNotOwner - authenticated, but not the owner of the record.
	ErrNotOwner = errors.New("not authorized to modify this blog")

	// ErrAuthorNotFound - the acting user's account no longer exists.
	ErrAuthorNotFound = errors.New("user not found")
)
