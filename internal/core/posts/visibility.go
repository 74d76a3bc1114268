package posts

// This file is the single source of truth for post visibility. The per-item
// predicate (CanView) and the bulk filter (VisibilityFilter) must select
// exactly the same posts for a given viewer; the bulk form exists because
// evaluating CanView row by row needs a membership lookup per post, which is
// not viable at feed scale.

// CanView reports whether the viewer may see the post.
//
// Ordered, short-circuiting rules:
//  1. authors always see their own posts, regardless of audience
//  2. only_me excludes everyone else
//  3. everyone includes all viewers
//  4. groups requires the viewer to belong to at least one audience group
//  5. any unrecognized audience value fails closed
//
// viewerGroupIDs is the viewer's current group memberships (MembershipIndex
// snapshot). Pure function: no side effects, never memoized across requests.
func CanView(post *Post, viewerID int64, viewerGroupIDs []int64) bool {
	if post.AuthorID == viewerID {
		return true
	}

	switch post.Audience {
	case AudienceOnlyMe:
		return false
	case AudienceEveryone:
		return true
	case AudienceGroups:
		for _, audienceGroup := range post.AudienceGroupIDs {
			for _, viewerGroup := range viewerGroupIDs {
				if audienceGroup == viewerGroup {
					return true
				}
			}
		}
		return false
	default:
		return false
	}
}

// VisibilityFilter selects the posts a viewer may see, optionally restricted
// to a single author. It is rendered to one SQL predicate by the post
// repository; constructing it here keeps both feed variants on the same
// definition of "visible".
type VisibilityFilter struct {
	// AuthorID, when non-nil, restricts the selection to that author's posts
	AuthorID *int64
	ViewerID int64
}

// VisibleTo builds the general feed filter: the viewer's own posts, everyone
// posts, and group posts whose audience intersects the viewer's memberships.
func VisibleTo(viewerID int64) VisibilityFilter {
	return VisibilityFilter{ViewerID: viewerID}
}

// AuthorVisibleTo builds the author-scoped filter (viewing one user's wall).
// When the viewer is the author every post qualifies. Otherwise a group post
// qualifies only through groups owned by the author that the viewer belongs
// to; the ownership narrowing guards against stale cross-owner group
// references surviving in the audience set.
func AuthorVisibleTo(viewerID, authorID int64) VisibilityFilter {
	return VisibilityFilter{ViewerID: viewerID, AuthorID: &authorID}
}
