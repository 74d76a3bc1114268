package postgres

import (
	"fmt"

	"PickMe/internal/core/posts"
)

// visibleWhereClause renders a posts.VisibilityFilter into a parameterized
// WHERE fragment over `posts p`. Placeholder numbering starts at startIdx so
// callers can append limit/offset parameters after the returned args.
//
// The rendered predicate is the bulk form of posts.CanView and must select
// exactly the same rows; visibility_equivalence_test.go and the repo tests
// hold the two to that contract. It is a single boolean per row (membership
// intersection via EXISTS, not a join), so no DISTINCT is needed.
func visibleWhereClause(f posts.VisibilityFilter, startIdx int) (string, []interface{}) {
	if f.AuthorID == nil {
		// General feed: own posts, everyone posts, and group posts whose
		// audience intersects any of the viewer's memberships. The audience
		// set is author-owned by the write-time invariant, so no ownership
		// narrowing is applied here.
		clause := fmt.Sprintf(`(
			p.author_id = $%[1]d
			OR p.audience = 'everyone'
			OR (p.audience = 'groups' AND EXISTS (
				SELECT 1
				FROM post_audience_groups pag
				JOIN group_members gm ON gm.group_id = pag.group_id
				WHERE pag.post_id = p.id AND gm.user_id = $%[1]d
			))
		)`, startIdx)
		return clause, []interface{}{f.ViewerID}
	}

	// Author-scoped feed. The author_id = viewer disjunct makes the target's
	// own wall complete when viewer == target. For other viewers the
	// membership intersection is narrowed to groups owned by the target,
	// guarding against stale cross-owner group references.
	clause := fmt.Sprintf(`(
		p.author_id = $%[1]d
		AND (
			p.author_id = $%[2]d
			OR p.audience = 'everyone'
			OR (p.audience = 'groups' AND EXISTS (
				SELECT 1
				FROM post_audience_groups pag
				JOIN group_members gm ON gm.group_id = pag.group_id
				JOIN friend_groups fg ON fg.id = pag.group_id AND fg.owner_id = $%[1]d
				WHERE pag.post_id = p.id AND gm.user_id = $%[2]d
			))
		)
	)`, startIdx, startIdx+1)
	return clause, []interface{}{*f.AuthorID, f.ViewerID}
}
