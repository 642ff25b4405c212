package content

import (
	"errors"
	"slices"

	"github.com/silktrader/statuary/pkg/ntime"
)

var (
	ErrParentNotFound      = errors.New("parent comment not found")
	ErrParentOnOtherStatue = errors.New("parent comment belongs to another statue")
)

/*
CreateComment stores the comment and bumps the owning statue's counter.

The store is permissive about parents: a dangling ParentId is stored as is. Callers must verify the parent exists
before creating replies. Since a new comment's id is minted here and parents can't be changed afterwards, a
comment can never become its own ancestor.
*/
func (s *Store) CreateComment(data NewComment) Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertComment(data)
}

/*
CreateReply stores a comment after checking, under the same lock, that its parent exists and sits on the same
statue. Without a ParentId it behaves as CreateComment.
*/
func (s *Store) CreateReply(data NewComment) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data.ParentId != "" {
		var i = s.commentIndex(data.ParentId)
		if i < 0 {
			return Comment{}, ErrParentNotFound
		}
		if s.comments[i].StatueId != data.StatueId {
			return Comment{}, ErrParentOnOtherStatue
		}
	}
	return s.insertComment(data), nil
}

func (s *Store) insertComment(data NewComment) Comment {
	var comment = Comment{
		CommentId: s.ids.New("comment"),
		StatueId:  data.StatueId,
		UserId:    data.UserId,
		ParentId:  data.ParentId,
		Content:   data.Content,
		CreatedAt: ntime.From(s.clock.Now()),
		Author:    data.Author,
	}
	s.comments = append(s.comments, comment)

	if i := s.statueIndex(data.StatueId); i >= 0 {
		s.statues[i].CommentCount++
	}
	return withReplies(comment, nil)
}

func (s *Store) Comment(commentId string) (Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.commentIndex(commentId); i >= 0 {
		return withReplies(s.comments[i], nil), true
	}
	return Comment{}, false
}

func (s *Store) Comments(page Page) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return flat(paginate(s.comments, page))
}

func (s *Store) CommentsByStatue(statueId string, page Page) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return flat(paginate(filter(s.comments, func(c Comment) bool { return c.StatueId == statueId }), page))
}

func (s *Store) CommentsByUser(userId string, page Page) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return flat(paginate(filter(s.comments, func(c Comment) bool { return c.UserId == userId }), page))
}

// Replies returns the direct children of a comment, in insertion order.
func (s *Store) Replies(parentId string, page Page) []Comment {
	if parentId == "" {
		return make([]Comment, 0)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return flat(paginate(s.children(parentId), page))
}

// CommentThread returns the comment with its whole reply tree materialised.
func (s *Store) CommentThread(commentId string) (Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var i = s.commentIndex(commentId)
	if i < 0 {
		return Comment{}, false
	}
	return s.thread(s.comments[i], map[string]bool{}), true
}

// thread walks the reply tree depth first; visited guards against cycles smuggled in through Restore.
func (s *Store) thread(comment Comment, visited map[string]bool) Comment {
	visited[comment.CommentId] = true
	var replies = make([]Comment, 0)
	for _, child := range s.children(comment.CommentId) {
		if !visited[child.CommentId] {
			replies = append(replies, s.thread(child, visited))
		}
	}
	return withReplies(comment, replies)
}

func (s *Store) UpdateComment(commentId string, update CommentUpdate) (Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var i = s.commentIndex(commentId)
	if i < 0 {
		return Comment{}, false
	}
	if update.Content != nil {
		s.comments[i].Content = *update.Content
	}
	return withReplies(s.comments[i], nil), true
}

/*
DeleteComment removes the comment along with every reply beneath it, so that no reply is left pointing at a
missing parent. The statue's counter is decremented once per removed comment, floored at zero.
It returns the number of removed comments, zero when the id doesn't match.
*/
func (s *Store) DeleteComment(commentId string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.commentIndex(commentId) < 0 {
		return 0
	}

	var doomed = map[string]bool{commentId: true}
	for frontier := []string{commentId}; len(frontier) > 0; {
		var next []string
		for _, c := range s.comments {
			if !doomed[c.CommentId] && c.ParentId != "" && slices.Contains(frontier, c.ParentId) {
				doomed[c.CommentId] = true
				next = append(next, c.CommentId)
			}
		}
		frontier = next
	}

	var kept = s.comments[:0]
	for _, c := range s.comments {
		if !doomed[c.CommentId] {
			kept = append(kept, c)
			continue
		}
		if si := s.statueIndex(c.StatueId); si >= 0 {
			decrement(&s.statues[si].CommentCount)
		}
	}
	// clear the tail so removed records can be collected
	for i := len(kept); i < len(s.comments); i++ {
		s.comments[i] = Comment{}
	}
	s.comments = kept
	return len(doomed)
}

// VoteComment adds or subtracts a single vote, without lower bound.
func (s *Store) VoteComment(commentId string, up bool) (Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var i = s.commentIndex(commentId)
	if i < 0 {
		return Comment{}, false
	}
	s.comments[i].Votes += voteDelta(up)
	return withReplies(s.comments[i], nil), true
}

func (s *Store) commentIndex(commentId string) int {
	return indexOf(s.comments, func(c Comment) bool { return c.CommentId == commentId })
}

func (s *Store) children(parentId string) []Comment {
	return filter(s.comments, func(c Comment) bool { return c.ParentId == parentId })
}

// withReplies attaches a reply list, defaulting to an empty one so that clients always receive an array.
func withReplies(comment Comment, replies []Comment) Comment {
	if replies == nil {
		replies = make([]Comment, 0)
	}
	comment.Replies = replies
	return comment
}

func flat(comments []Comment) []Comment {
	for i := range comments {
		comments[i] = withReplies(comments[i], nil)
	}
	return comments
}

// cloneComments copies stored comments; stored records never carry replies.
func cloneComments(comments []Comment) []Comment {
	var cloned = make([]Comment, len(comments))
	for i, c := range comments {
		c.Replies = nil
		cloned[i] = c
	}
	return cloned
}
