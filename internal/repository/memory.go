package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bookclub/internal/models"

	"github.com/google/uuid"
)

// MemoryStore is a concurrency-safe in-process document store mirroring the
// clubs/threads/comments hierarchy. It backs local runs and tests when no
// Firestore project is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	seq  int
	docs map[string]*clubDoc
}

type clubDoc struct {
	club    models.Club
	order   int
	threads map[string]*threadDoc
}

type threadDoc struct {
	thread   models.Thread
	order    int
	comments map[string]*commentDoc
}

type commentDoc struct {
	comment models.Comment
	order   int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*clubDoc)}
}

// Clubs returns a ClubRepository view over the store.
func (s *MemoryStore) Clubs() ClubRepository { return &memoryClubRepository{s} }

// Threads returns a ThreadRepository view over the store.
func (s *MemoryStore) Threads() ThreadRepository { return &memoryThreadRepository{s} }

// Comments returns a CommentRepository view over the store.
func (s *MemoryStore) Comments() CommentRepository { return &memoryCommentRepository{s} }

func cloneClub(c models.Club) *models.Club {
	out := c
	out.Members = append([]string(nil), c.Members...)
	if c.CurrentBook != nil {
		book := *c.CurrentBook
		out.CurrentBook = &book
	}
	return &out
}

type memoryClubRepository struct{ s *MemoryStore }

func (r *memoryClubRepository) List(_ context.Context) ([]*models.Club, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	docs := make([]*clubDoc, 0, len(r.s.docs))
	for _, d := range r.s.docs {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].order < docs[j].order })

	clubs := make([]*models.Club, 0, len(docs))
	for _, d := range docs {
		clubs = append(clubs, cloneClub(d.club))
	}
	return clubs, nil
}

func (r *memoryClubRepository) GetByID(_ context.Context, id string) (*models.Club, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.docs[id]
	if !ok {
		return nil, nil
	}
	return cloneClub(d.club), nil
}

func (r *memoryClubRepository) Create(_ context.Context, club *models.Club) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.seq++
	r.s.docs[club.ID] = &clubDoc{
		club:    *cloneClub(*club),
		order:   r.s.seq,
		threads: make(map[string]*threadDoc),
	}
	return nil
}

func (r *memoryClubRepository) AddMember(_ context.Context, id, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.docs[id]
	if !ok {
		return fmt.Errorf("club %s: no such document", id)
	}
	for _, m := range d.club.Members {
		if m == email {
			return nil
		}
	}
	d.club.Members = append(d.club.Members, email)
	return nil
}

func (r *memoryClubRepository) SetMembers(_ context.Context, id string, members []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.docs[id]
	if !ok {
		return fmt.Errorf("club %s: no such document", id)
	}
	d.club.Members = append([]string(nil), members...)
	return nil
}

func (r *memoryClubRepository) SetCurrentBook(_ context.Context, id, book string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.docs[id]
	if !ok {
		return fmt.Errorf("club %s: no such document", id)
	}
	d.club.CurrentBook = &book
	return nil
}

func (r *memoryClubRepository) ClearCurrentBook(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.docs[id]
	if !ok {
		return fmt.Errorf("club %s: no such document", id)
	}
	d.club.CurrentBook = nil
	return nil
}

func (r *memoryClubRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Deleting a document does not touch its subcollections; a recreated
	// club with the same id would see the old threads, matching the store's
	// orphaned-subcollection behavior. In practice ids are never reused.
	delete(r.s.docs, id)
	return nil
}

type memoryThreadRepository struct{ s *MemoryStore }

func (r *memoryThreadRepository) ListByClub(_ context.Context, clubID string) ([]*models.Thread, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.docs[clubID]
	if !ok {
		return nil, nil
	}

	docs := make([]*threadDoc, 0, len(d.threads))
	for _, td := range d.threads {
		docs = append(docs, td)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].order < docs[j].order })

	threads := make([]*models.Thread, 0, len(docs))
	for _, td := range docs {
		thread := td.thread
		threads = append(threads, &thread)
	}
	return threads, nil
}

func (r *memoryThreadRepository) GetByID(_ context.Context, clubID, threadID string) (*models.Thread, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.docs[clubID]
	if !ok {
		return nil, nil
	}
	td, ok := d.threads[threadID]
	if !ok {
		return nil, nil
	}
	thread := td.thread
	return &thread, nil
}

func (r *memoryThreadRepository) Create(_ context.Context, thread *models.Thread) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.docs[thread.ClubID]
	if !ok {
		return fmt.Errorf("club %s: no such document", thread.ClubID)
	}

	thread.ID = uuid.NewString()
	r.s.seq++
	d.threads[thread.ID] = &threadDoc{
		thread:   *thread,
		order:    r.s.seq,
		comments: make(map[string]*commentDoc),
	}
	return nil
}

func (r *memoryThreadRepository) Delete(_ context.Context, clubID, threadID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if d, ok := r.s.docs[clubID]; ok {
		delete(d.threads, threadID)
	}
	return nil
}

type memoryCommentRepository struct{ s *MemoryStore }

func (r *memoryCommentRepository) thread(clubID, threadID string) *threadDoc {
	d, ok := r.s.docs[clubID]
	if !ok {
		return nil
	}
	return d.threads[threadID]
}

func (r *memoryCommentRepository) ListByThread(_ context.Context, clubID, threadID string) ([]*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	td := r.thread(clubID, threadID)
	if td == nil {
		return nil, nil
	}

	docs := make([]*commentDoc, 0, len(td.comments))
	for _, cd := range td.comments {
		docs = append(docs, cd)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].order < docs[j].order })

	comments := make([]*models.Comment, 0, len(docs))
	for _, cd := range docs {
		comment := cd.comment
		comments = append(comments, &comment)
	}
	return comments, nil
}

func (r *memoryCommentRepository) GetByID(_ context.Context, clubID, threadID, commentID string) (*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	td := r.thread(clubID, threadID)
	if td == nil {
		return nil, nil
	}
	cd, ok := td.comments[commentID]
	if !ok {
		return nil, nil
	}
	comment := cd.comment
	return &comment, nil
}

func (r *memoryCommentRepository) Create(_ context.Context, clubID, threadID string, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	td := r.thread(clubID, threadID)
	if td == nil {
		return fmt.Errorf("thread %s/%s: no such document", clubID, threadID)
	}

	comment.ID = uuid.NewString()
	r.s.seq++
	td.comments[comment.ID] = &commentDoc{comment: *comment, order: r.s.seq}
	return nil
}

func (r *memoryCommentRepository) Delete(_ context.Context, clubID, threadID, commentID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if td := r.thread(clubID, threadID); td != nil {
		delete(td.comments, commentID)
	}
	return nil
}
