package repository

import (
	"context"
	"time"

	"bookclub/internal/models"
	"bookclub/internal/observability"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreClubRepository persists clubs as clubs/{clubId} documents.
type firestoreClubRepository struct {
	client  *firestore.Client
	timeout time.Duration
}

// NewFirestoreClubRepository creates a ClubRepository backed by Firestore.
// Every call is bounded by the given timeout.
func NewFirestoreClubRepository(client *firestore.Client, timeout time.Duration) ClubRepository {
	return &firestoreClubRepository{client: client, timeout: timeout}
}

func (r *firestoreClubRepository) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *firestoreClubRepository) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(ClubsCollection).Doc(id)
}

func (r *firestoreClubRepository) List(ctx context.Context) (_ []*models.Club, err error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("list", ClubsCollection, start, err) }()

	var clubs []*models.Club
	iter := r.client.Collection(ClubsCollection).Documents(ctx)
	defer iter.Stop()
	for {
		snap, iterErr := iter.Next()
		if iterErr == iterator.Done {
			break
		}
		if iterErr != nil {
			err = iterErr
			return nil, iterErr
		}
		var club models.Club
		if dataErr := snap.DataTo(&club); dataErr != nil {
			err = dataErr
			return nil, dataErr
		}
		clubs = append(clubs, &club)
	}
	return clubs, nil
}

func (r *firestoreClubRepository) GetByID(ctx context.Context, id string) (_ *models.Club, err error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("get", ClubsCollection, start, err) }()

	snap, getErr := r.doc(id).Get(ctx)
	if status.Code(getErr) == codes.NotFound {
		return nil, nil
	}
	if getErr != nil {
		err = getErr
		return nil, getErr
	}

	var club models.Club
	if dataErr := snap.DataTo(&club); dataErr != nil {
		err = dataErr
		return nil, dataErr
	}
	return &club, nil
}

func (r *firestoreClubRepository) Create(ctx context.Context, club *models.Club) (err error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("create", ClubsCollection, start, err) }()

	_, err = r.doc(club.ID).Set(ctx, club)
	return err
}

func (r *firestoreClubRepository) AddMember(ctx context.Context, id, email string) (err error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("update", ClubsCollection, start, err) }()

	// ArrayUnion is the store's atomic set-add; no read-modify-write window.
	_, err = r.doc(id).Update(ctx, []firestore.Update{
		{Path: "members", Value: firestore.ArrayUnion(email)},
	})
	return err
}

func (r *firestoreClubRepository) SetMembers(ctx context.Context, id string, members []string) (err error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("update", ClubsCollection, start, err) }()

	_, err = r.doc(id).Update(ctx, []firestore.Update{
		{Path: "members", Value: members},
	})
	return err
}

func (r *firestoreClubRepository) SetCurrentBook(ctx context.Context, id, book string) (err error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("update", ClubsCollection, start, err) }()

	_, err = r.doc(id).Update(ctx, []firestore.Update{
		{Path: "currentBook", Value: book},
	})
	return err
}

func (r *firestoreClubRepository) ClearCurrentBook(ctx context.Context, id string) (err error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("update", ClubsCollection, start, err) }()

	_, err = r.doc(id).Update(ctx, []firestore.Update{
		{Path: "currentBook", Value: firestore.Delete},
	})
	return err
}

func (r *firestoreClubRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("delete", ClubsCollection, start, err) }()

	_, err = r.doc(id).Delete(ctx)
	return err
}

// firestoreThreadRepository persists threads as clubs/{clubId}/threads/{threadId}.
type firestoreThreadRepository struct {
	client  *firestore.Client
	timeout time.Duration
}

// NewFirestoreThreadRepository creates a ThreadRepository backed by Firestore.
func NewFirestoreThreadRepository(client *firestore.Client, timeout time.Duration) ThreadRepository {
	return &firestoreThreadRepository{client: client, timeout: timeout}
}

func (r *firestoreThreadRepository) collection(clubID string) *firestore.CollectionRef {
	return r.client.Collection(ClubsCollection).Doc(clubID).Collection(ThreadsCollection)
}

func (r *firestoreThreadRepository) ListByClub(ctx context.Context, clubID string) (_ []*models.Thread, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("list", ThreadsCollection, start, err) }()

	var threads []*models.Thread
	iter := r.collection(clubID).Documents(ctx)
	defer iter.Stop()
	for {
		snap, iterErr := iter.Next()
		if iterErr == iterator.Done {
			break
		}
		if iterErr != nil {
			err = iterErr
			return nil, iterErr
		}
		var thread models.Thread
		if dataErr := snap.DataTo(&thread); dataErr != nil {
			err = dataErr
			return nil, dataErr
		}
		threads = append(threads, &thread)
	}
	return threads, nil
}

func (r *firestoreThreadRepository) GetByID(ctx context.Context, clubID, threadID string) (_ *models.Thread, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("get", ThreadsCollection, start, err) }()

	snap, getErr := r.collection(clubID).Doc(threadID).Get(ctx)
	if status.Code(getErr) == codes.NotFound {
		return nil, nil
	}
	if getErr != nil {
		err = getErr
		return nil, getErr
	}

	var thread models.Thread
	if dataErr := snap.DataTo(&thread); dataErr != nil {
		err = dataErr
		return nil, dataErr
	}
	return &thread, nil
}

func (r *firestoreThreadRepository) Create(ctx context.Context, thread *models.Thread) (err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("create", ThreadsCollection, start, err) }()

	doc := r.collection(thread.ClubID).NewDoc()
	thread.ID = doc.ID
	_, err = doc.Set(ctx, thread)
	return err
}

func (r *firestoreThreadRepository) Delete(ctx context.Context, clubID, threadID string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("delete", ThreadsCollection, start, err) }()

	_, err = r.collection(clubID).Doc(threadID).Delete(ctx)
	return err
}

// firestoreCommentRepository persists comments as
// clubs/{clubId}/threads/{threadId}/comments/{commentId}.
type firestoreCommentRepository struct {
	client  *firestore.Client
	timeout time.Duration
}

// NewFirestoreCommentRepository creates a CommentRepository backed by Firestore.
func NewFirestoreCommentRepository(client *firestore.Client, timeout time.Duration) CommentRepository {
	return &firestoreCommentRepository{client: client, timeout: timeout}
}

func (r *firestoreCommentRepository) collection(clubID, threadID string) *firestore.CollectionRef {
	return r.client.Collection(ClubsCollection).
		Doc(clubID).
		Collection(ThreadsCollection).
		Doc(threadID).
		Collection(CommentsCollection)
}

func (r *firestoreCommentRepository) ListByThread(ctx context.Context, clubID, threadID string) (_ []*models.Comment, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("list", CommentsCollection, start, err) }()

	var comments []*models.Comment
	iter := r.collection(clubID, threadID).Documents(ctx)
	defer iter.Stop()
	for {
		snap, iterErr := iter.Next()
		if iterErr == iterator.Done {
			break
		}
		if iterErr != nil {
			err = iterErr
			return nil, iterErr
		}
		var comment models.Comment
		if dataErr := snap.DataTo(&comment); dataErr != nil {
			err = dataErr
			return nil, dataErr
		}
		comments = append(comments, &comment)
	}
	return comments, nil
}

func (r *firestoreCommentRepository) GetByID(ctx context.Context, clubID, threadID, commentID string) (_ *models.Comment, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("get", CommentsCollection, start, err) }()

	snap, getErr := r.collection(clubID, threadID).Doc(commentID).Get(ctx)
	if status.Code(getErr) == codes.NotFound {
		return nil, nil
	}
	if getErr != nil {
		err = getErr
		return nil, getErr
	}

	var comment models.Comment
	if dataErr := snap.DataTo(&comment); dataErr != nil {
		err = dataErr
		return nil, dataErr
	}
	return &comment, nil
}

func (r *firestoreCommentRepository) Create(ctx context.Context, clubID, threadID string, comment *models.Comment) (err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("create", CommentsCollection, start, err) }()

	doc := r.collection(clubID, threadID).NewDoc()
	comment.ID = doc.ID
	_, err = doc.Set(ctx, comment)
	return err
}

func (r *firestoreCommentRepository) Delete(ctx context.Context, clubID, threadID, commentID string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	start := time.Now()
	defer func() { observability.ObserveStoreCall("delete", CommentsCollection, start, err) }()

	_, err = r.collection(clubID, threadID).Doc(commentID).Delete(ctx)
	return err
}
