package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// In-memory test doubles for the repository and collaborator ports.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(name, email string, role domain.Role, passwordHash string) *domain.User {
	r.nextID++
	u := &domain.User{
		ID:           fmt.Sprintf("u%d", r.nextID),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: passwordHash,
	}
	r.users[u.ID] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubShiftRepo struct {
	shifts map[string]*domain.Shift
	nextID int
}

func newStubShiftRepo() *stubShiftRepo {
	return &stubShiftRepo{shifts: make(map[string]*domain.Shift)}
}

func (r *stubShiftRepo) add(userID string, start, end time.Time, location string) *domain.Shift {
	r.nextID++
	s := &domain.Shift{
		ID:        fmt.Sprintf("s%d", r.nextID),
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
		Location:  location,
	}
	r.shifts[s.ID] = s
	return s
}

func (r *stubShiftRepo) Create(_ context.Context, shift *domain.Shift) (*domain.Shift, error) {
	r.nextID++
	clone := *shift
	clone.ID = fmt.Sprintf("s%d", r.nextID)
	r.shifts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubShiftRepo) List(_ context.Context, userID string) ([]*domain.Shift, error) {
	var out []*domain.Shift
	for _, s := range r.shifts {
		if userID == "" || s.UserID == userID {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubShiftRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.shifts[id]; !ok {
		return domain.ErrShiftNotFound
	}
	delete(r.shifts, id)
	return nil
}

func (r *stubShiftRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, s := range r.shifts {
		if s.UserID == userID {
			delete(r.shifts, id)
		}
	}
	return nil
}

type stubMessageRepo struct {
	messages map[string]*domain.Message
	nextID   int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{messages: make(map[string]*domain.Message)}
}

func (r *stubMessageRepo) Create(_ context.Context, msg *domain.Message) (*domain.Message, error) {
	r.nextID++
	clone := *msg
	clone.ID = fmt.Sprintf("m%d", r.nextID)
	r.messages[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) List(_ context.Context) ([]*domain.Message, error) {
	out := make([]*domain.Message, 0, len(r.messages))
	for _, m := range r.messages {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubMessageRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, m := range r.messages {
		if m.UserID == userID {
			delete(r.messages, id)
		}
	}
	return nil
}

type stubUploadRepo struct {
	uploads   map[string]*domain.Upload
	nextID    int
	failOnAdd bool
}

func newStubUploadRepo() *stubUploadRepo {
	return &stubUploadRepo{uploads: make(map[string]*domain.Upload)}
}

func (r *stubUploadRepo) Create(_ context.Context, up *domain.Upload) (*domain.Upload, error) {
	if r.failOnAdd {
		return nil, fmt.Errorf("insert upload: store down")
	}
	r.nextID++
	clone := *up
	clone.ID = fmt.Sprintf("f%d", r.nextID)
	r.uploads[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUploadRepo) List(_ context.Context) ([]*domain.Upload, error) {
	out := make([]*domain.Upload, 0, len(r.uploads))
	for _, u := range r.uploads {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUploadRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, u := range r.uploads {
		if u.UserID == userID {
			delete(r.uploads, id)
		}
	}
	return nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (s *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.revoked[tokenID] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}

type stubBlobStore struct {
	objects map[string][]byte
	removed []string
}

func newStubBlobStore() *stubBlobStore {
	return &stubBlobStore{objects: make(map[string][]byte)}
}

func (s *stubBlobStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	s.objects[key] = buf.Bytes()
	return "https://blobs.test/" + key, nil
}

func (s *stubBlobStore) Remove(_ context.Context, key string) error {
	delete(s.objects, key)
	s.removed = append(s.removed, key)
	return nil
}
