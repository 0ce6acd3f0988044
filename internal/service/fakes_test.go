package service

import (
	"blog-api/internal/errs"
	"blog-api/internal/models"
)

// In-memory store fakes backing the service tests.

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

var _ UserStore = (*fakeUserStore)(nil)

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*models.User{}}
}

func (f *fakeUserStore) Create(u *models.User) error {
	f.nextID++
	u.ID = f.nextID
	cpy := *u
	f.users[u.ID] = &cpy
	return nil
}

func (f *fakeUserStore) FindByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *u
	return &cpy, nil
}

func (f *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUserStore) List() ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserStore) Update(u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return errs.ErrNotFound
	}
	cpy := *u
	f.users[u.ID] = &cpy
	return nil
}

func (f *fakeUserStore) SetRefreshToken(userID uint, token *string) error {
	u, ok := f.users[userID]
	if !ok {
		return errs.ErrNotFound
	}
	if token == nil {
		u.RefreshToken = nil
		return nil
	}
	cpy := *token
	u.RefreshToken = &cpy
	return nil
}

func (f *fakeUserStore) Delete(id uint) error {
	if _, ok := f.users[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakePostStore struct {
	posts  map[uint]*models.Post
	nextID uint
}

var _ PostStore = (*fakePostStore)(nil)

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[uint]*models.Post{}}
}

func (f *fakePostStore) Create(p *models.Post) error {
	f.nextID++
	p.ID = f.nextID
	cpy := *p
	f.posts[p.ID] = &cpy
	return nil
}

func (f *fakePostStore) FindByID(id uint) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *p
	return &cpy, nil
}

func (f *fakePostStore) List(publishedOnly bool) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		if publishedOnly && !p.IsPublished {
			continue
		}
		posts = append(posts, *p)
	}
	return posts, nil
}

func (f *fakePostStore) Exists(id uint) (bool, error) {
	_, ok := f.posts[id]
	return ok, nil
}

func (f *fakePostStore) Update(p *models.Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return errs.ErrNotFound
	}
	cpy := *p
	f.posts[p.ID] = &cpy
	return nil
}

func (f *fakePostStore) Delete(id uint) error {
	if _, ok := f.posts[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeCommentStore struct {
	comments map[uint]*models.Comment
	nextID   uint
}

var _ CommentStore = (*fakeCommentStore)(nil)

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[uint]*models.Comment{}}
}

func (f *fakeCommentStore) Create(cm *models.Comment) error {
	f.nextID++
	cm.ID = f.nextID
	cpy := *cm
	f.comments[cm.ID] = &cpy
	return nil
}

func (f *fakeCommentStore) FindByID(id uint) (*models.Comment, error) {
	cm, ok := f.comments[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *cm
	return &cpy, nil
}

func (f *fakeCommentStore) ListByPost(postID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, cm := range f.comments {
		if cm.PostID == postID {
			comments = append(comments, *cm)
		}
	}
	return comments, nil
}

func (f *fakeCommentStore) Update(cm *models.Comment) error {
	if _, ok := f.comments[cm.ID]; !ok {
		return errs.ErrNotFound
	}
	cpy := *cm
	f.comments[cm.ID] = &cpy
	return nil
}

func (f *fakeCommentStore) Delete(id uint) error {
	if _, ok := f.comments[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentStore) DeleteByPost(postID uint) error {
	for id, cm := range f.comments {
		if cm.PostID == postID {
			delete(f.comments, id)
		}
	}
	return nil
}
