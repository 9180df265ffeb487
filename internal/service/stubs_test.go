package service

import (
	"context"

	"github.com/Shiven1412/dead-poets/internal/models"
)

type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	getByUsernameFn       func(context.Context, string) (*models.User, error)
	getByResetTokenHashFn func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	searchFn              func(context.Context, string) ([]models.UserSummary, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByResetTokenHash(ctx context.Context, hash string) (*models.User, error) {
	return s.getByResetTokenHashFn(ctx, hash)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Search(ctx context.Context, term string) ([]models.UserSummary, error) {
	return s.searchFn(ctx, term)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:             func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:          func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		getByResetTokenHashFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:              func(context.Context, *models.User) error { return nil },
		updateFn:              func(context.Context, *models.User) error { return nil },
		searchFn:              func(context.Context, string) ([]models.UserSummary, error) { return nil, nil },
	}
}

type followRepoStub struct {
	createFn      func(context.Context, uint, uint) error
	deleteFn      func(context.Context, uint, uint) error
	followersOfFn func(context.Context, uint) ([]models.UserSummary, error)
	followingOfFn func(context.Context, uint) ([]models.UserSummary, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followeeID uint) error {
	return s.createFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID uint) error {
	return s.deleteFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) FollowersOf(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return s.followersOfFn(ctx, userID)
}
func (s *followRepoStub) FollowingOf(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return s.followingOfFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn: func(context.Context, uint, uint) error { return nil },
		deleteFn: func(context.Context, uint, uint) error { return nil },
		followersOfFn: func(context.Context, uint) ([]models.UserSummary, error) {
			return []models.UserSummary{}, nil
		},
		followingOfFn: func(context.Context, uint) ([]models.UserSummary, error) {
			return []models.UserSummary{}, nil
		},
	}
}

type poemRepoStub struct {
	createFn  func(context.Context, *models.Poem) error
	getByIDFn func(context.Context, uint, uint) (*models.Poem, error)
	listFn    func(context.Context, uint, *uint) ([]models.Poem, error)
	updateFn  func(context.Context, *models.Poem) error
	deleteFn  func(context.Context, uint) error
	isLikedFn func(context.Context, uint, uint) (bool, error)
	likeFn    func(context.Context, uint, uint) error
	unlikeFn  func(context.Context, uint, uint) error
}

func (s *poemRepoStub) Create(ctx context.Context, poem *models.Poem) error {
	return s.createFn(ctx, poem)
}
func (s *poemRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Poem, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *poemRepoStub) List(ctx context.Context, viewerID uint, authorID *uint) ([]models.Poem, error) {
	return s.listFn(ctx, viewerID, authorID)
}
func (s *poemRepoStub) Update(ctx context.Context, poem *models.Poem) error {
	return s.updateFn(ctx, poem)
}
func (s *poemRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *poemRepoStub) IsLiked(ctx context.Context, userID, poemID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, poemID)
}
func (s *poemRepoStub) Like(ctx context.Context, userID, poemID uint) error {
	return s.likeFn(ctx, userID, poemID)
}
func (s *poemRepoStub) Unlike(ctx context.Context, userID, poemID uint) error {
	return s.unlikeFn(ctx, userID, poemID)
}

func noopPoemRepo() *poemRepoStub {
	return &poemRepoStub{
		createFn: func(_ context.Context, p *models.Poem) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Poem, error) {
			return &models.Poem{ID: id, AuthorID: 1}, nil
		},
		listFn:    func(context.Context, uint, *uint) ([]models.Poem, error) { return nil, nil },
		updateFn:  func(context.Context, *models.Poem) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
		isLikedFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		likeFn:    func(context.Context, uint, uint) error { return nil },
		unlikeFn:  func(context.Context, uint, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn  func(context.Context, *models.Comment) error
	getByIDFn func(context.Context, uint) (*models.Comment, error)
	deleteFn  func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type mailerStub struct {
	sendFn func(context.Context, string, string) error
	sent   []string
}

func (m *mailerStub) SendResetToken(ctx context.Context, toEmail, rawToken string) error {
	if m.sendFn != nil {
		if err := m.sendFn(ctx, toEmail, rawToken); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, rawToken)
	return nil
}
