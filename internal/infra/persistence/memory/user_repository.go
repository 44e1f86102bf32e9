package memory

import (
	"context"
	"time"

	"arches/internal/domain/entity"
	"arches/internal/domain/repository"
)

type userRecord struct {
	id           int64
	username     string
	passwordHash string
	createdAt    time.Time
}

func (r *userRecord) toEntity() *entity.User {
	return &entity.User{
		ID:           r.id,
		Username:     r.username,
		PasswordHash: r.passwordHash,
		CreatedAt:    r.createdAt,
	}
}

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	record, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return record.toEntity(), nil
}

func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	id, ok := repo.store.usernames[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.store.users[id].toEntity(), nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, taken := repo.store.usernames[user.Username]; taken {
		return repository.ErrUsernameTaken
	}

	repo.store.nextUser++
	record := &userRecord{
		id:           repo.store.nextUser,
		username:     user.Username,
		passwordHash: user.PasswordHash,
		createdAt:    time.Now().UTC(),
	}
	repo.store.users[record.id] = record
	repo.store.usernames[record.username] = record.id

	user.ID = record.id
	user.CreatedAt = record.createdAt

	return nil
}
