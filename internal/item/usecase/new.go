package usecase

import (
	"time"

	"github.com/google/uuid"

	"catalog/internal/item"
	"catalog/internal/item/repository"
	"catalog/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
// now has millisecond precision, the resolution of a stored BSON datetime.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	now   func() time.Time
	newID func() string
}

var _ item.UseCase = (*implUseCase)(nil)

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID: uuid.NewString,
	}
}
