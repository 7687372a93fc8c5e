package service

import (
	"context"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
)

type MemberService interface {
	// SaveMember создает участника (id == nil) или обновляет существующего
	SaveMember(ctx context.Context, id *int, in domain.MemberInput) (*view.Page, error)
}
