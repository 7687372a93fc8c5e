package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
	"go.uber.org/zap"
)

type memberService struct {
	mutator
}

// NewMemberService создает новый экземпляр MemberService
func NewMemberService(store StateStore, writeMu *sync.Mutex, logger *zap.Logger) MemberService {
	return &memberService{mutator{store: store, writeMu: writeMu, logger: logger}}
}

// SaveMember проверяет имя и роль, пересчитывает аватар и сохраняет состояние
func (s *memberService) SaveMember(ctx context.Context, id *int, in domain.MemberInput) (*view.Page, error) {
	op := opFor(id)
	missing := domain.MissingRequired(id == nil,
		domain.RequiredField{Name: "name", Value: in.Name},
		domain.RequiredField{Name: "role", Value: in.Role},
	)
	if len(missing) > 0 {
		return s.reject(domain.CollectionTeams, op, domain.NewValidationError(missing...))
	}

	return s.commit(ctx, domain.CollectionTeams, op, domain.ViewTeam, func(state *domain.State) error {
		if id == nil {
			member := domain.TeamMember{
				ID:    domain.NextID(state.Teams, func(m domain.TeamMember) int { return m.ID }),
				Name:  valueOr(in.Name, ""),
				Role:  valueOr(in.Role, ""),
				Email: valueOr(in.Email, ""),
			}
			member.Avatar = domain.DeriveAvatar(member.Name)
			state.Teams = append(state.Teams, member)
			return nil
		}

		member, ok := state.FindMember(*id)
		if !ok {
			return domain.NewNotFoundError("team member with id " + strconv.Itoa(*id))
		}
		set(&member.Name, in.Name)
		set(&member.Role, in.Role)
		set(&member.Email, in.Email)
		member.Avatar = domain.DeriveAvatar(member.Name)
		return nil
	})
}
