// internal/app/store/rostermem/memstore.go

// Package rostermem is an in-memory roster.Store. It backs the engine and
// registry tests, and anything else that needs a store without a running
// MongoDB. All reads and writes deep-copy, so callers can never mutate
// store state through a returned snapshot.
package rostermem

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/guildroster/internal/app/roster"
	"github.com/dalemusser/guildroster/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds per-guild roster state behind one mutex.
type Store struct {
	mu      sync.Mutex
	groups  map[primitive.ObjectID][]models.Group
	parties map[primitive.ObjectID][]models.Party
	members map[primitive.ObjectID][]models.Member
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		groups:  make(map[primitive.ObjectID][]models.Group),
		parties: make(map[primitive.ObjectID][]models.Party),
		members: make(map[primitive.ObjectID][]models.Member),
	}
}

var _ roster.Store = (*Store)(nil)

func copyGroups(in []models.Group) []models.Group {
	out := make([]models.Group, len(in))
	for i, g := range in {
		ids := make([]primitive.ObjectID, len(g.PartyIDs))
		copy(ids, g.PartyIDs)
		g.PartyIDs = ids
		out[i] = g
	}
	return out
}

func copyParties(in []models.Party) []models.Party {
	out := make([]models.Party, len(in))
	copy(out, in) // Slots is a fixed array, copied by value
	return out
}

func copyMembers(in []models.Member) []models.Member {
	out := make([]models.Member, len(in))
	for i, m := range in {
		if m.Assignments != nil {
			asn := make(map[models.ActivityType]models.Assignment, len(m.Assignments))
			for k, v := range m.Assignments {
				asn[k] = v
			}
			m.Assignments = asn
		}
		out[i] = m
	}
	return out
}

func (s *Store) LoadGroups(_ context.Context, guildID primitive.ObjectID) ([]models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyGroups(s.groups[guildID]), nil
}

func (s *Store) SaveGroups(_ context.Context, guildID primitive.ObjectID, groups []models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[guildID] = copyGroups(groups)
	return nil
}

func (s *Store) LoadParties(_ context.Context, guildID primitive.ObjectID) ([]models.Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyParties(s.parties[guildID]), nil
}

func (s *Store) SaveParties(_ context.Context, guildID primitive.ObjectID, parties []models.Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties[guildID] = copyParties(parties)
	return nil
}

func (s *Store) LoadMembers(_ context.Context, guildID primitive.ObjectID) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMembers(s.members[guildID]), nil
}

func (s *Store) SaveMember(_ context.Context, guildID, memberID primitive.ObjectID, patch roster.MemberPatch) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.members[guildID]
	for i := range list {
		if list[i].ID != memberID {
			continue
		}
		m := &list[i]
		if patch.Name != nil {
			m.Name = *patch.Name
			m.NameCI = text.Fold(*patch.Name)
		}
		if patch.Class != nil {
			m.Class = *patch.Class
		}
		if patch.Level != nil {
			m.Level = *patch.Level
		}
		if patch.Notes != nil {
			m.Notes = *patch.Notes
		}
		if patch.Assignments != nil {
			asn := make(map[models.ActivityType]models.Assignment, len(*patch.Assignments))
			for k, v := range *patch.Assignments {
				asn[k] = v
			}
			m.Assignments = asn
		}
		m.UpdatedAt = time.Now().UTC()
		return copyMembers(list[i : i+1])[0], nil
	}
	return models.Member{}, roster.ErrNotFound
}

func (s *Store) InsertMember(_ context.Context, m models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[m.GuildID] = append(s.members[m.GuildID], copyMembers([]models.Member{m})[0])
	return nil
}

func (s *Store) DeleteMember(_ context.Context, guildID, memberID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.members[guildID]
	for i := range list {
		if list[i].ID == memberID {
			s.members[guildID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return roster.ErrNotFound
}
