// internal/app/roster/service.go
package roster

import (
	"context"
	"fmt"
	"sync"

	"github.com/dalemusser/guildroster/internal/domain/models"
	"github.com/puzpuzpuz/xsync/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Service owns the roster business rules: the group and party registries,
// the member directory, and the assignment engine. It is an in-process
// library; the HTTP layer above it handles routing, validation, and
// authorization.
//
// Every mutating operation takes a per-guild mutex, loads a fresh snapshot
// from the store, mutates it, and writes the result back. The lock gives
// concurrent writers to the same guild a serialized commit order instead of
// last-writer-wins overwrite. There is no rollback if a party write
// succeeds and a paired member write fails; the two views can be
// transiently inconsistent until the next engine mutation rewrites the
// member back-references.
type Service struct {
	store Store
	locks *xsync.Map[primitive.ObjectID, *sync.Mutex]
	log   *zap.Logger
}

// New constructs a Service on top of a Store.
func New(store Store, logger *zap.Logger) *Service {
	return &Service{
		store: store,
		locks: xsync.NewMap[primitive.ObjectID, *sync.Mutex](),
		log:   logger,
	}
}

// lockGuild serializes roster mutations for one guild. The returned func
// releases the lock.
func (s *Service) lockGuild(guildID primitive.ObjectID) func() {
	mu, _ := s.locks.LoadOrStore(guildID, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// saveMemberAssignments persists the Assignments map for each listed member.
// Nil and duplicate ids are skipped, as are ids no longer present in the
// snapshot (e.g. a displaced member that was deleted concurrently).
func (s *Service) saveMemberAssignments(ctx context.Context, snap *Snapshot, ids ...primitive.ObjectID) error {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		if id == primitive.NilObjectID || seen[id] {
			continue
		}
		seen[id] = true
		m := snap.Member(id)
		if m == nil {
			continue
		}
		asn := m.Assignments
		if asn == nil {
			asn = map[models.ActivityType]models.Assignment{}
		}
		if _, err := s.store.SaveMember(ctx, snap.GuildID, id, MemberPatch{Assignments: &asn}); err != nil {
			return fmt.Errorf("save member %s: %w", id.Hex(), err)
		}
	}
	return nil
}
