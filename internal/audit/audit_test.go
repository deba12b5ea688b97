package audit_test

import (
	"context"
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/leagueops/league-management/internal/audit"
)

type memoryRepo struct {
	entries []*audit.Entry
	err     error

	lastLimit int
}

func (r *memoryRepo) Insert(_ context.Context, entry *audit.Entry) error {
	if r.err != nil {
		return r.err
	}
	copied := *entry
	copied.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, &copied)
	return nil
}

func (r *memoryRepo) ListByUser(_ context.Context, userID int64, limit int) ([]*audit.Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastLimit = limit
	matched := []*audit.Entry{}
	for _, e := range r.entries {
		if e.UserID == userID {
			matched = append(matched, e)
		}
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

var _ = Describe("Log", func() {
	var (
		repo *memoryRepo
		log  *audit.Log
	)

	BeforeEach(func() {
		repo = &memoryRepo{}
		log = audit.NewLog(repo)
	})

	Describe("Record", func() {
		It("persists the call with its raw input", func() {
			err := log.Record(context.Background(), 7, "players.create", json.RawMessage(`{"name":"Bob"}`), "MUTATION")

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.entries).To(HaveLen(1))
			entry := repo.entries[0]
			Expect(entry.UserID).To(Equal(int64(7)))
			Expect(entry.Path).To(Equal("players.create"))
			Expect(entry.Kind).To(Equal(audit.KindMutation))
			Expect(entry.Input).To(MatchJSON(`{"name":"Bob"}`))
			Expect(entry.CreatedAt).NotTo(BeZero())
		})

		It("propagates write failures", func() {
			repo.err = errors.New("disk full")

			err := log.Record(context.Background(), 7, "players.create", nil, "MUTATION")
			Expect(err).To(MatchError(ContainSubstring("record audit entry for players.create")))
		})
	})

	Describe("ListByUser", func() {
		BeforeEach(func() {
			for i := 0; i < 3; i++ {
				Expect(log.Record(context.Background(), 7, "teams.create", nil, "MUTATION")).To(Succeed())
			}
			Expect(log.Record(context.Background(), 8, "teams.delete", nil, "MUTATION")).To(Succeed())
		})

		It("returns only the requested user's entries", func() {
			entries, err := log.ListByUser(context.Background(), 7, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
		})

		It("clamps absent and oversized limits to the defaults", func() {
			_, err := log.ListByUser(context.Background(), 7, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastLimit).To(Equal(100))

			_, err = log.ListByUser(context.Background(), 7, 9999)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastLimit).To(Equal(100))

			_, err = log.ListByUser(context.Background(), 7, 25)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastLimit).To(Equal(25))
		})
	})
})
