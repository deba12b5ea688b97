package player_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/player"
)

type stubRepo struct {
	detail  *player.Player
	created []player.CreateInput
	updated []player.UpdateInput
	deleted []int64
	err     error
}

func (r *stubRepo) Detail(context.Context, int64) (*player.Player, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.detail, nil
}

func (r *stubRepo) ListAll(context.Context) ([]*player.ListEntry, error) { return nil, r.err }

func (r *stubRepo) ListByTeam(context.Context, int64) ([]*player.Ref, error) {
	return nil, r.err
}

func (r *stubRepo) ListWithoutTeam(context.Context) ([]*player.Ref, error) {
	return nil, r.err
}

func (r *stubRepo) Create(_ context.Context, input player.CreateInput) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.created = append(r.created, input)
	return int64(len(r.created)), nil
}

func (r *stubRepo) Update(_ context.Context, input player.UpdateInput) error {
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, input)
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

var _ = Describe("Service", func() {
	var (
		repo    *stubRepo
		service *player.Service
	)

	BeforeEach(func() {
		repo = &stubRepo{}
		service = player.NewService(repo)
	})

	Describe("Create", func() {
		It("rejects an empty name before touching storage", func() {
			_, err := service.Create(context.Background(), player.CreateInput{})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(repo.created).To(BeEmpty())
		})

		It("allows a free agent without a team", func() {
			id, err := service.Create(context.Background(), player.CreateInput{Name: "Bob"})

			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(int64(1)))
			Expect(repo.created[0].TeamID).To(BeNil())
		})
	})

	Describe("Update", func() {
		It("rejects an empty name", func() {
			err := service.Update(context.Background(), player.UpdateInput{ID: 1})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("surfaces the not found error untouched", func() {
			repo.err = internal.ErrPlayerNotFound

			err := service.Update(context.Background(), player.UpdateInput{ID: 9, Name: "Bob"})
			Expect(err).To(Equal(internal.ErrPlayerNotFound))
		})
	})

	Describe("Detail", func() {
		It("surfaces the not found error untouched", func() {
			repo.err = internal.ErrPlayerNotFound

			_, err := service.Detail(context.Background(), 9)
			Expect(err).To(Equal(internal.ErrPlayerNotFound))
		})

		It("wraps other storage failures", func() {
			repo.err = errors.New("connection refused")

			_, err := service.Detail(context.Background(), 9)
			Expect(err).To(MatchError(ContainSubstring("player detail 9")))
		})
	})

	Describe("Delete", func() {
		It("delegates to storage", func() {
			Expect(service.Delete(context.Background(), 2)).To(Succeed())
			Expect(repo.deleted).To(Equal([]int64{2}))
		})
	})
})
