package match_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/match"
)

type stubRepo struct {
	created []match.CreateInput
	updated []match.UpdateInput
	deleted []int64
	err     error
}

func (r *stubRepo) List(context.Context) ([]*match.ListEntry, error) { return nil, r.err }

func (r *stubRepo) Detail(context.Context, int64) (*match.Detail, error) {
	return nil, r.err
}

func (r *stubRepo) Create(_ context.Context, input match.CreateInput) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.created = append(r.created, input)
	return int64(len(r.created)), nil
}

func (r *stubRepo) Update(_ context.Context, input match.UpdateInput) error {
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
		service *match.Service
	)

	kickoff := time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		repo = &stubRepo{}
		service = match.NewService(repo)
	})

	Describe("Create", func() {
		It("rejects a match without both teams", func() {
			_, err := service.Create(context.Background(), match.CreateInput{Date: kickoff, Team1ID: 1})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(repo.created).To(BeEmpty())
		})

		It("rejects a team playing against itself", func() {
			_, err := service.Create(context.Background(), match.CreateInput{Date: kickoff, Team1ID: 2, Team2ID: 2})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(ContainSubstring("against itself"))
		})

		It("forwards statistics lines to storage", func() {
			_, err := service.Create(context.Background(), match.CreateInput{
				Date:    kickoff,
				Round:   3,
				Team1ID: 1,
				Team2ID: 2,
				Statistics: []match.StatInput{
					{PlayerID: 10, TeamID: 1, Goals: 2, Assists: 1},
				},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.created).To(HaveLen(1))
			Expect(repo.created[0].Statistics).To(HaveLen(1))
			Expect(repo.created[0].Statistics[0].Goals).To(Equal(2))
		})
	})

	Describe("Update", func() {
		It("applies the same side validation as create", func() {
			err := service.Update(context.Background(), match.UpdateInput{ID: 1, Team1ID: 5, Team2ID: 5})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(repo.updated).To(BeEmpty())
		})

		It("surfaces the not found error untouched", func() {
			repo.err = internal.ErrMatchNotFound

			err := service.Update(context.Background(), match.UpdateInput{ID: 9, Team1ID: 1, Team2ID: 2})
			Expect(err).To(Equal(internal.ErrMatchNotFound))
		})
	})

	Describe("Delete", func() {
		It("delegates to storage", func() {
			Expect(service.Delete(context.Background(), 6)).To(Succeed())
			Expect(repo.deleted).To(Equal([]int64{6}))
		})

		It("surfaces the not found error untouched", func() {
			repo.err = internal.ErrMatchNotFound
			Expect(service.Delete(context.Background(), 9)).To(Equal(internal.ErrMatchNotFound))
		})
	})
})
