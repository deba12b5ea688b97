package stats_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/leagueops/league-management/internal/stats"
)

type stubRepo struct {
	teams   []*stats.TeamRow
	players []*stats.PlayerRow
	err     error
}

func (r *stubRepo) TeamSums(context.Context) ([]*stats.TeamRow, error) {
	return r.teams, r.err
}

func (r *stubRepo) PlayerSums(context.Context) ([]*stats.PlayerRow, error) {
	return r.players, r.err
}

var _ = Describe("Service", func() {
	var (
		repo    *stubRepo
		service *stats.Service
	)

	BeforeEach(func() {
		repo = &stubRepo{}
		service = stats.NewService(repo)
	})

	Describe("TeamAverages", func() {
		It("divides every counter by the matches played", func() {
			repo.teams = []*stats.TeamRow{
				{TeamID: 1, TeamName: "Reds", Scored: 9, Conceded: 3, Goals: 9, Passes: 120, AmountPlayed: 3},
			}

			averages, err := service.TeamAverages(context.Background())

			Expect(err).NotTo(HaveOccurred())
			Expect(averages).To(HaveLen(1))
			Expect(averages[0].Scored).To(Equal(3.0))
			Expect(averages[0].Conceded).To(Equal(1.0))
			Expect(averages[0].Passes).To(Equal(40.0))
			Expect(averages[0].AmountPlayed).To(Equal(3))
		})

		It("reports zero averages for a team that never played", func() {
			repo.teams = []*stats.TeamRow{
				{TeamID: 2, TeamName: "Blues", AmountPlayed: 0},
			}

			averages, err := service.TeamAverages(context.Background())

			Expect(err).NotTo(HaveOccurred())
			Expect(averages[0].Scored).To(BeZero())
			Expect(averages[0].Goals).To(BeZero())
		})

		It("wraps storage failures", func() {
			repo.err = errors.New("connection refused")

			_, err := service.TeamAverages(context.Background())
			Expect(err).To(MatchError(ContainSubstring("team stats averages")))
		})
	})

	Describe("PlayerAverages", func() {
		It("divides per-player counters by appearances", func() {
			repo.players = []*stats.PlayerRow{
				{PlayerID: 10, PlayerName: "Alice", Goals: 5, Shots: 11, AmountPlayed: 2},
			}

			averages, err := service.PlayerAverages(context.Background())

			Expect(err).NotTo(HaveOccurred())
			Expect(averages).To(HaveLen(1))
			Expect(averages[0].Goals).To(Equal(2.5))
			Expect(averages[0].Shots).To(Equal(5.5))
		})

		It("reports zero averages for a player with no appearances", func() {
			repo.players = []*stats.PlayerRow{
				{PlayerID: 11, PlayerName: "Bob", AmountPlayed: 0},
			}

			averages, err := service.PlayerAverages(context.Background())

			Expect(err).NotTo(HaveOccurred())
			Expect(averages[0].Goals).To(BeZero())
		})
	})

	Describe("sums", func() {
		It("passes team rows through untouched", func() {
			repo.teams = []*stats.TeamRow{{TeamID: 1, Wins: 2, Losses: 1}}

			rows, err := service.TeamSums(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal(repo.teams))
		})

		It("passes player rows through untouched", func() {
			repo.players = []*stats.PlayerRow{{PlayerID: 10, Score: 42}}

			rows, err := service.PlayerSums(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal(repo.players))
		})
	})
})
