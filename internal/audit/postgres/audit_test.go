package postgres_test

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/leagueops/league-management/internal/audit"
	"github.com/leagueops/league-management/internal/audit/postgres"
)

var _ = Describe("Repository", func() {
	var (
		mock sqlmock.Sqlmock
		repo *postgres.Repository
	)

	BeforeEach(func() {
		conn, m, err := sqlmock.New()
		Expect(err).NotTo(HaveOccurred())
		mock = m

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: conn}), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		repo = postgres.NewRepository(db)
	})

	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).To(Succeed())
	})

	Describe("Insert", func() {
		It("writes the entry into the logs table", func() {
			now := time.Now().UTC()
			mock.ExpectExec(regexp.QuoteMeta(
				`INSERT INTO logs (user_id, path, input, type, created_at) VALUES ($1, $2, $3, $4, $5)`,
			)).
				WithArgs(int64(7), "players.create", `{"name":"Bob"}`, "MUTATION", now).
				WillReturnResult(sqlmock.NewResult(1, 1))

			err := repo.Insert(context.Background(), &audit.Entry{
				UserID:    7,
				Path:      "players.create",
				Input:     json.RawMessage(`{"name":"Bob"}`),
				Kind:      audit.KindMutation,
				CreatedAt: now,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("stores null for an absent input payload", func() {
			now := time.Now().UTC()
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO logs`)).
				WithArgs(int64(7), "teams.delete", "null", "MUTATION", now).
				WillReturnResult(sqlmock.NewResult(1, 1))

			err := repo.Insert(context.Background(), &audit.Entry{
				UserID:    7,
				Path:      "teams.delete",
				Kind:      audit.KindMutation,
				CreatedAt: now,
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("ListByUser", func() {
		It("reads entries newest first", func() {
			now := time.Now().UTC()
			rows := sqlmock.NewRows([]string{"id", "user_id", "path", "input", "type", "created_at"}).
				AddRow(int64(2), int64(7), "teams.update", `{"id":1}`, "MUTATION", now).
				AddRow(int64(1), int64(7), "teams.create", `{"name":"Reds"}`, "MUTATION", now.Add(-time.Minute))

			mock.ExpectQuery(regexp.QuoteMeta(
				`SELECT id, user_id, path, input, type, created_at FROM logs WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
			)).
				WithArgs(int64(7), 50).
				WillReturnRows(rows)

			entries, err := repo.ListByUser(context.Background(), 7, 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Path).To(Equal("teams.update"))
			Expect(entries[0].Kind).To(Equal(audit.KindMutation))
			Expect(entries[0].Input).To(MatchJSON(`{"id":1}`))
			Expect(entries[1].Path).To(Equal("teams.create"))
		})
	})
})
