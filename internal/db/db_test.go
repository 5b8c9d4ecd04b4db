package db_test

import (
	"context"
	"database/sql"
	"path/filepath"

	"msgboard/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null"`
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should save the record and fill its id", func() {
				record := Test{Username: "Alice"}
				err := testDB.Create(ctx, &record)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return a wrapped error", func() {
				err := testDB.Create(ctx, &Test{Username: "Alice"})
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1.*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return a wrapped error", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "id", 3, &result)
				Expect(err).To(MatchError(ContainSubstring(`getting record by "id"`)))
				Expect(err).To(MatchError(sql.ErrConnDone))
			})
		})
	})

	Describe("Exists", func() {
		When("a matching row exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE username = \$1`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			})

			It("should report true", func() {
				exists, err := testDB.Exists(ctx, &Test{}, "username", "Alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE username = \$1`).
					WithArgs("Ghost").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			})

			It("should report false", func() {
				exists, err := testDB.Exists(ctx, &Test{}, "username", "Ghost")
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				_, err := testDB.Exists(ctx, &Test{}, "username", "Alice")
				Expect(err).To(MatchError(ContainSubstring(`counting records by "username"`)))
			})
		})
	})
})

var _ = Describe("SQLite", func() {
	var (
		sqliteDB *db.GormDB
		ctx      context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		sqliteDB, err = db.Open("sqlite", filepath.Join(GinkgoT().TempDir(), "test.db"))
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(sqliteDB.Close)

		Expect(sqliteDB.MigrateTable(&Test{})).To(Succeed())
	})

	It("should round trip a record", func() {
		Expect(sqliteDB.Create(ctx, &Test{Username: "Alice"})).To(Succeed())

		var found Test
		Expect(sqliteDB.GetOneBy(ctx, "username", "Alice", &found)).To(Succeed())
		Expect(found.ID).NotTo(BeZero())

		exists, err := sqliteDB.Exists(ctx, &Test{}, "username", "Alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())
	})

	It("should enforce unique columns", func() {
		Expect(sqliteDB.Create(ctx, &Test{Username: "Alice"})).To(Succeed())

		err := sqliteDB.Create(ctx, &Test{Username: "Alice"})
		Expect(err).To(MatchError(db.ErrDuplicateKey))
	})

	It("should report missing rows", func() {
		var found Test
		err := sqliteDB.GetOneBy(ctx, "id", 99, &found)
		Expect(err).To(MatchError(db.ErrNotFound))
	})
})

var _ = Describe("Open", func() {
	It("should reject unknown drivers", func() {
		_, err := db.Open("mysql", "whatever")
		Expect(err).To(MatchError(ContainSubstring("unsupported database driver")))
	})
})
