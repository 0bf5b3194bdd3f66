package board_test

import (
	"testing"
	"time"

	"forum/internal/app/board"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestBoardRepository_GetAllBoards(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := board.NewRepository(gormDB)

	lastPost := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)SELECT .* FROM "boards" LEFT JOIN topics .* LEFT JOIN posts .* GROUP BY .* ORDER BY boards.created_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at", "topics_count", "posts_count", "last_post_at"}).
			AddRow(1, "Django", "Django board.", time.Now(), 2, 5, lastPost).
			AddRow(2, "Go", "Everything about Go.", time.Now(), 0, 0, nil))

	boards, err := repo.GetAllBoards()

	assert.NoError(t, err)
	assert.Len(t, boards, 2)
	assert.Equal(t, "Django", boards[0].Name)
	assert.Equal(t, int64(5), boards[0].PostsCount)
	assert.Nil(t, boards[1].LastPostAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_GetBoardByID_Found(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := board.NewRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE id = .*`).
		WithArgs(uint64(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at", "updated_at"}).
			AddRow(1, "Django", "Django board.", time.Now(), time.Now()))

	b, err := repo.GetBoardByID(1)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), b.ID)
	assert.Equal(t, "Django", b.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_GetBoardByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := board.NewRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE id = .*`).
		WithArgs(uint64(99), 1).
		WillReturnError(gorm.ErrRecordNotFound)

	b, err := repo.GetBoardByID(99)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_CreateBoard(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := board.NewRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "boards"`).
		WithArgs("Django", "Django board.", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	b := &board.Board{Name: "Django", Description: "Django board."}
	err := repo.CreateBoard(b)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
