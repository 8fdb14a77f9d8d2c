package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewPlaygroundController(db)
	app.Delete("/categories/:id", ctrl.DeleteCategory)
	return app
}

func TestDeleteCategoryBlockedWhileChallengesRemain(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "ctf_challenges"`).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	app := newTestApp(db)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/categories/7", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusConflict)
	}
	// Tidak boleh ada SELECT kategori atau DELETE setelah guard kena.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "ctf_challenges"`).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "ctf_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	app := newTestApp(db)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/categories/7", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteCategoryWithoutChallenges(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "ctf_challenges"`).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "ctf_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(7, "Web", "web"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "ctf_categories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	app := newTestApp(db)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/categories/7", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
