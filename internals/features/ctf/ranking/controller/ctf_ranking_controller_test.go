package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"cyberku_backend/internals/features/ctf/ranking/model"
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

func TestGetAllRankingsOrderedByTotalScore(t *testing.T) {
	db, mock := newMockDB(t)

	// Regex expectation memaksa query membawa ORDER BY total_score DESC.
	mock.ExpectQuery(`SELECT \* FROM "ctf_ranking" ORDER BY total_score DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nama", "total_score"}).
			AddRow(2, "tim-beta", 900).
			AddRow(1, "tim-alpha", 450).
			AddRow(3, "tim-gamma", 100))

	app := fiber.New()
	app.Get("/rankings", NewRankingController(db).GetAll)

	resp, err := app.Test(httptest.NewRequest("GET", "/rankings", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var envelope struct {
		Data []model.CTFRankingModel `json:"data"`
	}
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(envelope.Data) != 3 {
		t.Fatalf("len(data) = %d, want 3", len(envelope.Data))
	}
	for i := 1; i < len(envelope.Data); i++ {
		if envelope.Data[i-1].TotalScore < envelope.Data[i].TotalScore {
			t.Errorf("data not ordered by total_score DESC: %d before %d",
				envelope.Data[i-1].TotalScore, envelope.Data[i].TotalScore)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
