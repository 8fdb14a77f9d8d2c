package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"cyberku_backend/internals/features/profiles/profile/model"
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

func TestCreateWithHistoryRollsBackOnHistoryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("history insert gagal")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "profile" \(`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "profile_photo_history"`).
		WillReturnError(boom)
	mock.ExpectRollback()

	w := NewProfileWriter(db)
	img := "https://cdn.example.com/p.webp"
	profile := model.ProfileModel{Username: "andi", ProfileImg: &img}

	err := w.CreateWithHistory(context.Background(), &profile, img)
	if !errors.Is(err, boom) {
		t.Fatalf("expected history error to surface, got %v", err)
	}
	// Rollback harus terjadi: kedua baris batal, bukan cuma history-nya.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateWithHistoryCommitsBothRows(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "profile" \(`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery(`INSERT INTO "profile_photo_history"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := NewProfileWriter(db)
	img := "https://cdn.example.com/p.webp"
	profile := model.ProfileModel{Username: "andi", ProfileImg: &img}

	if err := w.CreateWithHistory(context.Background(), &profile, img); err != nil {
		t.Fatalf("CreateWithHistory: %v", err)
	}
	if profile.ID != 9 {
		t.Errorf("profile.ID = %d, want 9", profile.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateWithHistorySkipsHistoryWithoutNewPhoto(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profile" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := NewProfileWriter(db)
	profile := model.ProfileModel{ID: 3, Username: "budi"}

	err := w.UpdateWithHistory(context.Background(), &profile,
		map[string]interface{}{"username": "budi-baru"}, "")
	if err != nil {
		t.Fatalf("UpdateWithHistory: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateWithHistoryRollsBackOnHistoryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("history insert gagal")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profile" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "profile_photo_history"`).
		WillReturnError(boom)
	mock.ExpectRollback()

	w := NewProfileWriter(db)
	profile := model.ProfileModel{ID: 3, Username: "budi"}

	err := w.UpdateWithHistory(context.Background(), &profile,
		map[string]interface{}{"profile_img": "https://cdn.example.com/new.webp"},
		"https://cdn.example.com/new.webp")
	if !errors.Is(err, boom) {
		t.Fatalf("expected history error to surface, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
