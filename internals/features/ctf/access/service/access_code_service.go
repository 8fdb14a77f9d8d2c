package service

import (
	"context"
	"strconv"
	"strings"

	"cyberku_backend/internals/features/ctf/playground/model"
)

/* ==========================
   Klasifikasi format kode
========================== */

// CodeFormat: bentuk sintaksis kode yang disubmit. Primary rule (exact match
// dengan access_code tersimpan) selalu dicek duluan, baru fallback sesuai
// format di bawah. Aturan: format pertama yang "kena" secara sintaksis yang
// dievaluasi; format yang cocok bentuknya tapi gagal perbandingannya = deny,
// tidak lanjut ke aturan berikutnya.
type CodeFormat int

const (
	// "CR-<challengeId>" — pola kode akses versi lama
	FormatLegacyNumeric CodeFormat = iota
	// "<email>_<kode>_<tag>" — 3 bagian dipisah underscore
	FormatComposite3
	// "<kode>_<id>" — 2 bagian, bagian kedua numerik
	FormatComposite2
	// bentuk lain → hanya dicek ke allow-list statis
	FormatUnrecognized
)

func (f CodeFormat) String() string {
	switch f {
	case FormatLegacyNumeric:
		return "legacy_numeric"
	case FormatComposite3:
		return "composite3"
	case FormatComposite2:
		return "composite2"
	default:
		return "unrecognized"
	}
}

// ClassifyCode menentukan format fallback untuk kode yang gagal di primary rule.
func ClassifyCode(code, challengeID string) CodeFormat {
	if code == "CR-"+challengeID {
		return FormatLegacyNumeric
	}
	parts := strings.Split(code, "_")
	switch len(parts) {
	case 3:
		return FormatComposite3
	case 2:
		// bagian kedua harus numerik supaya format ini berlaku
		if _, err := strconv.Atoi(parts[1]); err == nil {
			return FormatComposite2
		}
	}
	return FormatUnrecognized
}

/* ==========================
   Allow-list statis
========================== */

// Pasangan (kode, challengeId) yang di-approve manual oleh operator.
// Dulu disimulasikan lewat file akses_list_ctf.txt — sekarang eksplisit di
// sini supaya bisa di-review. Konfirmasi ke product owner sebelum
// menambah/menghapus entri.
type allowEntry struct {
	Code        string
	ChallengeID string
}

var staticAllowList = []allowEntry{
	{Code: "CYBERKU-TRIAL-01", ChallengeID: "1"},
	{Code: "CYBERKU-TRIAL-02", ChallengeID: "2"},
	{Code: "WORKSHOP-BATCH1", ChallengeID: "5"},
}

func allowListMatch(code, challengeID string) bool {
	for _, e := range staticAllowList {
		if e.Code == code && e.ChallengeID == challengeID {
			return true
		}
	}
	return false
}

/* ==========================
   Validator
========================== */

// ChallengeFinder: akses baca minimal yang dibutuhkan validator.
// Implementasi GORM ada di repository; test memakai fake.
type ChallengeFinder interface {
	// FindByID mengembalikan (nil, nil) jika challenge tidak ada.
	FindByID(ctx context.Context, id string) (*model.CTFChallengeModel, error)
}

type Decision struct {
	Granted   bool
	Reason    string // pesan untuk response saat deny
	Challenge *model.CTFChallengeModel
}

type AccessValidator struct {
	Challenges ChallengeFinder
}

func NewAccessValidator(finder ChallengeFinder) *AccessValidator {
	return &AccessValidator{Challenges: finder}
}

const deniedMessage = "Kode akses tidak valid untuk challenge ini"

// CheckAccess memutuskan apakah (accessCode, challengeID) boleh membuka
// drive_link challenge. Deny adalah hasil normal (bukan error); error hanya
// untuk kegagalan storage.
func (v *AccessValidator) CheckAccess(ctx context.Context, accessCode, challengeID string) (Decision, error) {
	challenge, err := v.Challenges.FindByID(ctx, challengeID)
	if err != nil {
		return Decision{}, err
	}
	if challenge == nil {
		return Decision{Granted: false, Reason: "Challenge tidak ditemukan"}, nil
	}

	// Primary rule: exact match (case-sensitive) dengan access_code tersimpan
	if challenge.AccessCode != "" && accessCode == challenge.AccessCode {
		return Decision{Granted: true, Challenge: challenge}, nil
	}

	switch ClassifyCode(accessCode, challengeID) {
	case FormatLegacyNumeric:
		return Decision{Granted: true, Challenge: challenge}, nil

	case FormatComposite3:
		parts := strings.Split(accessCode, "_")
		if challenge.AccessCode != "" && parts[2] == challenge.AccessCode {
			return Decision{Granted: true, Challenge: challenge}, nil
		}
		return Decision{Granted: false, Reason: deniedMessage}, nil

	case FormatComposite2:
		parts := strings.Split(accessCode, "_")
		codeID, _ := strconv.Atoi(parts[1])
		if wantID, err := strconv.Atoi(challengeID); err == nil && codeID == wantID {
			return Decision{Granted: true, Challenge: challenge}, nil
		}
		return Decision{Granted: false, Reason: deniedMessage}, nil

	default:
		if allowListMatch(accessCode, challengeID) {
			return Decision{Granted: true, Challenge: challenge}, nil
		}
		return Decision{Granted: false, Reason: deniedMessage}, nil
	}
}
