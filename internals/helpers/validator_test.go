package helper

import "testing"

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Level string `validate:"required,oneof=Easy Medium Hard"`
	}

	t.Run("valid struct returns nil", func(t *testing.T) {
		p := payload{Email: "admin@cyberku.id", Level: "Easy"}
		if errs := ValidateStruct(&p); errs != nil {
			t.Errorf("expected nil, got %v", errs)
		}
	})

	t.Run("missing fields reported per field", func(t *testing.T) {
		errs := ValidateStruct(&payload{})
		if errs == nil {
			t.Fatal("expected validation errors")
		}
		if _, ok := errs["Email"]; !ok {
			t.Error("expected Email error")
		}
		if _, ok := errs["Level"]; !ok {
			t.Error("expected Level error")
		}
	})

	t.Run("challenge_level accepts known levels only", func(t *testing.T) {
		type challenge struct {
			Level string `validate:"required,challenge_level"`
		}
		for _, level := range []string{"Easy", "Medium", "Hard"} {
			if errs := ValidateStruct(&challenge{Level: level}); errs != nil {
				t.Errorf("level %q should be valid, got %v", level, errs)
			}
		}
		for _, level := range []string{"easy", "Insane", "EASY", "Med"} {
			errs := ValidateStruct(&challenge{Level: level})
			if errs == nil {
				t.Errorf("level %q should be rejected", level)
				continue
			}
			if tags, ok := errs["Level"]; !ok || tags[0] != "challenge_level" {
				t.Errorf("expected challenge_level tag for %q, got %v", level, errs)
			}
		}
	})

	t.Run("oneof violation reported", func(t *testing.T) {
		errs := ValidateStruct(&payload{Email: "admin@cyberku.id", Level: "Insane"})
		if errs == nil {
			t.Fatal("expected validation errors")
		}
		tags, ok := errs["Level"]
		if !ok || len(tags) == 0 || tags[0] != "oneof" {
			t.Errorf("expected oneof tag for Level, got %v", errs)
		}
	})
}
