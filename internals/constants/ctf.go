package constants

// Level challenge yang dikenal frontend
const (
	LevelEasy   = "Easy"
	LevelMedium = "Medium"
	LevelHard   = "Hard"
)

var AllowedChallengeLevels = []string{LevelEasy, LevelMedium, LevelHard}

// IsAllowedChallengeLevel: cek level persis (case-sensitive, ikut frontend).
func IsAllowedChallengeLevel(level string) bool {
	for _, l := range AllowedChallengeLevels {
		if level == l {
			return true
		}
	}
	return false
}

// Jenis perubahan foto profile (profile_photo_history.change_type)
const (
	PhotoChangeInitial = "initial"
	PhotoChangeUpdate  = "update"
)
