package utils

// Score weights per stat field. Sessions are worth 10 points, assessments
// 20, bonus points count as-is.
const (
	SessionPoints    = 10
	AssessmentPoints = 20
)

// Score maps a member's stat fields to their total points. Pure and total;
// inputs are expected to be non-negative but that is enforced by callers,
// not here.
func Score(sessions, assessments, bonus int) int {
	return sessions*SessionPoints + assessments*AssessmentPoints + bonus
}
