package model

// WeeklyStat mirrors the `weekly_leaderboard` table. At most one row exists
// per (member, week_start); upserts replace the three numeric fields.
type WeeklyStat struct {
	ID                   uint64 // weekly_leaderboard.id
	MemberID             uint64 // weekly_leaderboard.member_id
	SessionsAttended     int    // weekly_leaderboard.sessions_attended
	AssessmentsSubmitted int    // weekly_leaderboard.assessments_submitted
	BonusPoints          int    // weekly_leaderboard.bonus_points
	WeekStart            string // weekly_leaderboard.week_start, ISO date of the Monday
}

// MonthlyStat mirrors the `monthly_leaderboard` table, keyed by the
// "YYYY-MM" month string instead of a week date.
type MonthlyStat struct {
	ID                   uint64
	MemberID             uint64
	SessionsAttended     int
	AssessmentsSubmitted int
	BonusPoints          int
	MonthYear            string // "YYYY-MM"
}

// LeaderboardEntry is one ranked row of a weekly or monthly leaderboard as
// returned by the public API. Every member appears exactly once; members
// without a stat row for the period carry zeros. The camelCase json names
// are part of the public API contract.
type LeaderboardEntry struct {
	ID                   uint64 `json:"id"`
	Name                 string `json:"name"`
	Avatar               string `json:"avatar"`
	SessionsAttended     int    `json:"sessionsAttended"`
	AssessmentsSubmitted int    `json:"assessmentsSubmitted"`
	BonusPoints          int    `json:"bonusPoints"`
	TotalPoints          int    `json:"totalPoints"`
}
