package skills

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// DailyStats accumulates in-memory aggregates for the current UTC day
// and resets itself on the first write of a new day.
type DailyStats struct {
	mu          sync.Mutex
	day         string
	matchScores []float64
	skillGaps   map[string]int
	roles       map[string]int
	trending    []string
}

// DailySnapshot is the read-side view of one day's aggregates.
type DailySnapshot struct {
	Date           string   `json:"date"`
	Analyses       int      `json:"analyses"`
	AvgMatchScore  float64  `json:"avg_match_score"`
	TopSkillGaps   []string `json:"top_skill_gaps"`
	TopTargetRoles []string `json:"top_target_roles"`
	TrendingSkills []string `json:"trending_skills"`
}

func NewDailyStats() *DailyStats {
	return &DailyStats{
		day:       today(),
		skillGaps: make(map[string]int),
		roles:     make(map[string]int),
	}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// rolloverIfNewDay must be called with the mutex held.
func (d *DailyStats) rolloverIfNewDay() {
	if now := today(); now != d.day {
		d.day = now
		d.matchScores = nil
		d.skillGaps = make(map[string]int)
		d.roles = make(map[string]int)
		d.trending = nil
	}
}

// Record folds one completed analysis into today's aggregates. The
// target role is reduced to its first line, trimmed and lowercased, so
// free-text job descriptions bucket sensibly.
func (d *DailyStats) Record(matchScore float64, missingSkills []string, targetRole string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rolloverIfNewDay()

	d.matchScores = append(d.matchScores, matchScore)
	for _, s := range missingSkills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		d.skillGaps[key]++
	}
	if role := roleKey(targetRole); role != "" {
		d.roles[role]++
	}
}

// UpdateTrending replaces the trending-skills list for today.
func (d *DailyStats) UpdateTrending(skills []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rolloverIfNewDay()
	d.trending = append([]string(nil), skills...)
}

// TodaysStats returns a snapshot of today's aggregates, with safe
// defaults when nothing has been recorded yet.
func (d *DailyStats) TodaysStats() DailySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rolloverIfNewDay()

	snap := DailySnapshot{
		Date:           d.day,
		Analyses:       len(d.matchScores),
		TopSkillGaps:   topKeys(d.skillGaps, 5),
		TopTargetRoles: topKeys(d.roles, 5),
		TrendingSkills: append([]string{}, d.trending...),
	}
	if snap.Analyses > 0 {
		var sum float64
		for _, s := range d.matchScores {
			sum += s
		}
		snap.AvgMatchScore = round2(sum / float64(snap.Analyses))
	}
	return snap
}

func roleKey(targetRole string) string {
	line := targetRole
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.ToLower(strings.TrimSpace(line))
	const maxRoleKey = 80
	if len(line) > maxRoleKey {
		line = line[:maxRoleKey]
	}
	return line
}

// topKeys returns up to n keys ordered by descending count, ties broken
// alphabetically for stable output.
func topKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}
