package domain

// TimeCalculation is the derived metrics bundle recomputed on demand
// from a session's actions and breaks. It is never persisted.
type TimeCalculation struct {
	TotalWorkSeconds      int
	TotalBreakSeconds     int
	ProductiveSeconds     int
	RemainingSeconds      int
	OvertimeSeconds       int
	CurrentSessionSeconds int
	IsOvertime            bool
	WorkNormMinutes       int

	// Warnings records intervals excluded from the totals, e.g. because
	// a stored timestamp failed to parse. An unknown duration is never
	// silently treated as zero work.
	Warnings []string
}

// DeriveCalculation fills in the dependent fields from raw work and
// break totals against the given norm:
//
//	productive = max(0, work - break)
//	remaining  = max(0, norm - productive)
//	overtime   = max(0, productive - norm)
func DeriveCalculation(workSeconds, breakSeconds, normMinutes int) TimeCalculation {
	if workSeconds < 0 {
		workSeconds = 0
	}
	if breakSeconds < 0 {
		breakSeconds = 0
	}
	normSeconds := normMinutes * 60

	productive := workSeconds - breakSeconds
	if productive < 0 {
		productive = 0
	}
	remaining := normSeconds - productive
	if remaining < 0 {
		remaining = 0
	}
	overtime := productive - normSeconds
	if overtime < 0 {
		overtime = 0
	}

	return TimeCalculation{
		TotalWorkSeconds:  workSeconds,
		TotalBreakSeconds: breakSeconds,
		ProductiveSeconds: productive,
		RemainingSeconds:  remaining,
		OvertimeSeconds:   overtime,
		IsOvertime:        overtime > 0,
		WorkNormMinutes:   normMinutes,
	}
}

// TotalWorkMinutes is the minutes view used by summary surfaces.
func (c TimeCalculation) TotalWorkMinutes() int { return c.TotalWorkSeconds / 60 }

func (c TimeCalculation) TotalBreakMinutes() int { return c.TotalBreakSeconds / 60 }

func (c TimeCalculation) ProductiveMinutes() int { return c.ProductiveSeconds / 60 }

func (c TimeCalculation) RemainingMinutes() int { return c.RemainingSeconds / 60 }

func (c TimeCalculation) OvertimeMinutes() int { return c.OvertimeSeconds / 60 }
