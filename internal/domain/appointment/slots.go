package appointment

// Window is a half-open [Start, End) clock range, both "HH:MM".
type Window struct {
	Start string
	End   string
}

type SlotConfig struct {
	Open        string
	Close       string
	DurationMin int
	Lunch       *Window
	Excluded    map[string]struct{}
}

// GenerateSlots lists bookable start times from Open, stepping by the
// service duration while start+duration still fits before Close.
// Steps inside the lunch window are skipped; excluded start times are
// left out. The result is chronological and depends only on cfg.
func GenerateSlots(cfg SlotConfig) ([]string, error) {
	start, err := TimeToMinutes(cfg.Open)
	if err != nil {
		return nil, err
	}
	end, err := TimeToMinutes(cfg.Close)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	if cfg.DurationMin <= 0 || start >= end {
		return slots, nil
	}

	lunchStart, lunchEnd := -1, -1
	if cfg.Lunch != nil && cfg.Lunch.Start != "" && cfg.Lunch.End != "" {
		if lunchStart, err = TimeToMinutes(cfg.Lunch.Start); err != nil {
			return nil, err
		}
		if lunchEnd, err = TimeToMinutes(cfg.Lunch.End); err != nil {
			return nil, err
		}
	}

	for cur := start; cur+cfg.DurationMin <= end; cur += cfg.DurationMin {
		// almoço
		if lunchStart >= 0 && cur >= lunchStart && cur < lunchEnd {
			continue
		}

		hm, err := MinutesToTime(cur)
		if err != nil {
			return nil, err
		}
		if _, taken := cfg.Excluded[hm]; taken {
			continue
		}
		slots = append(slots, hm)
	}

	return slots, nil
}
