package appointment

import "github.com/BruksfildServices01/cutcorp-booking/internal/models"

// BlockGranularityMin is the step used to expand pauses into start times,
// independent of any service duration.
const BlockGranularityMin = 15

// ExcludedStartTimes flattens a day's commitments into the set of start
// times that must not be offered. Cancelled entries free their slot.
// A system block with an end time occupies every 15-minute step of
// [start, end); everything else occupies only its own start time.
func ExcludedStartTimes(appointments []models.Appointment) (map[string]struct{}, error) {
	excluded := make(map[string]struct{}, len(appointments))

	for _, ap := range appointments {
		if !IsBlocking(ap) {
			continue
		}

		if Source(ap.Source) != SourceSystemBlock || ap.EndTime == "" {
			excluded[ap.Time] = struct{}{}
			continue
		}

		start, err := TimeToMinutes(ap.Time)
		if err != nil {
			return nil, err
		}
		end, err := TimeToMinutes(ap.EndTime)
		if err != nil {
			return nil, err
		}

		for cur := start; cur < end; cur += BlockGranularityMin {
			hm, err := MinutesToTime(cur)
			if err != nil {
				return nil, err
			}
			excluded[hm] = struct{}{}
		}
	}

	return excluded, nil
}
