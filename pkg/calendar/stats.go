package calendar

import "lexcal/pkg/api"

// Stats are the aggregate counts shown in the status area. They are
// recomputed on every change to the event collection; the set is
// bounded by a single list call, so no memoization is needed.
type Stats struct {
	Total int

	Hearings      int
	CourtDates    int
	Deadlines     int
	Meetings      int
	Consultations int

	Scheduled int
	Confirmed int
	Completed int
}

// CourtEvents is the derived union of hearings and court dates. It is
// not a primary category.
func (s Stats) CourtEvents() int {
	return s.Hearings + s.CourtDates
}

// Collect partitions the collection into the aggregate counts
func Collect(events []api.Event) Stats {
	var s Stats
	s.Total = len(events)

	for _, e := range events {
		switch e.EventType {
		case api.TypeHearing:
			s.Hearings++
		case api.TypeCourtDate:
			s.CourtDates++
		case api.TypeDeadline:
			s.Deadlines++
		case api.TypeMeeting:
			s.Meetings++
		case api.TypeConsultation:
			s.Consultations++
		}

		switch e.Status {
		case api.StatusScheduled:
			s.Scheduled++
		case api.StatusConfirmed:
			s.Confirmed++
		case api.StatusCompleted:
			s.Completed++
		}
	}
	return s
}
