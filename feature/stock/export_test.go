package stock

import "time"

// SetSchedulerInterval shortens the tick period in tests.
func SetSchedulerInterval(s *Scheduler, d time.Duration) {
	s.interval = d
}
