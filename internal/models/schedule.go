package models

// Bucket is the mutually exclusive scheduling state of a task
type Bucket string

const (
	BucketInbox     Bucket = "inbox"
	BucketToday     Bucket = "today"
	BucketEvening   Bucket = "evening"
	BucketSomeday   Bucket = "someday"
	BucketAnytime   Bucket = "anytime"
	BucketScheduled Bucket = "scheduled"
)

// Schedule is a bucket plus, for BucketScheduled, its calendar date (YYYY-MM-DD).
type Schedule struct {
	Bucket Bucket
	Date   string
}

func Inbox() Schedule { return Schedule{Bucket: BucketInbox} }
func Today() Schedule { return Schedule{Bucket: BucketToday} }
func Evening() Schedule { return Schedule{Bucket: BucketEvening} }
func Someday() Schedule { return Schedule{Bucket: BucketSomeday} }
func Anytime() Schedule { return Schedule{Bucket: BucketAnytime} }

// ScheduledFor returns a schedule pinned to date (YYYY-MM-DD).
func ScheduledFor(date string) Schedule {
	return Schedule{Bucket: BucketScheduled, Date: date}
}

// IsToday reports whether the schedule is Today or Today-Evening.
func (s Schedule) IsToday() bool {
	return s.Bucket == BucketToday || s.Bucket == BucketEvening
}

func (s Schedule) String() string {
	switch s.Bucket {
	case BucketEvening:
		return "today (evening)"
	case BucketScheduled:
		return s.Date
	case "":
		return string(BucketInbox)
	}
	return string(s.Bucket)
}
