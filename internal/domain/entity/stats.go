package entity

// Stats aggregates the size of the school's member collections.
type Stats struct {
	TotalStudents int64
	TotalTeachers int64
	TotalParents  int64
}

// Total returns the number of rows across the three collections.
func (s Stats) Total() int64 {
	return s.TotalStudents + s.TotalTeachers + s.TotalParents
}
