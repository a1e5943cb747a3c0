package models

// RewriteMapEntry maps a student id to its pseudonymous UID. The map
// as a whole is a bijection over all students of a run, with UIDs
// assigned sequentially and zero-padded, independent of school.
type RewriteMapEntry struct {
	SchoolID  string `json:"schoolId" example:"sch-ashfield"`
	StudentID string `json:"studentId" example:"sch-ashfield-0001"`
	UID       string `json:"uid" example:"UID-00001"`
}
