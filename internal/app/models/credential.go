package models

// CredentialRecord is one identifiable login generated for a school's
// credential pool. Login ids are unique within a school; the pool is
// oversized so that unassigned records remain as administrative spares.
type CredentialRecord struct {
	SchoolID string `json:"schoolId" example:"sch-ashfield"`
	LoginID  string `json:"loginId" example:"ASH-k7m2"`
	Password string `json:"password" example:"wq4nf8jx"`
}

// StudentCredential binds one credential record to exactly one
// student. The assignment is a perfect matching: no record is reused
// and no student is left without a login.
type StudentCredential struct {
	StudentID string `json:"studentId" example:"sch-ashfield-0001"`
	SchoolID  string `json:"schoolId" example:"sch-ashfield"`
	LoginID   string `json:"loginId" example:"ASH-k7m2"`
}
