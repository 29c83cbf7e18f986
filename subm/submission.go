package subm

import (
	"time"

	"github.com/google/uuid"
)

type Submission struct {
	UUID       uuid.UUID
	AuthorUUID uuid.UUID
	Language   string
	Slug       string
	Code       string
	State      State
	MutedBy    []uuid.UUID
	CreatedAt  time.Time
}

func (s *Submission) IsMutedBy(userUUID uuid.UUID) bool {
	for _, id := range s.MutedBy {
		if id == userUUID {
			return true
		}
	}
	return false
}

func (s *Submission) Mute(userUUID uuid.UUID) {
	if s.IsMutedBy(userUUID) {
		return
	}
	s.MutedBy = append(s.MutedBy, userUUID)
}

func (s *Submission) Unmute(userUUID uuid.UUID) {
	for i, id := range s.MutedBy {
		if id == userUUID {
			s.MutedBy = append(s.MutedBy[:i], s.MutedBy[i+1:]...)
			return
		}
	}
}

type SubmissionContent struct {
	Value string
}

func (subm *SubmissionContent) IsValid() error {
	const maxSubmissionLengthKilobytes = 64 // 64 KB
	if len(subm.Value) > maxSubmissionLengthKilobytes*1000 {
		return newErrSubmissionTooLong(maxSubmissionLengthKilobytes)
	}
	return nil
}

func (subm *SubmissionContent) String() string {
	return subm.Value
}
