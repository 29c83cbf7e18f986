package curriculum

// Exercise identifies one exercise within a language track. It is a plain
// value; two exercises are the same iff both fields match.
type Exercise struct {
	Language string
	Slug     string
}

func (e Exercise) String() string {
	return e.Language + "/" + e.Slug
}
