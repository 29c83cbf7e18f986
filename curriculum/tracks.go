package curriculum

// Built-in tracks the default server wiring registers. Slug order matters:
// it is the order exercises are presented in.

func RubyTrack() *StaticTrack {
	return NewStaticTrack("ruby", []string{
		"bob", "word-count", "anagram", "beer-song", "nucleotide-count",
		"rna-transcription", "point-mutations", "phone-number",
		"grade-school", "robot-name", "leap", "etl", "meetup",
		"space-age", "grains", "gigasecond", "triangle", "scrabble-score",
		"roman-numerals", "binary", "prime-factors", "raindrops",
		"allergies", "strain", "atbash-cipher", "crypto-square",
		"sieve", "simple-cipher",
	})
}

func PythonTrack() *StaticTrack {
	return NewStaticTrack("python", []string{
		"bob", "word-count", "anagram", "beer-song", "nucleotide-count",
		"rna-transcription", "point-mutations", "phone-number",
		"grade-school", "space-age", "leap", "etl", "meetup",
		"grains", "gigasecond", "triangle", "scrabble-score",
		"roman-numerals", "allergies", "atbash-cipher", "sieve",
	})
}

func OcamlTrack() *StaticTrack {
	return NewStaticTrack("ocaml", []string{
		"bob", "word-count", "anagram", "beer-song", "nucleotide-count",
		"rna-transcription", "point-mutations", "phone-number",
		"grade-school", "space-age",
		"prime-factors",
		"zipper",
	})
}
