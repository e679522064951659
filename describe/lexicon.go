package describe

// Lexicon holds the frequency vocabulary used when assembling a sentence.
// Adjective is the standalone form ("yearly"), Noun the countable form
// ("year") used after "every".
type Lexicon struct {
	Adjective map[Frequency]string
	Noun      map[Frequency]string
	Pluralize func(noun string, n int) string
}

// defaultLexicon is the process-wide English table. Read-only; merging always
// copies, never writes back.
var defaultLexicon = Lexicon{
	Adjective: map[Frequency]string{
		Yearly:   "yearly",
		Monthly:  "monthly",
		Weekly:   "weekly",
		Daily:    "daily",
		Hourly:   "hourly",
		Minutely: "minutely",
		Secondly: "secondly",
	},
	Noun: map[Frequency]string{
		Yearly:   "year",
		Monthly:  "month",
		Weekly:   "week",
		Daily:    "day",
		Hourly:   "hour",
		Minutely: "minute",
		Secondly: "second",
	},
	Pluralize: defaultPluralize,
}

func defaultPluralize(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

// MergeLexicon returns the default table with Adjective/Noun entries
// shallow-merged from override. The pluralizer is replaced wholesale when
// override supplies one. A nil override yields a copy of the defaults.
func MergeLexicon(override *Lexicon) Lexicon {
	merged := Lexicon{
		Adjective: make(map[Frequency]string, len(defaultLexicon.Adjective)),
		Noun:      make(map[Frequency]string, len(defaultLexicon.Noun)),
		Pluralize: defaultLexicon.Pluralize,
	}
	for k, v := range defaultLexicon.Adjective {
		merged.Adjective[k] = v
	}
	for k, v := range defaultLexicon.Noun {
		merged.Noun[k] = v
	}
	if override == nil {
		return merged
	}
	for k, v := range override.Adjective {
		merged.Adjective[k] = v
	}
	for k, v := range override.Noun {
		merged.Noun[k] = v
	}
	if override.Pluralize != nil {
		merged.Pluralize = override.Pluralize
	}
	return merged
}
