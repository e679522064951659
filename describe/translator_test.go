package describe

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeRecur(t *testing.T) {
	d := recurDescriptor(Daily)
	d.Duration = Duration{Hours: 1}
	d.Hours = []int{5}
	d.Minutes = []int{0}

	assert.Equal(t, "Active for 1 hour every day at 5:00", Describe(d, DefaultConfig))

	d.Effect = EffectBlackout
	assert.Equal(t, "Blackout for 1 hour every day at 5:00", Describe(d, DefaultConfig))
}

func TestDescribeDeterminism(t *testing.T) {
	d := recurDescriptor(Yearly)
	d.Months = []int{7}
	d.MonthDays = []int{20}
	d.Duration = Duration{Days: 1}
	d.Hours = []int{5}
	d.Count = mo.Some(3)
	cfg := Config{Limits: LimitsCountOnly}

	first := Describe(d, cfg)
	assert.Contains(t, first, "on july 20")
	assert.Contains(t, first, "for 3 occurrences")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Describe(d, cfg))
	}
}

func TestDescribeDurationText(t *testing.T) {
	d := recurDescriptor(Weekly)
	d.Weekdays = []Weekday{{Day: 1}}
	d.Duration = Duration{Years: 1, Days: 2, Minutes: 30}
	// Components render in fixed order, skipping zeros.
	assert.Equal(t, "Active for 1 year 2 days 30 minutes every week on monday", Describe(d, DefaultConfig))
}

func TestDescribeEmptyDurationKeepsDanglingFor(t *testing.T) {
	// An all-zero duration has always produced the double space after "for";
	// pinned here so any fix is a deliberate change.
	d := recurDescriptor(Daily)
	assert.Equal(t, "Active for  every day", Describe(d, DefaultConfig))
}

func TestDescribeSpanBounds(t *testing.T) {
	sg, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)

	d := RuleDescriptor{
		Kind:   KindSpan,
		Effect: EffectActive,
		TZ:     "Asia/Singapore",
		Unit:   UnitSeconds,
		Clamps: Clamps{
			Starts: mo.Some(time.Date(2025, 10, 7, 0, 0, 0, 0, sg).Unix()),
			Ends:   mo.Some(time.Date(2025, 10, 11, 0, 0, 0, 0, sg).Unix()),
		},
	}

	got := Describe(d, Config{ShowBounds: true})
	assert.Contains(t, got, "continuously")
	assert.Contains(t, got, "from 2025-10-07T00:00:00+08:00")
	assert.Contains(t, got, "until 2025-10-11T00:00:00+08:00")
	assert.Equal(t, "Active continuously from 2025-10-07T00:00:00+08:00 until 2025-10-11T00:00:00+08:00", got)
}

func TestDescribeSpanWithoutBounds(t *testing.T) {
	d := RuleDescriptor{Kind: KindSpan, Effect: EffectBlackout, TZ: "UTC"}
	assert.Equal(t, "Blackout continuously", Describe(d, DefaultConfig))
}

func TestDescribeBoundsCustomFormat(t *testing.T) {
	d := RuleDescriptor{
		Kind:   KindSpan,
		Effect: EffectActive,
		TZ:     "UTC",
		Unit:   UnitSeconds,
		Clamps: Clamps{Starts: mo.Some(time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC).Unix())},
	}
	got := Describe(d, Config{ShowBounds: true, BoundsFormat: "2006-01-02"})
	assert.Equal(t, "Active continuously from 2025-10-07", got)
}

func TestDescribeBoundsMillisecondUnit(t *testing.T) {
	at := time.Date(2025, 10, 7, 12, 30, 0, 0, time.UTC)
	d := RuleDescriptor{
		Kind:   KindSpan,
		Effect: EffectActive,
		TZ:     "UTC",
		Unit:   UnitMilliseconds,
		Clamps: Clamps{Starts: mo.Some(at.UnixMilli())},
	}
	got := Describe(d, Config{ShowBounds: true})
	// Sub-second precision is suppressed in the default layout.
	assert.Equal(t, "Active continuously from 2025-10-07T12:30:00Z", got)
}

func TestDescribeTimezoneSuffix(t *testing.T) {
	d := recurDescriptor(Daily)
	d.TZ = "Asia/Singapore"
	d.Duration = Duration{Hours: 1}

	got := Describe(d, Config{ShowTimezone: true})
	assert.Equal(t, "Active for 1 hour every day (timezone Asia/Singapore)", got)

	got = Describe(d, Config{
		ShowTimezone:  true,
		TimezoneLabel: func(tz string) string { return "SGT" },
	})
	assert.Equal(t, "Active for 1 hour every day (timezone SGT)", got)
}

func TestDescribeLowercaseDisabled(t *testing.T) {
	d := recurDescriptor(Yearly)
	d.Duration = Duration{Days: 1}
	d.Months = []int{7}
	d.MonthDays = []int{20}
	got := Describe(d, Config{Lowercase: mo.Some(false)})
	assert.Equal(t, "Active for 1 day every year on July 20", got)
}

func TestDescribeLocale(t *testing.T) {
	d := recurDescriptor(Weekly)
	d.Duration = Duration{Hours: 1}
	d.Weekdays = []Weekday{{Day: 2}}
	got := Describe(d, Config{Locale: "es"})
	assert.Equal(t, "Active for 1 hour every week on martes", got)
}

func TestDescribeLexiconOverride(t *testing.T) {
	d := recurDescriptor(Weekly)
	d.Interval = 2
	d.Duration = Duration{Hours: 1}
	got := Describe(d, Config{
		Lexicon: &Lexicon{Noun: map[Frequency]string{Weekly: "sennight"}},
	})
	assert.Equal(t, "Active for 1 hour every 2 sennights", got)
}

// staticTranslator replaces the whole composition strategy.
type staticTranslator struct{}

func (staticTranslator) Translate(d RuleDescriptor, cfg Config) string {
	return "rule in " + d.TZ
}

func TestDescribeCustomTranslator(t *testing.T) {
	d := recurDescriptor(Daily)
	got := Describe(d, Config{Translator: staticTranslator{}})
	assert.Equal(t, "rule in UTC", got)
}

func TestDescribeDoesNotMutateInput(t *testing.T) {
	d := recurDescriptor(Yearly)
	d.Months = []int{1, 2, 4}
	d.Weekdays = []Weekday{{Day: 2}, {Day: 3}}
	d.SetPos = []int{3}
	copyBefore := d

	_ = Describe(d, DefaultConfig)
	assert.Equal(t, copyBefore.Months, d.Months)
	assert.Equal(t, copyBefore.SetPos, d.SetPos)
	assert.Equal(t, copyBefore.Weekdays, d.Weekdays)
}

func TestDescribeHour12Config(t *testing.T) {
	d := recurDescriptor(Daily)
	d.Duration = Duration{Hours: 1}
	d.Hours = []int{17}
	got := Describe(d, Config{Time: TimeConfig{HourCycle: Hour12}})
	assert.Equal(t, "Active for 1 hour every day at 5:00 pm", got)
}
