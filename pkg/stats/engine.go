package stats

import (
	"regexp"

	"github.com/jonreiter/govader"
	"mvdan.cc/xurls/v2"

	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/stopwords"
)

// Overall is the sender filter meaning "no filter": the whole group.
const Overall = "Overall"

// NotificationSender is the pseudo-sender that labels system notifications
// in the busiest-senders tables, where every record must be attributed to
// some row for the shares to sum to the message count.
const NotificationSender = "group_notification"

// Default classification thresholds on the VADER compound score.
const (
	DefaultPositiveThreshold = 0.05
	DefaultNegativeThreshold = -0.05
)

// Engine is the explicit context object behind every statistics query. It
// holds the process-lifetime resources (stopword set, sentiment lexicon,
// URL pattern), constructed once and read-only afterward. All query methods
// are pure reads over the corpus and safe to call concurrently.
type Engine struct {
	stop   *stopwords.Set
	vader  *govader.SentimentIntensityAnalyzer
	urls   *regexp.Regexp
	posThr float64
	negThr float64
}

// Option configures the Engine.
type Option func(*Engine)

// WithSentimentThresholds overrides the compound-score cutoffs for the
// Positive and Negative classes.
func WithSentimentThresholds(positive, negative float64) Option {
	return func(e *Engine) {
		e.posThr = positive
		e.negThr = negative
	}
}

// NewEngine creates a statistics engine. A nil stopword set means the
// bundled default list.
func NewEngine(stop *stopwords.Set, opts ...Option) *Engine {
	if stop == nil {
		stop = stopwords.Default()
	}
	e := &Engine{
		stop:   stop,
		vader:  govader.NewSentimentIntensityAnalyzer(),
		urls:   xurls.Relaxed(),
		posThr: DefaultPositiveThreshold,
		negThr: DefaultNegativeThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// selected reports whether the record passes the sender filter. Overall (or
// empty) selects everything; a concrete sender matches authored messages
// only, since notifications have no sender.
func selected(m *parser.Message, sender string) bool {
	if sender == "" || sender == Overall {
		return true
	}
	return m.Sender == sender
}
