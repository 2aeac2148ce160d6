package router

// Router resolves incoming message text to actions and intents.
type Router interface {
	Route(text string) (Action, bool)
	Classify(text string) Intent
}

// KeywordRouter routes on exact command/button matches and classifies
// free text with an ordered keyword rule list.
type KeywordRouter struct {
	rules []IntentRule
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter. A nil rules slice selects
// DefaultIntentRules.
func New(rules []IntentRule) *KeywordRouter {
	if rules == nil {
		rules = DefaultIntentRules
	}
	return &KeywordRouter{rules: rules}
}
