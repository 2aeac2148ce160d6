package router

import "strings"

// Route resolves a message to a bot action. Only exact command and
// button matches route; anything else belongs to the active dialogue
// (or to Classify when no dialogue is running).
func (r *KeywordRouter) Route(text string) (Action, bool) {
	action, ok := commandActions[strings.TrimSpace(text)]
	return action, ok
}

// Classify guesses the intent of unrecognized free text by scanning the
// ordered rule list for keyword substrings. Matching is case-insensitive
// and order-sensitive: the first rule that matches decides.
func (r *KeywordRouter) Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Intent
			}
		}
	}
	return IntentUnknown
}
