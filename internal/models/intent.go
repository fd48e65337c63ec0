package models

// Intent is the classified purpose of a user query. It drives which
// template the mock provider renders and is derived per request from the
// latest user turn, never persisted.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentRecommendation Intent = "recommendation"
	IntentBudgeting      Intent = "budgeting"
	IntentSaving         Intent = "saving"
	IntentInvesting      Intent = "investing"
	IntentDebt           Intent = "debt"
	IntentGeneric        Intent = "generic"
)
