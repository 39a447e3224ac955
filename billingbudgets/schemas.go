package billingbudgets

import "github.com/MOZGIII/google-apis-go/core"

// Budget is a plan that describes what the user expects to spend on Cloud,
// plus the rules to execute as spend is tracked against that plan. The
// budget time period is configurable, defaulting to the current calendar
// month.
type Budget struct {
	// Name is the resource name, of the form
	// "billingAccounts/{billingAccountId}/budgets/{budgetId}". Output only.
	Name string `json:"name,omitempty"`

	// DisplayName is the user-visible budget name, at most 60 characters.
	DisplayName string `json:"displayName,omitempty"`

	// BudgetFilter selects which usage the budget tracks. Optional; an
	// absent filter tracks all usage of the billing account.
	BudgetFilter *Filter `json:"budgetFilter,omitempty"`

	// Amount is the budgeted amount.
	Amount *BudgetAmount `json:"amount,omitempty"`

	// ThresholdRules trigger alerts when spend passes a percentage of the
	// budget.
	ThresholdRules []*ThresholdRule `json:"thresholdRules,omitempty"`

	// AllUpdatesRule configures where notifications are sent as spend
	// changes.
	AllUpdatesRule *AllUpdatesRule `json:"allUpdatesRule,omitempty"`

	// Etag guards against concurrent updates: a patch carrying a stale etag
	// fails. Optional.
	Etag string `json:"etag,omitempty"`
}

// BudgetAmount is the budgeted amount, either an explicit figure or the
// previous period's spend.
type BudgetAmount struct {
	// SpecifiedAmount is an explicit budget figure. Currency must match the
	// billing account; subunits are ignored during threshold evaluation.
	SpecifiedAmount *core.Money `json:"specifiedAmount,omitempty"`

	// LastPeriodAmount tracks 100% of last period's spend instead of a
	// fixed figure.
	LastPeriodAmount *LastPeriodAmount `json:"lastPeriodAmount,omitempty"`
}

// LastPeriodAmount marks a budget as tracking the preceding period's spend.
// It carries no fields; the amount is computed dynamically. Only budgets
// with a calendar-period filter may use it.
type LastPeriodAmount struct{}

// ThresholdRule triggers a spend alert when the given fraction of the
// budget is consumed.
type ThresholdRule struct {
	// ThresholdPercent is the fraction of the budget at which the rule
	// fires, e.g. 0.9 for 90%. Must not be negative.
	ThresholdPercent float64 `json:"thresholdPercent,omitempty"`

	// SpendBasis selects what the threshold is measured against:
	// "CURRENT_SPEND" (default) or "FORECASTED_SPEND".
	SpendBasis string `json:"spendBasis,omitempty"`
}

// Filter narrows which usage a budget tracks.
type Filter struct {
	// Projects limits tracking to usage of these projects, each of the form
	// "projects/{project}". An empty list tracks all projects.
	Projects []string `json:"projects,omitempty"`

	// CreditTypes lists which credits are subtracted from gross cost when
	// CreditTypesTreatment is "INCLUDE_SPECIFIED_CREDITS".
	CreditTypes []string `json:"creditTypes,omitempty"`

	// CreditTypesTreatment selects how credits apply. Defaults to
	// "INCLUDE_ALL_CREDITS".
	CreditTypesTreatment string `json:"creditTypesTreatment,omitempty"`

	// Services limits tracking to usage of these services, each of the form
	// "services/{service}". An empty list tracks all services.
	Services []string `json:"services,omitempty"`

	// Subaccounts limits tracking to usage of these subaccounts, each of
	// the form "billingAccounts/{billingAccountId}". Only applies when the
	// parent account is a reseller account.
	Subaccounts []string `json:"subaccounts,omitempty"`

	// Labels limits tracking to usage carrying one of these labels.
	// Currently a single entry with a single value is permitted.
	Labels map[string][]any `json:"labels,omitempty"`

	// CalendarPeriod resets the budget on a recurring boundary: "MONTH",
	// "QUARTER" or "YEAR". Exactly one of CalendarPeriod and CustomPeriod
	// may be set.
	CalendarPeriod string `json:"calendarPeriod,omitempty"`

	// CustomPeriod tracks usage between two fixed dates instead of a
	// recurring calendar period.
	CustomPeriod *CustomPeriod `json:"customPeriod,omitempty"`
}

// CustomPeriod is a fixed budget time window.
type CustomPeriod struct {
	// StartDate is the first tracked day. Required.
	StartDate *core.Date `json:"startDate,omitempty"`

	// EndDate is the last tracked day. Optional; an absent end date makes
	// the window open-ended.
	EndDate *core.Date `json:"endDate,omitempty"`
}

// AllUpdatesRule configures budget notifications.
type AllUpdatesRule struct {
	// PubsubTopic receives budget notification messages, of the form
	// "projects/{project_id}/topics/{topic_id}". The caller needs
	// pubsub.topics.setIamPolicy on the topic.
	PubsubTopic string `json:"pubsubTopic,omitempty"`

	// SchemaVersion of the notification payload. Only "1.0" is defined.
	SchemaVersion string `json:"schemaVersion,omitempty"`

	// MonitoringNotificationChannels receive threshold alerts in addition
	// to the default billing-admin emails, each of the form
	// "projects/{project_id}/notificationChannels/{channel_id}". At most 5.
	MonitoringNotificationChannels []string `json:"monitoringNotificationChannels,omitempty"`

	// DisableDefaultIamRecipients stops threshold emails to the billing
	// account's admins and users.
	DisableDefaultIamRecipients bool `json:"disableDefaultIamRecipients,omitempty"`
}

// CreateBudgetRequest is the body of Budgets.Create.
type CreateBudgetRequest struct {
	// Budget to create. Required.
	Budget *Budget `json:"budget,omitempty"`
}

// UpdateBudgetRequest is the body of Budgets.Patch.
type UpdateBudgetRequest struct {
	// Budget carries the new values. The budget's Name identifies the
	// budget being updated. Required.
	Budget *Budget `json:"budget,omitempty"`

	// UpdateMask selects which budget fields the patch overwrites, as a
	// comma-separated field mask. When absent, every field except the
	// budget filter is overwritten.
	UpdateMask string `json:"updateMask,omitempty"`
}

// ListBudgetsResponse is one page of Budgets.List.
type ListBudgetsResponse struct {
	Budgets []*Budget `json:"budgets,omitempty"`

	// NextPageToken resumes listing where this page ended. Empty on the
	// last page.
	NextPageToken string `json:"nextPageToken,omitempty"`
}
