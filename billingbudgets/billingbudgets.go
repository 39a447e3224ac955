// Package billingbudgets provides access to the Cloud Billing Budget API,
// which stores budget plans and the rules to execute as spend is tracked
// against them.
//
// Usage:
//
//	c, err := client.New(client.WithTokenProvider(provider))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := billingbudgets.New(c)
//
//	budget, err := svc.BillingAccounts.Budgets.
//	    Get("billingAccounts/0123AB-CDEF01-234567/budgets/my-budget").
//	    Do(ctx)
//
// Budgets live under billing accounts; every method takes resource names of
// the form "billingAccounts/{billingAccountId}" or
// "billingAccounts/{billingAccountId}/budgets/{budgetId}".
package billingbudgets

import (
	"net/http"
	"strconv"

	"github.com/MOZGIII/google-apis-go/client"
	"github.com/MOZGIII/google-apis-go/core"
)

// BasePath is the production endpoint of the Cloud Billing Budget API.
const BasePath = "https://billingbudgets.googleapis.com/"

// OAuth scopes used by this API.
const (
	// ScopeCloudBilling grants access to view and manage Google Cloud
	// billing accounts. It is the narrowest scope this API accepts and the
	// one every method declares by default.
	ScopeCloudBilling = "https://www.googleapis.com/auth/cloud-billing"

	// ScopeCloudPlatform grants access to see, edit, configure and delete
	// Google Cloud data across services.
	ScopeCloudPlatform = "https://www.googleapis.com/auth/cloud-platform"
)

// Service is the Cloud Billing Budget API surface.
type Service struct {
	// BasePath is the endpoint calls are issued against. Override it to
	// point the service at a test server.
	BasePath string

	BillingAccounts *BillingAccountsService

	client *client.Client
}

// New builds a Service that issues calls through c.
func New(c *client.Client) *Service {
	s := &Service{BasePath: BasePath, client: c}
	s.BillingAccounts = &BillingAccountsService{
		Budgets: &BillingAccountsBudgetsService{s: s},
	}
	return s
}

// BillingAccountsService groups the per-billing-account resources.
type BillingAccountsService struct {
	Budgets *BillingAccountsBudgetsService
}

// BillingAccountsBudgetsService manages the budgets of a billing account.
type BillingAccountsBudgetsService struct {
	s *Service
}

// BillingAccountsBudgetsCreateCall creates a budget.
type BillingAccountsBudgetsCreateCall struct {
	*client.Call[*Budget]
}

// Create creates a new budget under a billing account. See the Cloud
// Billing quotas for the limit on the number of budgets per account.
//
// parent is the billing account to create the budget in, of the form
// "billingAccounts/{billingAccountId}".
func (r *BillingAccountsBudgetsService) Create(parent string, req *CreateBudgetRequest) *BillingAccountsBudgetsCreateCall {
	c := client.NewCall[*Budget](r.s.client, r.s.BasePath, client.Operation{
		ID:     "billingbudgets.billingAccounts.budgets.create",
		Method: http.MethodPost,
		Path:   "v1beta1/{+parent}/budgets",
		Scopes: []string{ScopeCloudBilling},
	})
	c.Param("parent", parent)
	c.Body(req)
	return &BillingAccountsBudgetsCreateCall{c}
}

// BillingAccountsBudgetsDeleteCall deletes a budget.
type BillingAccountsBudgetsDeleteCall struct {
	*client.Call[*core.Empty]
}

// Delete deletes a budget. It succeeds even if the budget was already
// deleted.
//
// name is the budget to delete, of the form
// "billingAccounts/{billingAccountId}/budgets/{budgetId}".
func (r *BillingAccountsBudgetsService) Delete(name string) *BillingAccountsBudgetsDeleteCall {
	c := client.NewCall[*core.Empty](r.s.client, r.s.BasePath, client.Operation{
		ID:     "billingbudgets.billingAccounts.budgets.delete",
		Method: http.MethodDelete,
		Path:   "v1beta1/{+name}",
		Scopes: []string{ScopeCloudBilling},
	})
	c.Param("name", name)
	return &BillingAccountsBudgetsDeleteCall{c}
}

// BillingAccountsBudgetsGetCall fetches one budget.
type BillingAccountsBudgetsGetCall struct {
	*client.Call[*Budget]
}

// Get returns a budget. Fields only exposed on the Cloud Console are not
// part of the API representation and will be absent from the result.
//
// name is the budget to fetch, of the form
// "billingAccounts/{billingAccountId}/budgets/{budgetId}".
func (r *BillingAccountsBudgetsService) Get(name string) *BillingAccountsBudgetsGetCall {
	c := client.NewCall[*Budget](r.s.client, r.s.BasePath, client.Operation{
		ID:     "billingbudgets.billingAccounts.budgets.get",
		Method: http.MethodGet,
		Path:   "v1beta1/{+name}",
		Scopes: []string{ScopeCloudBilling},
	})
	c.Param("name", name)
	return &BillingAccountsBudgetsGetCall{c}
}

// BillingAccountsBudgetsListCall lists the budgets of a billing account.
type BillingAccountsBudgetsListCall struct {
	*client.Call[*ListBudgetsResponse]
}

// List returns the budgets of a billing account.
//
// parent is the billing account, of the form
// "billingAccounts/{billingAccountId}".
func (r *BillingAccountsBudgetsService) List(parent string) *BillingAccountsBudgetsListCall {
	c := client.NewCall[*ListBudgetsResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "billingbudgets.billingAccounts.budgets.list",
		Method: http.MethodGet,
		Path:   "v1beta1/{+parent}/budgets",
		Scopes: []string{ScopeCloudBilling},
	})
	c.Param("parent", parent)
	return &BillingAccountsBudgetsListCall{c}
}

// PageSize sets the maximum number of budgets to return per page. The
// default and maximum is 100.
func (c *BillingAccountsBudgetsListCall) PageSize(pageSize int64) *BillingAccountsBudgetsListCall {
	c.Param("pageSize", strconv.FormatInt(pageSize, 10))
	return c
}

// PageToken resumes listing from a previous response.
func (c *BillingAccountsBudgetsListCall) PageToken(pageToken string) *BillingAccountsBudgetsListCall {
	c.Param("pageToken", pageToken)
	return c
}

// Scope limits the budgets returned to those matching the given scope
// filter, for example "projects/my-project".
func (c *BillingAccountsBudgetsListCall) Scope(scope string) *BillingAccountsBudgetsListCall {
	c.Param("scope", scope)
	return c
}

// BillingAccountsBudgetsPatchCall updates a budget.
type BillingAccountsBudgetsPatchCall struct {
	*client.Call[*Budget]
}

// Patch updates a budget and returns the updated budget. Fields not exposed
// in the API are left unchanged.
//
// name is the budget's resource name, of the form
// "billingAccounts/{billingAccountId}/budgets/{budgetId}". The request's
// UpdateMask selects which fields of the budget are overwritten.
func (r *BillingAccountsBudgetsService) Patch(name string, req *UpdateBudgetRequest) *BillingAccountsBudgetsPatchCall {
	c := client.NewCall[*Budget](r.s.client, r.s.BasePath, client.Operation{
		ID:     "billingbudgets.billingAccounts.budgets.patch",
		Method: http.MethodPatch,
		Path:   "v1beta1/{+name}",
		Scopes: []string{ScopeCloudBilling},
	})
	c.Param("name", name)
	c.Body(req)
	return &BillingAccountsBudgetsPatchCall{c}
}
