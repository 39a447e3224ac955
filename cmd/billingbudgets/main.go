// Command billingbudgets is the CLI front-end of the Cloud Billing Budget
// API. Subcommands map resources and methods onto the billingbudgets
// package:
//
//	billingbudgets billing-accounts budgets-list billingAccounts/0123AB-CDEF01-234567
//	billingbudgets billing-accounts budgets-create billingAccounts/0123AB-CDEF01-234567 \
//	    -r budget.display-name="Team budget" \
//	    -r budget.amount.specified-amount.currency-code=USD \
//	    -r budget.amount.specified-amount.units=500
//
// Authentication comes from --access-token, $GOOGLE_ACCESS_TOKEN, or the
// config file; responses print as pretty JSON on stdout or into --out.
package main

import (
	"github.com/spf13/cobra"

	"github.com/MOZGIII/google-apis-go/billingbudgets"
	"github.com/MOZGIII/google-apis-go/client"
	"github.com/MOZGIII/google-apis-go/internal/cli"
	"github.com/MOZGIII/google-apis-go/internal/json"
)

// budgetFields are the request body fields shared by budgets-create and
// budgets-patch, keyed by CLI path. Int64 fields (units) are strings on the
// wire.
var budgetFields = cli.FieldTable{
	"budget.name":         {Type: cli.String},
	"budget.display-name": {Type: cli.String},
	"budget.etag":         {Type: cli.String},

	"budget.amount.specified-amount.currency-code": {Type: cli.String},
	"budget.amount.specified-amount.units":         {Type: cli.String},
	"budget.amount.specified-amount.nanos":         {Type: cli.Int},

	"budget.budget-filter.projects":               {Type: cli.String, Repeated: true},
	"budget.budget-filter.services":               {Type: cli.String, Repeated: true},
	"budget.budget-filter.subaccounts":            {Type: cli.String, Repeated: true},
	"budget.budget-filter.credit-types":           {Type: cli.String, Repeated: true},
	"budget.budget-filter.credit-types-treatment": {Type: cli.String},
	"budget.budget-filter.calendar-period":        {Type: cli.String},

	"budget.budget-filter.custom-period.start-date.year":  {Type: cli.Int},
	"budget.budget-filter.custom-period.start-date.month": {Type: cli.Int},
	"budget.budget-filter.custom-period.start-date.day":   {Type: cli.Int},
	"budget.budget-filter.custom-period.end-date.year":    {Type: cli.Int},
	"budget.budget-filter.custom-period.end-date.month":   {Type: cli.Int},
	"budget.budget-filter.custom-period.end-date.day":     {Type: cli.Int},

	"budget.all-updates-rule.pubsub-topic":   {Type: cli.String},
	"budget.all-updates-rule.schema-version": {Type: cli.String},

	"budget.all-updates-rule.monitoring-notification-channels": {Type: cli.String, Repeated: true},
	"budget.all-updates-rule.disable-default-iam-recipients":   {Type: cli.Bool},
}

func patchFields() cli.FieldTable {
	table := cli.FieldTable{"update-mask": {Type: cli.String}}
	for k, v := range budgetFields {
		table[k] = v
	}
	return table
}

func main() {
	eng := cli.New("billingbudgets", client.Version,
		"The Cloud Billing Budget API stores Cloud Billing budgets, which define a budget plan and the rules to execute as spend is tracked against that plan.")

	accounts := &cobra.Command{
		Use:   "billing-accounts",
		Short: "methods: budgets-create, budgets-delete, budgets-get, budgets-list and budgets-patch",
	}
	accounts.AddCommand(
		budgetsCreateCmd(eng),
		budgetsDeleteCmd(eng),
		budgetsGetCmd(eng),
		budgetsListCmd(eng),
		budgetsPatchCmd(eng),
	)
	eng.AddCommand(accounts)
	eng.Execute()
}

// service builds the API surface against the engine's client, honoring a
// --base-url override.
func service(eng *cli.Engine) *billingbudgets.Service {
	svc := billingbudgets.New(eng.Client())
	if u := eng.BaseURL(); u != "" {
		svc.BasePath = u
	}
	return svc
}

// finish applies the shared call decorations (-p parameters, --scope),
// executes the call, and renders the result.
func finish[T any](eng *cli.Engine, cmd *cobra.Command, call *client.Call[T]) error {
	params, err := eng.ExtraParams()
	if err != nil {
		return err
	}
	for _, kv := range params {
		call.Extra(kv[0], kv[1])
	}
	for _, scope := range eng.Scopes() {
		call.AddScope(scope)
	}
	out, err := call.Do(cmd.Context())
	if err != nil {
		return err
	}
	return eng.WriteOutput(out)
}

func budgetsCreateCmd(eng *cli.Engine) *cobra.Command {
	var kvs []string
	cmd := &cobra.Command{
		Use:   "budgets-create <parent>",
		Short: "Creates a new budget",
		Long: "Creates a new budget. See the Cloud Billing quotas for the limits on the " +
			"number of budgets you can create. parent is of the form billingAccounts/{billingAccountId}.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := cli.BuildBody(budgetFields, kvs)
			if err != nil {
				return err
			}
			var req billingbudgets.CreateBudgetRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return err
			}
			return finish(eng, cmd, service(eng).BillingAccounts.Budgets.Create(args[0], &req).Call)
		},
	}
	cmd.Flags().StringArrayVarP(&kvs, "field", "r", nil,
		"set a request body field as path=value, may be repeated")
	return cmd
}

func budgetsDeleteCmd(eng *cli.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "budgets-delete <name>",
		Short: "Deletes a budget; succeeds if already deleted",
		Long:  "Deletes a budget. name is of the form billingAccounts/{billingAccountId}/budgets/{budgetId}.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return finish(eng, cmd, service(eng).BillingAccounts.Budgets.Delete(args[0]).Call)
		},
	}
}

func budgetsGetCmd(eng *cli.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "budgets-get <name>",
		Short: "Returns a budget",
		Long:  "Returns a budget. name is of the form billingAccounts/{billingAccountId}/budgets/{budgetId}.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return finish(eng, cmd, service(eng).BillingAccounts.Budgets.Get(args[0]).Call)
		},
	}
}

func budgetsListCmd(eng *cli.Engine) *cobra.Command {
	var (
		pageSize    int64
		pageToken   string
		scopeFilter string
	)
	cmd := &cobra.Command{
		Use:   "budgets-list <parent>",
		Short: "Returns the budgets of a billing account",
		Long:  "Returns a list of budgets. parent is of the form billingAccounts/{billingAccountId}.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			call := service(eng).BillingAccounts.Budgets.List(args[0])
			if cmd.Flags().Changed("page-size") {
				call.PageSize(pageSize)
			}
			if pageToken != "" {
				call.PageToken(pageToken)
			}
			if scopeFilter != "" {
				call.Scope(scopeFilter)
			}
			return finish(eng, cmd, call.Call)
		},
	}
	cmd.Flags().Int64Var(&pageSize, "page-size", 0, "maximum number of budgets per page (max 100)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "resume listing from a previous response")
	cmd.Flags().StringVar(&scopeFilter, "scope-filter", "", "limit budgets to a scope, e.g. projects/my-project")
	return cmd
}

func budgetsPatchCmd(eng *cli.Engine) *cobra.Command {
	var kvs []string
	cmd := &cobra.Command{
		Use:   "budgets-patch <name>",
		Short: "Updates a budget and returns the updated budget",
		Long: "Updates a budget. name is of the form billingAccounts/{billingAccountId}/budgets/{budgetId}; " +
			"set -r update-mask=... to select which fields are overwritten.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := cli.BuildBody(patchFields(), kvs)
			if err != nil {
				return err
			}
			var req billingbudgets.UpdateBudgetRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return err
			}
			return finish(eng, cmd, service(eng).BillingAccounts.Budgets.Patch(args[0], &req).Call)
		},
	}
	cmd.Flags().StringArrayVarP(&kvs, "field", "r", nil,
		"set a request body field as path=value, may be repeated")
	return cmd
}
