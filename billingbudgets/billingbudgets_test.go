package billingbudgets

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MOZGIII/google-apis-go/auth"
	"github.com/MOZGIII/google-apis-go/client"
	"github.com/MOZGIII/google-apis-go/core"
	"github.com/MOZGIII/google-apis-go/internal/json"
)

func newTestService(t *testing.T, h http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := client.New(
		client.WithHTTPClient(srv.Client()),
		client.WithTokenProvider(auth.Static("test-token")),
	)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	svc := New(c)
	svc.BasePath = srv.URL
	return svc
}

func TestBudgetsCreateSendsBody(t *testing.T) {
	var (
		captured *http.Request
		body     []byte
	)
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "billingAccounts/0123AB-CDEF01-234567/budgets/b-1",
			"displayName": "Team budget",
			"amount": {"specifiedAmount": {"currencyCode": "USD", "units": "500"}},
			"etag": "yyy"
		}`))
	}))

	req := &CreateBudgetRequest{
		Budget: &Budget{
			DisplayName: "Team budget",
			Amount: &BudgetAmount{
				SpecifiedAmount: &core.Money{CurrencyCode: "USD", Units: 500},
			},
			ThresholdRules: []*ThresholdRule{{ThresholdPercent: 0.9, SpendBasis: "CURRENT_SPEND"}},
			BudgetFilter: &Filter{
				Projects:     []string{"projects/my-project"},
				CustomPeriod: &CustomPeriod{StartDate: &core.Date{Year: 2026, Month: 1, Day: 1}},
			},
		},
	}
	budget, err := svc.BillingAccounts.Budgets.
		Create("billingAccounts/0123AB-CDEF01-234567", req).
		Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	if captured == nil {
		t.Fatal("no request reached the server")
	}
	if got, want := captured.Method, http.MethodPost; got != want {
		t.Errorf("method = %q, want %q", got, want)
	}
	if got, want := captured.URL.Path, "/v1beta1/billingAccounts/0123AB-CDEF01-234567/budgets"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if got, want := captured.Header.Get("Content-Type"), "application/json"; got != want {
		t.Errorf("Content-Type = %q, want %q", got, want)
	}

	var sent CreateBudgetRequest
	if err := json.Unmarshal(body, &sent); err != nil {
		t.Fatalf("decoding request body: %v", err)
	}
	if sent.Budget == nil || sent.Budget.DisplayName != "Team budget" {
		t.Fatalf("sent budget = %+v, want display name", sent.Budget)
	}
	if got, want := sent.Budget.Amount.SpecifiedAmount.Units, int64(500); got != want {
		t.Errorf("sent units = %d, want %d", got, want)
	}
	// int64 crosses the wire as a JSON string.
	if raw := string(body); !strings.Contains(raw, `"units":"500"`) {
		t.Errorf("body = %s, want units encoded as a string", raw)
	}
	start := sent.Budget.BudgetFilter.CustomPeriod.StartDate
	if start == nil || *start != (core.Date{Year: 2026, Month: 1, Day: 1}) {
		t.Errorf("sent start date = %+v, want 2026-01-01", start)
	}

	if got, want := budget.Name, "billingAccounts/0123AB-CDEF01-234567/budgets/b-1"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
	if got, want := budget.Amount.SpecifiedAmount.Units, int64(500); got != want {
		t.Errorf("Units = %d, want %d", got, want)
	}
}

func TestBudgetsDeleteReturnsEmpty(t *testing.T) {
	var captured *http.Request
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.Write([]byte(`{}`))
	}))

	_, err := svc.BillingAccounts.Budgets.
		Delete("billingAccounts/0123AB-CDEF01-234567/budgets/b-1").
		Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got, want := captured.Method, http.MethodDelete; got != want {
		t.Errorf("method = %q, want %q", got, want)
	}
	if got, want := captured.URL.Path, "/v1beta1/billingAccounts/0123AB-CDEF01-234567/budgets/b-1"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestBudgetsListQueryAndPagination(t *testing.T) {
	fetches := 0
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		if got, want := r.URL.Query().Get("pageSize"), "1"; got != want {
			t.Errorf("pageSize = %q, want %q", got, want)
		}
		switch r.URL.Query().Get("pageToken") {
		case "":
			w.Write([]byte(`{"budgets": [{"name": "billingAccounts/a/budgets/b-1"}], "nextPageToken": "t2"}`))
		case "t2":
			w.Write([]byte(`{"budgets": [{"name": "billingAccounts/a/budgets/b-2"}]}`))
		default:
			t.Errorf("unexpected pageToken %q", r.URL.Query().Get("pageToken"))
			w.Write([]byte(`{}`))
		}
	}))

	fetch := func(ctx context.Context, pageToken string) ([]*Budget, string, error) {
		call := svc.BillingAccounts.Budgets.List("billingAccounts/a").PageSize(1)
		if pageToken != "" {
			call.PageToken(pageToken)
		}
		resp, err := call.Do(ctx)
		if err != nil {
			return nil, "", err
		}
		return resp.Budgets, resp.NextPageToken, nil
	}

	budgets, err := client.CollectAll(context.Background(), fetch)
	if err != nil {
		t.Fatalf("CollectAll: %v", err)
	}
	if fetches != 2 {
		t.Errorf("fetches = %d, want 2", fetches)
	}
	if len(budgets) != 2 || budgets[1].Name != "billingAccounts/a/budgets/b-2" {
		t.Errorf("budgets = %+v, want two pages of one budget each", budgets)
	}
}

func TestBudgetsPatchSendsUpdateMask(t *testing.T) {
	var body []byte
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, want := r.Method, http.MethodPatch; got != want {
			t.Errorf("method = %q, want %q", got, want)
		}
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"name": "billingAccounts/a/budgets/b-1", "displayName": "Renamed"}`))
	}))

	budget, err := svc.BillingAccounts.Budgets.
		Patch("billingAccounts/a/budgets/b-1", &UpdateBudgetRequest{
			Budget:     &Budget{DisplayName: "Renamed"},
			UpdateMask: "displayName",
		}).
		Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	var sent UpdateBudgetRequest
	if err := json.Unmarshal(body, &sent); err != nil {
		t.Fatalf("decoding request body: %v", err)
	}
	if got, want := sent.UpdateMask, "displayName"; got != want {
		t.Errorf("sent updateMask = %q, want %q", got, want)
	}
	if got, want := budget.DisplayName, "Renamed"; got != want {
		t.Errorf("DisplayName = %q, want %q", got, want)
	}
}

func TestBudgetsGetAPIError(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "The caller does not have permission", "status": "PERMISSION_DENIED"}}`))
	}))

	_, err := svc.BillingAccounts.Budgets.Get("billingAccounts/a/budgets/nope").Do(context.Background())
	var apiErr *core.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v (%T), want *core.APIError", err, err)
	}
	if apiErr.Code != 403 || apiErr.Status != "PERMISSION_DENIED" {
		t.Errorf("APIError = code %d status %q, want 403 PERMISSION_DENIED", apiErr.Code, apiErr.Status)
	}
}
