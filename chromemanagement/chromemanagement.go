// Package chromemanagement provides access to the Chrome Management API,
// which reports on apps, browsers, devices and telemetry of a managed
// Chrome fleet.
//
// Usage:
//
//	c, err := client.New(client.WithTokenProvider(provider))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := chromemanagement.New(c)
//
//	app, err := svc.Customers.Apps.Android.
//	    Get("customers/my_customer/apps/android/com.google.android.apps.docs").
//	    Do(ctx)
//
// All methods are read-only; the token provider must cover the scope each
// method declares.
package chromemanagement

import (
	"net/http"
	"strconv"

	"github.com/MOZGIII/google-apis-go/client"
)

// BasePath is the production endpoint of the Chrome Management API.
const BasePath = "https://chromemanagement.googleapis.com/"

// OAuth scopes used by this API.
const (
	// ScopeAppDetailsReadonly grants read access to details about apps
	// installed on Chrome browsers and devices managed by the organization.
	ScopeAppDetailsReadonly = "https://www.googleapis.com/auth/chrome.management.appdetails.readonly"

	// ScopeReportsReadonly grants read access to reports about devices and
	// Chrome browsers managed within the organization.
	ScopeReportsReadonly = "https://www.googleapis.com/auth/chrome.management.reports.readonly"

	// ScopeTelemetryReadonly grants read access to device and telemetry
	// information collected from ChromeOS devices.
	ScopeTelemetryReadonly = "https://www.googleapis.com/auth/chrome.management.telemetry.readonly"
)

// Service is the Chrome Management API surface. Every method hangs off the
// Customers resource tree.
type Service struct {
	// BasePath is the endpoint calls are issued against. Override it to
	// point the service at a test server.
	BasePath string

	Customers *CustomersService

	client *client.Client
}

// New builds a Service that issues calls through c.
func New(c *client.Client) *Service {
	s := &Service{BasePath: BasePath, client: c}
	s.Customers = &CustomersService{
		Apps: &CustomersAppsService{
			s:       s,
			Android: &CustomersAppsAndroidService{s: s},
			Chrome:  &CustomersAppsChromeService{s: s},
			Web:     &CustomersAppsWebService{s: s},
		},
		Reports: &CustomersReportsService{s: s},
		Telemetry: &CustomersTelemetryService{
			Devices: &CustomersTelemetryDevicesService{s: s},
			Events:  &CustomersTelemetryEventsService{s: s},
		},
	}
	return s
}

// CustomersService groups the per-customer resources.
type CustomersService struct {
	Apps      *CustomersAppsService
	Reports   *CustomersReportsService
	Telemetry *CustomersTelemetryService
}

// CustomersAppsService surfaces app details and installation requests.
type CustomersAppsService struct {
	Android *CustomersAppsAndroidService
	Chrome  *CustomersAppsChromeService
	Web     *CustomersAppsWebService

	s *Service
}

// CustomersAppsAndroidService fetches details of Android apps.
type CustomersAppsAndroidService struct {
	s *Service
}

// CustomersAppsChromeService fetches details of Chrome apps and extensions.
type CustomersAppsChromeService struct {
	s *Service
}

// CustomersAppsWebService fetches details of web apps.
type CustomersAppsWebService struct {
	s *Service
}

// CustomersReportsService generates fleet-wide reports.
type CustomersReportsService struct {
	s *Service
}

// CustomersTelemetryService groups the telemetry resources.
type CustomersTelemetryService struct {
	Devices *CustomersTelemetryDevicesService
	Events  *CustomersTelemetryEventsService
}

// CustomersTelemetryDevicesService reads telemetry collected from managed
// devices.
type CustomersTelemetryDevicesService struct {
	s *Service
}

// CustomersTelemetryEventsService reads telemetry events reported by managed
// devices.
type CustomersTelemetryEventsService struct {
	s *Service
}

// CustomersAppsAndroidGetCall fetches one Android app's details.
type CustomersAppsAndroidGetCall struct {
	*client.Call[*AppDetails]
}

// Get fetches a specific app for a customer by its resource name.
//
// name identifies the app, for example
// "customers/my_customer/apps/android/com.google.android.apps.docs" for the
// Google Drive Android app's latest version.
func (r *CustomersAppsAndroidService) Get(name string) *CustomersAppsAndroidGetCall {
	c := client.NewCall[*AppDetails](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.apps.android.get",
		Method: http.MethodGet,
		Path:   "v1/{+name}",
		Scopes: []string{ScopeAppDetailsReadonly},
	})
	c.Param("name", name)
	return &CustomersAppsAndroidGetCall{c}
}

// CustomersAppsChromeGetCall fetches one Chrome app's details.
type CustomersAppsChromeGetCall struct {
	*client.Call[*AppDetails]
}

// Get fetches a specific app for a customer by its resource name.
//
// name identifies the app, for example
// "customers/my_customer/apps/chrome/gmbmikajjgmnabiglmofipeabaddhgne@2.1.2"
// for version 2.1.2 of the Save to Google Drive extension.
func (r *CustomersAppsChromeService) Get(name string) *CustomersAppsChromeGetCall {
	c := client.NewCall[*AppDetails](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.apps.chrome.get",
		Method: http.MethodGet,
		Path:   "v1/{+name}",
		Scopes: []string{ScopeAppDetailsReadonly},
	})
	c.Param("name", name)
	return &CustomersAppsChromeGetCall{c}
}

// CustomersAppsWebGetCall fetches one web app's details.
type CustomersAppsWebGetCall struct {
	*client.Call[*AppDetails]
}

// Get fetches a specific app for a customer by its resource name, in the
// format "customers/{customer}/apps/web/{app_id}".
func (r *CustomersAppsWebService) Get(name string) *CustomersAppsWebGetCall {
	c := client.NewCall[*AppDetails](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.apps.web.get",
		Method: http.MethodGet,
		Path:   "v1/{+name}",
		Scopes: []string{ScopeAppDetailsReadonly},
	})
	c.Param("name", name)
	return &CustomersAppsWebGetCall{c}
}

// CustomersAppsCountChromeAppRequestsCall summarizes pending app
// installation requests.
type CustomersAppsCountChromeAppRequestsCall struct {
	*client.Call[*CountChromeAppRequestsResponse]
}

// CountChromeAppRequests generates a summary of app installation requests.
//
// customer is the customer id or "my_customer", prefixed with "customers/".
func (r *CustomersAppsService) CountChromeAppRequests(customer string) *CustomersAppsCountChromeAppRequestsCall {
	c := client.NewCall[*CountChromeAppRequestsResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.apps.countChromeAppRequests",
		Method: http.MethodGet,
		Path:   "v1/{+customer}/apps:countChromeAppRequests",
		Scopes: []string{ScopeAppDetailsReadonly},
	})
	c.Param("customer", customer)
	return &CustomersAppsCountChromeAppRequestsCall{c}
}

// OrderBy sets the field used to order results. Supported fields:
// request_count, latest_request_time.
func (c *CustomersAppsCountChromeAppRequestsCall) OrderBy(orderBy string) *CustomersAppsCountChromeAppRequestsCall {
	c.Param("orderBy", orderBy)
	return c
}

// OrgUnitID restricts results to one organizational unit.
func (c *CustomersAppsCountChromeAppRequestsCall) OrgUnitID(orgUnitID string) *CustomersAppsCountChromeAppRequestsCall {
	c.Param("orgUnitId", orgUnitID)
	return c
}

// PageSize sets the maximum number of results to return. Maximum and default
// are 50; anything above is coerced to 50.
func (c *CustomersAppsCountChromeAppRequestsCall) PageSize(pageSize int64) *CustomersAppsCountChromeAppRequestsCall {
	c.Param("pageSize", strconv.FormatInt(pageSize, 10))
	return c
}

// PageToken resumes listing from a previous response.
func (c *CustomersAppsCountChromeAppRequestsCall) PageToken(pageToken string) *CustomersAppsCountChromeAppRequestsCall {
	c.Param("pageToken", pageToken)
	return c
}

// CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall counts
// devices per model and auto update expiration month.
type CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall struct {
	*client.Call[*CountChromeDevicesReachingAutoExpirationDateResponse]
}

// CountChromeDevicesReachingAutoExpirationDate generates a report of the
// number of devices expiring in each month of the selected time frame,
// grouped by auto update expiration date and model.
//
// customer is the customer ID or "my_customer" prefixed with "customers/".
func (r *CustomersReportsService) CountChromeDevicesReachingAutoExpirationDate(customer string) *CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall {
	c := client.NewCall[*CountChromeDevicesReachingAutoExpirationDateResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.reports.countChromeDevicesReachingAutoExpirationDate",
		Method: http.MethodGet,
		Path:   "v1/{+customer}/reports:countChromeDevicesReachingAutoExpirationDate",
		Scopes: []string{ScopeReportsReadonly},
	})
	c.Param("customer", customer)
	return &CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall{c}
}

// MinAueDate sets the minimum expiration date in yyyy-mm-dd format, UTC.
// When set, the report covers all already expired devices and devices with
// an expiration date equal to or later than the minimum.
func (c *CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall) MinAueDate(minAueDate string) *CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall {
	c.Param("minAueDate", minAueDate)
	return c
}

// MaxAueDate sets the maximum expiration date in yyyy-mm-dd format, UTC.
// When set, the report covers all already expired devices and devices with
// an expiration date equal to or earlier than the maximum.
func (c *CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall) MaxAueDate(maxAueDate string) *CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall {
	c.Param("maxAueDate", maxAueDate)
	return c
}

// OrgUnitID restricts the report to one organizational unit. If omitted the
// report covers all organizational units.
func (c *CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall) OrgUnitID(orgUnitID string) *CustomersReportsCountChromeDevicesReachingAutoExpirationDateCall {
	c.Param("orgUnitId", orgUnitID)
	return c
}

// CustomersReportsCountChromeDevicesThatNeedAttentionCall counts ChromeOS
// devices that need administrator attention.
type CustomersReportsCountChromeDevicesThatNeedAttentionCall struct {
	*client.Call[*CountChromeDevicesThatNeedAttentionResponse]
}

// CountChromeDevicesThatNeedAttention counts ChromeOS devices that have not
// synced policies or lacked user activity in the past 28 days, are out of
// date, or are not compliant.
//
// customer is the customer ID or "my_customer" prefixed with "customers/".
func (r *CustomersReportsService) CountChromeDevicesThatNeedAttention(customer string) *CustomersReportsCountChromeDevicesThatNeedAttentionCall {
	c := client.NewCall[*CountChromeDevicesThatNeedAttentionResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.reports.countChromeDevicesThatNeedAttention",
		Method: http.MethodGet,
		Path:   "v1/{+customer}/reports:countChromeDevicesThatNeedAttention",
		Scopes: []string{ScopeReportsReadonly},
	})
	c.Param("customer", customer)
	return &CustomersReportsCountChromeDevicesThatNeedAttentionCall{c}
}

// ReadMask selects which count fields to populate, as a comma-separated
// field mask. Required.
func (c *CustomersReportsCountChromeDevicesThatNeedAttentionCall) ReadMask(readMask string) *CustomersReportsCountChromeDevicesThatNeedAttentionCall {
	c.Param("readMask", readMask)
	return c
}

// OrgUnitID restricts the report to one organizational unit. If omitted all
// data is returned.
func (c *CustomersReportsCountChromeDevicesThatNeedAttentionCall) OrgUnitID(orgUnitID string) *CustomersReportsCountChromeDevicesThatNeedAttentionCall {
	c.Param("orgUnitId", orgUnitID)
	return c
}

// CustomersReportsCountChromeHardwareFleetDevicesCall counts devices per
// hardware specification.
type CustomersReportsCountChromeHardwareFleetDevicesCall struct {
	*client.Call[*CountChromeHardwareFleetDevicesResponse]
}

// CountChromeHardwareFleetDevices counts devices with a specific hardware
// specification from the requested hardware type, for example model name or
// processor type.
//
// customer is the customer ID or "my_customer" prefixed with "customers/".
func (r *CustomersReportsService) CountChromeHardwareFleetDevices(customer string) *CustomersReportsCountChromeHardwareFleetDevicesCall {
	c := client.NewCall[*CountChromeHardwareFleetDevicesResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.reports.countChromeHardwareFleetDevices",
		Method: http.MethodGet,
		Path:   "v1/{+customer}/reports:countChromeHardwareFleetDevices",
		Scopes: []string{ScopeReportsReadonly},
	})
	c.Param("customer", customer)
	return &CustomersReportsCountChromeHardwareFleetDevicesCall{c}
}

// ReadMask selects which report fields to populate, as a comma-separated
// field mask. Required.
func (c *CustomersReportsCountChromeHardwareFleetDevicesCall) ReadMask(readMask string) *CustomersReportsCountChromeHardwareFleetDevicesCall {
	c.Param("readMask", readMask)
	return c
}

// OrgUnitID restricts the report to one organizational unit. If omitted all
// data is returned.
func (c *CustomersReportsCountChromeHardwareFleetDevicesCall) OrgUnitID(orgUnitID string) *CustomersReportsCountChromeHardwareFleetDevicesCall {
	c.Param("orgUnitId", orgUnitID)
	return c
}

// CustomersReportsCountChromeVersionsCall reports installed Chrome versions.
type CustomersReportsCountChromeVersionsCall struct {
	*client.Call[*CountChromeVersionsResponse]
}

// CountChromeVersions generates a report of installed Chrome versions.
//
// customer is the customer id or "my_customer", prefixed with "customers/".
func (r *CustomersReportsService) CountChromeVersions(customer string) *CustomersReportsCountChromeVersionsCall {
	c := client.NewCall[*CountChromeVersionsResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.reports.countChromeVersions",
		Method: http.MethodGet,
		Path:   "v1/{+customer}/reports:countChromeVersions",
		Scopes: []string{ScopeReportsReadonly},
	})
	c.Param("customer", customer)
	return &CustomersReportsCountChromeVersionsCall{c}
}

// Filter narrows results with AND-separated fields in EBNF syntax. OR is not
// supported. Supported filter fields: last_active_date.
func (c *CustomersReportsCountChromeVersionsCall) Filter(filter string) *CustomersReportsCountChromeVersionsCall {
	c.Param("filter", filter)
	return c
}

// OrgUnitID restricts results to one organizational unit.
func (c *CustomersReportsCountChromeVersionsCall) OrgUnitID(orgUnitID string) *CustomersReportsCountChromeVersionsCall {
	c.Param("orgUnitId", orgUnitID)
	return c
}

// PageSize sets the maximum number of results to return. Maximum and default
// are 100.
func (c *CustomersReportsCountChromeVersionsCall) PageSize(pageSize int64) *CustomersReportsCountChromeVersionsCall {
	c.Param("pageSize", strconv.FormatInt(pageSize, 10))
	return c
}

// PageToken resumes listing from a previous response.
func (c *CustomersReportsCountChromeVersionsCall) PageToken(pageToken string) *CustomersReportsCountChromeVersionsCall {
	c.Param("pageToken", pageToken)
	return c
}

// CustomersReportsCountInstalledAppsCall reports app installations.
type CustomersReportsCountInstalledAppsCall struct {
	*client.Call[*CountInstalledAppsResponse]
}

// CountInstalledApps generates a report of app installations.
//
// customer is the customer id or "my_customer", prefixed with "customers/".
func (r *CustomersReportsService) CountInstalledApps(customer string) *CustomersReportsCountInstalledAppsCall {
	c := client.NewCall[*CountInstalledAppsResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.reports.countInstalledApps",
		Method: http.MethodGet,
		Path:   "v1/{+customer}/reports:countInstalledApps",
		Scopes: []string{ScopeReportsReadonly},
	})
	c.Param("customer", customer)
	return &CustomersReportsCountInstalledAppsCall{c}
}

// Filter narrows results with AND-separated fields in EBNF syntax. OR is not
// supported. Supported filter fields: app_name, app_type, install_type,
// number_of_permissions, total_install_count, latest_profile_active_date,
// permission_name.
func (c *CustomersReportsCountInstalledAppsCall) Filter(filter string) *CustomersReportsCountInstalledAppsCall {
	c.Param("filter", filter)
	return c
}

// OrderBy sets the field used to order results. Supported fields: app_name,
// app_type, install_type, number_of_permissions, total_install_count.
func (c *CustomersReportsCountInstalledAppsCall) OrderBy(orderBy string) *CustomersReportsCountInstalledAppsCall {
	c.Param("orderBy", orderBy)
	return c
}

// OrgUnitID restricts results to one organizational unit.
func (c *CustomersReportsCountInstalledAppsCall) OrgUnitID(orgUnitID string) *CustomersReportsCountInstalledAppsCall {
	c.Param("orgUnitId", orgUnitID)
	return c
}

// PageSize sets the maximum number of results to return. Maximum and default
// are 100.
func (c *CustomersReportsCountInstalledAppsCall) PageSize(pageSize int64) *CustomersReportsCountInstalledAppsCall {
	c.Param("pageSize", strconv.FormatInt(pageSize, 10))
	return c
}

// PageToken resumes listing from a previous response.
func (c *CustomersReportsCountInstalledAppsCall) PageToken(pageToken string) *CustomersReportsCountInstalledAppsCall {
	c.Param("pageToken", pageToken)
	return c
}

// CustomersReportsFindInstalledAppDevicesCall lists devices that have a
// given app installed.
type CustomersReportsFindInstalledAppDevicesCall struct {
	*client.Call[*FindInstalledAppDevicesResponse]
}

// FindInstalledAppDevices generates a report of managed Chrome browser
// devices that have a specified app installed.
//
// customer is the customer id or "my_customer", prefixed with "customers/".
func (r *CustomersReportsService) FindInstalledAppDevices(customer string) *CustomersReportsFindInstalledAppDevicesCall {
	c := client.NewCall[*FindInstalledAppDevicesResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.reports.findInstalledAppDevices",
		Method: http.MethodGet,
		Path:   "v1/{+customer}/reports:findInstalledAppDevices",
		Scopes: []string{ScopeReportsReadonly},
	})
	c.Param("customer", customer)
	return &CustomersReportsFindInstalledAppDevicesCall{c}
}

// AppID selects the app, by 32-character id for Chrome apps and extensions
// or package name for Android apps.
func (c *CustomersReportsFindInstalledAppDevicesCall) AppID(appID string) *CustomersReportsFindInstalledAppDevicesCall {
	c.Param("appId", appID)
	return c
}

// AppType selects the type of the app.
func (c *CustomersReportsFindInstalledAppDevicesCall) AppType(appType string) *CustomersReportsFindInstalledAppDevicesCall {
	c.Param("appType", appType)
	return c
}

// Filter narrows results with AND-separated fields in EBNF syntax. OR is not
// supported. Supported filter fields: last_active_date.
func (c *CustomersReportsFindInstalledAppDevicesCall) Filter(filter string) *CustomersReportsFindInstalledAppDevicesCall {
	c.Param("filter", filter)
	return c
}

// OrderBy sets the field used to order results. Supported fields: machine,
// device_id.
func (c *CustomersReportsFindInstalledAppDevicesCall) OrderBy(orderBy string) *CustomersReportsFindInstalledAppDevicesCall {
	c.Param("orderBy", orderBy)
	return c
}

// OrgUnitID restricts results to one organizational unit.
func (c *CustomersReportsFindInstalledAppDevicesCall) OrgUnitID(orgUnitID string) *CustomersReportsFindInstalledAppDevicesCall {
	c.Param("orgUnitId", orgUnitID)
	return c
}

// PageSize sets the maximum number of results to return. Maximum and default
// are 100.
func (c *CustomersReportsFindInstalledAppDevicesCall) PageSize(pageSize int64) *CustomersReportsFindInstalledAppDevicesCall {
	c.Param("pageSize", strconv.FormatInt(pageSize, 10))
	return c
}

// PageToken resumes listing from a previous response.
func (c *CustomersReportsFindInstalledAppDevicesCall) PageToken(pageToken string) *CustomersReportsFindInstalledAppDevicesCall {
	c.Param("pageToken", pageToken)
	return c
}

// CustomersTelemetryDevicesGetCall fetches telemetry for one device.
type CustomersTelemetryDevicesGetCall struct {
	*client.Call[*TelemetryDevice]
}

// Get fetches the telemetry device identified by name, in the format
// "customers/{customer}/telemetry/devices/{device}".
func (r *CustomersTelemetryDevicesService) Get(name string) *CustomersTelemetryDevicesGetCall {
	c := client.NewCall[*TelemetryDevice](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.telemetry.devices.get",
		Method: http.MethodGet,
		Path:   "v1/{+name}",
		Scopes: []string{ScopeTelemetryReadonly},
	})
	c.Param("name", name)
	return &CustomersTelemetryDevicesGetCall{c}
}

// ReadMask selects which telemetry fields to return, as a comma-separated
// field mask. Required.
func (c *CustomersTelemetryDevicesGetCall) ReadMask(readMask string) *CustomersTelemetryDevicesGetCall {
	c.Param("readMask", readMask)
	return c
}

// CustomersTelemetryDevicesListCall lists telemetry devices.
type CustomersTelemetryDevicesListCall struct {
	*client.Call[*ListTelemetryDevicesResponse]
}

// List lists all telemetry devices of a customer.
//
// parent is the customer id or "my_customer", prefixed with "customers/".
func (r *CustomersTelemetryDevicesService) List(parent string) *CustomersTelemetryDevicesListCall {
	c := client.NewCall[*ListTelemetryDevicesResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.telemetry.devices.list",
		Method: http.MethodGet,
		Path:   "v1/{+parent}/telemetry/devices",
		Scopes: []string{ScopeTelemetryReadonly},
	})
	c.Param("parent", parent)
	return &CustomersTelemetryDevicesListCall{c}
}

// Filter narrows results. Supported filter fields: org_unit_id,
// serial_number, device_id.
func (c *CustomersTelemetryDevicesListCall) Filter(filter string) *CustomersTelemetryDevicesListCall {
	c.Param("filter", filter)
	return c
}

// PageSize sets the maximum number of results to return. Default is 100,
// maximum is 1000.
func (c *CustomersTelemetryDevicesListCall) PageSize(pageSize int64) *CustomersTelemetryDevicesListCall {
	c.Param("pageSize", strconv.FormatInt(pageSize, 10))
	return c
}

// PageToken resumes listing from a previous response.
func (c *CustomersTelemetryDevicesListCall) PageToken(pageToken string) *CustomersTelemetryDevicesListCall {
	c.Param("pageToken", pageToken)
	return c
}

// ReadMask selects which telemetry fields to return, as a comma-separated
// field mask. Required.
func (c *CustomersTelemetryDevicesListCall) ReadMask(readMask string) *CustomersTelemetryDevicesListCall {
	c.Param("readMask", readMask)
	return c
}

// CustomersTelemetryEventsListCall lists telemetry events.
type CustomersTelemetryEventsListCall struct {
	*client.Call[*ListTelemetryEventsResponse]
}

// List lists telemetry events of a customer.
//
// parent is the customer id or "my_customer", prefixed with "customers/".
func (r *CustomersTelemetryEventsService) List(parent string) *CustomersTelemetryEventsListCall {
	c := client.NewCall[*ListTelemetryEventsResponse](r.s.client, r.s.BasePath, client.Operation{
		ID:     "chromemanagement.customers.telemetry.events.list",
		Method: http.MethodGet,
		Path:   "v1/{+parent}/telemetry/events",
		Scopes: []string{ScopeTelemetryReadonly},
	})
	c.Param("parent", parent)
	return &CustomersTelemetryEventsListCall{c}
}

// Filter narrows results. Supported filter fields: device_id, user_id,
// device_org_unit_id, user_org_unit_id, timestamp, event_type.
func (c *CustomersTelemetryEventsListCall) Filter(filter string) *CustomersTelemetryEventsListCall {
	c.Param("filter", filter)
	return c
}

// PageSize sets the maximum number of results to return. Default is 100,
// maximum is 1000.
func (c *CustomersTelemetryEventsListCall) PageSize(pageSize int64) *CustomersTelemetryEventsListCall {
	c.Param("pageSize", strconv.FormatInt(pageSize, 10))
	return c
}

// PageToken resumes listing from a previous response.
func (c *CustomersTelemetryEventsListCall) PageToken(pageToken string) *CustomersTelemetryEventsListCall {
	c.Param("pageToken", pageToken)
	return c
}

// ReadMask selects which telemetry fields to return, as a comma-separated
// field mask. Required.
func (c *CustomersTelemetryEventsListCall) ReadMask(readMask string) *CustomersTelemetryEventsListCall {
	c.Param("readMask", readMask)
	return c
}
