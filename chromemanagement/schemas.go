package chromemanagement

import (
	"time"

	"github.com/MOZGIII/google-apis-go/core"
)

// AndroidAppInfo is Android-specific app information.
type AndroidAppInfo struct {
	// Permissions requested by the app.
	Permissions []*AndroidAppPermission `json:"permissions,omitempty"`
}

// AndroidAppPermission is a permission requested by an Android app.
type AndroidAppPermission struct {
	Type string `json:"type,omitempty"`
}

// AppDetails describes one app in a customer's fleet, as returned by the
// Apps.Android/Chrome/Web Get methods.
type AppDetails struct {
	// AndroidAppInfo is set for Android apps.
	AndroidAppInfo *AndroidAppInfo `json:"androidAppInfo,omitempty"`

	// AppID is the unique store identifier. Examples:
	// "gmbmikajjgmnabiglmofipeabaddhgne" for the Save to Google Drive Chrome
	// extension, "com.google.android.apps.docs" for the Google Drive Android
	// app.
	AppID string `json:"appId,omitempty"`

	// ChromeAppInfo is set for Chrome Web Store items.
	ChromeAppInfo *ChromeAppInfo `json:"chromeAppInfo,omitempty"`

	Description string `json:"description,omitempty"`

	// DetailURI points at the store detail page of the item.
	DetailURI string `json:"detailUri,omitempty"`

	DisplayName string `json:"displayName,omitempty"`

	FirstPublishTime time.Time `json:"firstPublishTime,omitzero"`

	HomepageURI string `json:"homepageUri,omitempty"`

	IconURI string `json:"iconUri,omitempty"`

	// IsPaidApp indicates the app has to be paid for or has paid content.
	IsPaidApp bool `json:"isPaidApp,omitempty"`

	LatestPublishTime time.Time `json:"latestPublishTime,omitzero"`

	// Name has the format
	// customers/{customer_id}/apps/{chrome|android|web}/{app_id}@{version}.
	Name string `json:"name,omitempty"`

	// PrivacyPolicyURI is only set when the requested app version is found.
	PrivacyPolicyURI string `json:"privacyPolicyUri,omitempty"`

	Publisher string `json:"publisher,omitempty"`

	// ReviewNumber is the count of reviews received, always for the latest
	// version of the app.
	ReviewNumber int64 `json:"reviewNumber,string,omitempty"`

	// ReviewRating is the app rating on 5 stars.
	ReviewRating float64 `json:"reviewRating,omitempty"`

	// RevisionID is the app version; a new revision is committed whenever a
	// new version of the app is published.
	RevisionID string `json:"revisionId,omitempty"`

	// ServiceError reports a partial service failure, if any.
	ServiceError *core.Status `json:"serviceError,omitempty"`

	Type string `json:"type,omitempty"`
}

// AudioStatusReport is a periodic sample of the active audio devices.
type AudioStatusReport struct {
	InputDevice string `json:"inputDevice,omitempty"`

	// InputGain is in [0, 100].
	InputGain int32 `json:"inputGain,omitempty"`

	InputMute bool `json:"inputMute,omitempty"`

	OutputDevice string `json:"outputDevice,omitempty"`

	OutputMute bool `json:"outputMute,omitempty"`

	// OutputVolume is in [0, 100].
	OutputVolume int32 `json:"outputVolume,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`
}

// BatteryInfo holds static battery specs of a device.
type BatteryInfo struct {
	// DesignCapacity is in mAmpere-hours.
	DesignCapacity int64 `json:"designCapacity,string,omitempty"`

	// DesignMinVoltage is the designed minimum output voltage in mV.
	DesignMinVoltage int32 `json:"designMinVoltage,omitempty"`

	// ManufactureDate is the date the battery was manufactured.
	ManufactureDate *core.Date `json:"manufactureDate,omitempty"`

	Manufacturer string `json:"manufacturer,omitempty"`

	SerialNumber string `json:"serialNumber,omitempty"`

	// Technology of the battery, for example "Li-ion".
	Technology string `json:"technology,omitempty"`
}

// BatterySampleReport is one sampling point of battery telemetry.
type BatterySampleReport struct {
	// ChargeRate is the battery charge percentage.
	ChargeRate int32 `json:"chargeRate,omitempty"`

	// Current is the battery current in mA.
	Current int64 `json:"current,string,omitempty"`

	// DischargeRate is measured in mW. Positive if the battery is being
	// discharged, negative if it is being charged.
	DischargeRate int32 `json:"dischargeRate,omitempty"`

	// RemainingCapacity is in mAmpere-hours.
	RemainingCapacity int64 `json:"remainingCapacity,string,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`

	// Status is read from sysfs, for example "Discharging".
	Status string `json:"status,omitempty"`

	// Temperature is in Celsius degrees.
	Temperature int32 `json:"temperature,omitempty"`

	// Voltage is in millivolt.
	Voltage int64 `json:"voltage,string,omitempty"`
}

// BatteryStatusReport is periodic battery telemetry.
type BatteryStatusReport struct {
	BatteryHealth string `json:"batteryHealth,omitempty"`

	CycleCount int32 `json:"cycleCount,omitempty"`

	// FullChargeCapacity is in mAmpere-hours.
	FullChargeCapacity int64 `json:"fullChargeCapacity,string,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`

	// Sample holds sampling data sorted in decreasing order of report time.
	Sample []*BatterySampleReport `json:"sample,omitempty"`

	SerialNumber string `json:"serialNumber,omitempty"`
}

// BootPerformanceReport covers one boot or shutdown of a device. Durations
// cross the wire in the protobuf JSON form, such as "32.5s".
type BootPerformanceReport struct {
	// BootUpDuration is the total time to boot up.
	BootUpDuration string `json:"bootUpDuration,omitempty"`

	// BootUpTime is when power came on.
	BootUpTime time.Time `json:"bootUpTime,omitzero"`

	ReportTime time.Time `json:"reportTime,omitzero"`

	// ShutdownDuration is the total time from shutdown start to power off.
	ShutdownDuration string `json:"shutdownDuration,omitempty"`

	ShutdownReason string `json:"shutdownReason,omitempty"`

	ShutdownTime time.Time `json:"shutdownTime,omitzero"`
}

// BrowserVersion describes a browser version and its install count.
type BrowserVersion struct {
	// Channel is the release channel of the installed browser.
	Channel string `json:"channel,omitempty"`

	// Count is grouped by device system and major version.
	Count int64 `json:"count,string,omitempty"`

	// DeviceOSVersion is the version of the system-specified OS.
	DeviceOSVersion string `json:"deviceOsVersion,omitempty"`

	// System is the device operating system.
	System string `json:"system,omitempty"`

	// Version is the full version of the installed browser.
	Version string `json:"version,omitempty"`
}

// ChromeAppInfo is Chrome Web Store app information. The fields marked
// version-specific are only set when the requested app version is found.
type ChromeAppInfo struct {
	// GoogleOwned reports whether the app or extension is built and
	// maintained by Google. Version-specific.
	GoogleOwned bool `json:"googleOwned,omitempty"`

	// IsCwsHosted reports whether the app or extension is in a published
	// state in the Chrome Web Store.
	IsCwsHosted bool `json:"isCwsHosted,omitempty"`

	IsExtensionPolicySupported bool `json:"isExtensionPolicySupported,omitempty"`

	// IsKioskOnly reports whether the app is only for Kiosk mode on ChromeOS
	// devices.
	IsKioskOnly bool `json:"isKioskOnly,omitempty"`

	IsTheme bool `json:"isTheme,omitempty"`

	// KioskEnabled reports whether the app is enabled for Kiosk mode on
	// ChromeOS devices.
	KioskEnabled bool `json:"kioskEnabled,omitempty"`

	// MinUserCount is the minimum number of users using this app.
	MinUserCount int32 `json:"minUserCount,omitempty"`

	// Permissions holds every custom permission requested by the app.
	// Version-specific.
	Permissions []*ChromeAppPermission `json:"permissions,omitempty"`

	// SiteAccess holds every permission giving access to domains or broad
	// host patterns, such as "www.google.com". Version-specific.
	SiteAccess []*ChromeAppSiteAccess `json:"siteAccess,omitempty"`

	// SupportEnabled means the app developer has enabled support for their
	// app. Version-specific.
	SupportEnabled bool `json:"supportEnabled,omitempty"`

	Type string `json:"type,omitempty"`
}

// ChromeAppPermission is a permission requested by a Chrome app or extension.
type ChromeAppPermission struct {
	// AccessUserData reports whether the permission grants access to user
	// data, if known.
	AccessUserData bool `json:"accessUserData,omitempty"`

	// DocumentationURI points at documentation for the permission, if
	// available.
	DocumentationURI string `json:"documentationUri,omitempty"`

	Type string `json:"type,omitempty"`
}

// ChromeAppRequest is one pending app installation request.
type ChromeAppRequest struct {
	// AppDetails has the format
	// customers/{customer_id}/apps/chrome/{app_id}.
	AppDetails string `json:"appDetails,omitempty"`

	// AppID is the unique store identifier of the app.
	AppID string `json:"appId,omitempty"`

	DetailURI string `json:"detailUri,omitempty"`

	DisplayName string `json:"displayName,omitempty"`

	IconURI string `json:"iconUri,omitempty"`

	// LatestRequestTime is when the most recent request for this app was
	// made.
	LatestRequestTime time.Time `json:"latestRequestTime,omitzero"`

	// RequestCount is the total count of requests for this app.
	RequestCount int64 `json:"requestCount,string,omitempty"`
}

// ChromeAppSiteAccess represents one host permission.
type ChromeAppSiteAccess struct {
	// HostMatch can contain very specific hosts or patterns like "*.com".
	HostMatch string `json:"hostMatch,omitempty"`
}

// CountChromeAppRequestsResponse summarizes requested app installations.
type CountChromeAppRequestsResponse struct {
	NextPageToken string `json:"nextPageToken,omitempty"`

	// RequestedApps matching the request.
	RequestedApps []*ChromeAppRequest `json:"requestedApps,omitempty"`

	// TotalSize is the total number of matching app requests.
	TotalSize int32 `json:"totalSize,omitempty"`
}

// CountChromeDevicesReachingAutoExpirationDateResponse lists devices expiring
// in each month of a selected time frame, grouped by model and auto update
// expiration date.
type CountChromeDevicesReachingAutoExpirationDateResponse struct {
	// DeviceAueCountReports is sorted by auto update expiration date in
	// ascending order.
	DeviceAueCountReports []*DeviceAueCountReport `json:"deviceAueCountReports,omitempty"`
}

// CountChromeDevicesThatNeedAttentionResponse carries counts of devices that
// need administrator attention.
type CountChromeDevicesThatNeedAttentionResponse struct {
	// NoRecentPolicySyncCount counts devices that have not synced policies in
	// the past 28 days.
	NoRecentPolicySyncCount int64 `json:"noRecentPolicySyncCount,string,omitempty"`

	// NoRecentUserActivityCount counts devices without user activity in the
	// past 28 days.
	NoRecentUserActivityCount int64 `json:"noRecentUserActivityCount,string,omitempty"`

	// OSVersionNotCompliantCount counts devices whose OS version is not
	// compliant.
	OSVersionNotCompliantCount int64 `json:"osVersionNotCompliantCount,string,omitempty"`

	// PendingUpdate counts devices that are pending an OS update.
	PendingUpdate int64 `json:"pendingUpdate,string,omitempty"`

	// UnsupportedPolicyCount counts devices unable to apply a policy due to
	// an OS version mismatch.
	UnsupportedPolicyCount int64 `json:"unsupportedPolicyCount,string,omitempty"`
}

// CountChromeHardwareFleetDevicesResponse groups device counts per hardware
// specification.
type CountChromeHardwareFleetDevicesResponse struct {
	// CPUReports is bucketed by device CPU type.
	CPUReports []*DeviceHardwareCountReport `json:"cpuReports,omitempty"`

	// MemoryReports is bucketed by memory amount in gigabytes.
	MemoryReports []*DeviceHardwareCountReport `json:"memoryReports,omitempty"`

	// ModelReports is bucketed by device model.
	ModelReports []*DeviceHardwareCountReport `json:"modelReports,omitempty"`

	// StorageReports is bucketed by storage amount in gigabytes.
	StorageReports []*DeviceHardwareCountReport `json:"storageReports,omitempty"`
}

// CountChromeVersionsResponse lists browser versions and their install
// counts.
type CountChromeVersionsResponse struct {
	BrowserVersions []*BrowserVersion `json:"browserVersions,omitempty"`

	NextPageToken string `json:"nextPageToken,omitempty"`

	// TotalSize is the total number of browser versions matching the request.
	TotalSize int32 `json:"totalSize,omitempty"`
}

// CountInstalledAppsResponse lists installed apps matching a report query.
type CountInstalledAppsResponse struct {
	InstalledApps []*InstalledApp `json:"installedApps,omitempty"`

	NextPageToken string `json:"nextPageToken,omitempty"`

	// TotalSize is the total number of installed apps matching the request.
	TotalSize int32 `json:"totalSize,omitempty"`
}

// CPUInfo holds static CPU specs of a device.
type CPUInfo struct {
	Architecture string `json:"architecture,omitempty"`

	// KeylockerConfigured is only reported when KeylockerSupported is true.
	KeylockerConfigured bool `json:"keylockerConfigured,omitempty"`

	KeylockerSupported bool `json:"keylockerSupported,omitempty"`

	// MaxClockSpeed is in kHz.
	MaxClockSpeed int32 `json:"maxClockSpeed,omitempty"`

	// Model is the CPU model name, for example "Intel(R) Core(TM) i5-8250U
	// CPU @ 1.60GHz".
	Model string `json:"model,omitempty"`
}

// CPUStatusReport is a periodic sample of CPU utilization and temperature.
type CPUStatusReport struct {
	// CPUTemperatureInfo samples per CPU core in Celsius.
	CPUTemperatureInfo []*CPUTemperatureInfo `json:"cpuTemperatureInfo,omitempty"`

	// CPUUtilizationPct is in 0-100 percent.
	CPUUtilizationPct int32 `json:"cpuUtilizationPct,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`

	// SampleFrequency is a duration string such as "600s".
	SampleFrequency string `json:"sampleFrequency,omitempty"`
}

// CPUTemperatureInfo is the temperature of one CPU core in Celsius.
type CPUTemperatureInfo struct {
	// Label names the core, for example "Core 0".
	Label string `json:"label,omitempty"`

	TemperatureCelsius int32 `json:"temperatureCelsius,omitempty"`
}

// Device describes a device reporting Chrome browser information.
type Device struct {
	// DeviceID is the ID of the device that reported this Chrome browser
	// information.
	DeviceID string `json:"deviceId,omitempty"`

	// Machine is the name of the machine within its local network.
	Machine string `json:"machine,omitempty"`
}

// DeviceAueCountReport counts devices of a specific model within an auto
// update expiration range.
type DeviceAueCountReport struct {
	// AueMonth is the month of the expiration date in UTC. Empty if the
	// device has already expired.
	AueMonth string `json:"aueMonth,omitempty"`

	// AueYear is the year of the expiration date in UTC. Empty if the device
	// has already expired.
	AueYear int64 `json:"aueYear,string,omitempty"`

	Count int64 `json:"count,string,omitempty"`

	// Expired reports whether the devices have already expired.
	Expired bool `json:"expired,omitempty"`

	// Model is the public model name of the devices.
	Model string `json:"model,omitempty"`
}

// DeviceHardwareCountReport counts devices sharing one hardware
// specification.
type DeviceHardwareCountReport struct {
	// Bucket is the public name of the hardware specification.
	Bucket string `json:"bucket,omitempty"`

	Count int64 `json:"count,string,omitempty"`
}

// DiskInfo is the status of a single storage device. Durations cross the
// wire in the protobuf JSON form, such as "3.5s".
type DiskInfo struct {
	BytesReadThisSession int64 `json:"bytesReadThisSession,string,omitempty"`

	BytesWrittenThisSession int64 `json:"bytesWrittenThisSession,string,omitempty"`

	// DiscardTimeThisSession is time spent clearing blocks no longer in use.
	// Supported on kernels 4.18+.
	DiscardTimeThisSession string `json:"discardTimeThisSession,omitempty"`

	Health string `json:"health,omitempty"`

	// IoTimeThisSession counts the time the disk and queue were busy, so
	// parallel requests are not counted multiple times.
	IoTimeThisSession string `json:"ioTimeThisSession,omitempty"`

	Manufacturer string `json:"manufacturer,omitempty"`

	Model string `json:"model,omitempty"`

	ReadTimeThisSession string `json:"readTimeThisSession,omitempty"`

	SerialNumber string `json:"serialNumber,omitempty"`

	SizeBytes int64 `json:"sizeBytes,string,omitempty"`

	// Type of the disk: eMMC, NVMe, ATA or SCSI.
	Type string `json:"type,omitempty"`

	VolumeIDs []string `json:"volumeIds,omitempty"`

	WriteTimeThisSession string `json:"writeTimeThisSession,omitempty"`
}

// DisplayInfo describes one display.
type DisplayInfo struct {
	// DeviceID is the graphics card device id.
	DeviceID int64 `json:"deviceId,string,omitempty"`

	IsInternal bool `json:"isInternal,omitempty"`

	// RefreshRate is in Hz.
	RefreshRate int32 `json:"refreshRate,omitempty"`

	ResolutionHeight int32 `json:"resolutionHeight,omitempty"`

	ResolutionWidth int32 `json:"resolutionWidth,omitempty"`
}

// FindInstalledAppDevicesResponse lists devices that have a queried app
// installed.
type FindInstalledAppDevicesResponse struct {
	// Devices is sorted in ascending alphabetical order on the machine field.
	Devices []*Device `json:"devices,omitempty"`

	NextPageToken string `json:"nextPageToken,omitempty"`

	// TotalSize is the total number of devices matching the request.
	TotalSize int32 `json:"totalSize,omitempty"`
}

// GraphicsAdapterInfo describes a graphics adapter (GPU).
type GraphicsAdapterInfo struct {
	// Adapter names the GPU, for example "Mesa DRI Intel(R) UHD Graphics 620
	// (Kabylake GT2)".
	Adapter string `json:"adapter,omitempty"`

	// DeviceID is the graphics card device id.
	DeviceID int64 `json:"deviceId,string,omitempty"`

	DriverVersion string `json:"driverVersion,omitempty"`
}

// GraphicsInfo holds static graphics subsystem information.
type GraphicsInfo struct {
	AdapterInfo *GraphicsAdapterInfo `json:"adapterInfo,omitempty"`
}

// GraphicsStatusReport is a periodic sample of the graphics subsystem.
type GraphicsStatusReport struct {
	Displays []*DisplayInfo `json:"displays,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`
}

// HTTPSLatencyRoutineData is the result of the HTTPS latency diagnostics
// routine, which issues HTTPS requests to Google websites.
type HTTPSLatencyRoutineData struct {
	// Latency is set if the routine succeeded or failed because of
	// HIGH_LATENCY or VERY_HIGH_LATENCY. It is a duration string such as
	// "1.5s".
	Latency string `json:"latency,omitempty"`

	// Problem reports the routine problem if one occurred.
	Problem string `json:"problem,omitempty"`
}

// InstalledApp describes an app installed somewhere in the fleet.
type InstalledApp struct {
	// AppID is the 32-character id for Chrome apps and extensions, or the
	// package name for Android apps.
	AppID string `json:"appId,omitempty"`

	// AppInstallType reports how the app was installed.
	AppInstallType string `json:"appInstallType,omitempty"`

	AppSource string `json:"appSource,omitempty"`

	AppType string `json:"appType,omitempty"`

	// BrowserDeviceCount counts browser devices with this app installed.
	BrowserDeviceCount int64 `json:"browserDeviceCount,string,omitempty"`

	Description string `json:"description,omitempty"`

	Disabled bool `json:"disabled,omitempty"`

	DisplayName string `json:"displayName,omitempty"`

	HomepageURI string `json:"homepageUri,omitempty"`

	// OSUserCount counts ChromeOS users with this app installed.
	OSUserCount int64 `json:"osUserCount,string,omitempty"`

	Permissions []string `json:"permissions,omitempty"`
}

// ListTelemetryDevicesResponse is one page of telemetry devices.
type ListTelemetryDevicesResponse struct {
	Devices []*TelemetryDevice `json:"devices,omitempty"`

	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListTelemetryEventsResponse is one page of telemetry events.
type ListTelemetryEventsResponse struct {
	NextPageToken string `json:"nextPageToken,omitempty"`

	TelemetryEvents []*TelemetryEvent `json:"telemetryEvents,omitempty"`
}

// MemoryInfo mixes static specs (total RAM, encryption) with telemetry
// (available RAM).
type MemoryInfo struct {
	AvailableRAMBytes int64 `json:"availableRamBytes,string,omitempty"`

	TotalMemoryEncryption *TotalMemoryEncryptionInfo `json:"totalMemoryEncryption,omitempty"`

	TotalRAMBytes int64 `json:"totalRamBytes,string,omitempty"`
}

// MemoryStatusReport is one sample of memory status.
type MemoryStatusReport struct {
	// PageFaults counts page faults during this collection.
	PageFaults int32 `json:"pageFaults,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`

	// SampleFrequency is a duration string such as "600s".
	SampleFrequency string `json:"sampleFrequency,omitempty"`

	// SystemRAMFreeBytes is unreliable due to garbage collection.
	SystemRAMFreeBytes int64 `json:"systemRamFreeBytes,string,omitempty"`
}

// NetworkDevice holds static details about one network device.
type NetworkDevice struct {
	// ICCID is the integrated circuit card ID associated with the device's
	// sim card.
	ICCID string `json:"iccid,omitempty"`

	IMEI string `json:"imei,omitempty"`

	MACAddress string `json:"macAddress,omitempty"`

	// MDN is the mobile directory number associated with the device's sim
	// card.
	MDN string `json:"mdn,omitempty"`

	MEID string `json:"meid,omitempty"`

	Type string `json:"type,omitempty"`
}

// NetworkDiagnosticsReport holds network testing results that determine the
// health of the device's network connection.
type NetworkDiagnosticsReport struct {
	// HTTPSLatencyData is the HTTPS latency test data.
	HTTPSLatencyData *HTTPSLatencyRoutineData `json:"httpsLatencyData,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`
}

// NetworkInfo lists the network devices of a machine.
type NetworkInfo struct {
	NetworkDevices []*NetworkDevice `json:"networkDevices,omitempty"`
}

// NetworkStatusReport is the state of visible and configured networks.
type NetworkStatusReport struct {
	ConnectionState string `json:"connectionState,omitempty"`

	ConnectionType string `json:"connectionType,omitempty"`

	// EncryptionOn reports whether the wifi encryption key is turned off.
	EncryptionOn bool `json:"encryptionOn,omitempty"`

	GatewayIPAddress string `json:"gatewayIpAddress,omitempty"`

	// GUID identifies the network connection.
	GUID string `json:"guid,omitempty"`

	LANIPAddress string `json:"lanIpAddress,omitempty"`

	// ReceivingBitRateMbps is measured in Megabits per second.
	ReceivingBitRateMbps int64 `json:"receivingBitRateMbps,string,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`

	// SampleFrequency is a duration string such as "3600s".
	SampleFrequency string `json:"sampleFrequency,omitempty"`

	// SignalStrengthDbm is for wireless networks, in decibels.
	SignalStrengthDbm int32 `json:"signalStrengthDbm,omitempty"`

	// TransmissionBitRateMbps is measured in Megabits per second.
	TransmissionBitRateMbps int64 `json:"transmissionBitRateMbps,string,omitempty"`

	// TransmissionPowerDbm is measured in decibels.
	TransmissionPowerDbm int32 `json:"transmissionPowerDbm,omitempty"`

	// WifiLinkQuality ranges over [0, 70]; 0 indicates no signal and 70 a
	// strong signal.
	WifiLinkQuality int64 `json:"wifiLinkQuality,string,omitempty"`

	WifiPowerManagementEnabled bool `json:"wifiPowerManagementEnabled,omitempty"`
}

// OSUpdateStatus is the current OS update state of a device.
type OSUpdateStatus struct {
	LastRebootTime time.Time `json:"lastRebootTime,omitzero"`

	LastUpdateCheckTime time.Time `json:"lastUpdateCheckTime,omitzero"`

	LastUpdateTime time.Time `json:"lastUpdateTime,omitzero"`

	// NewPlatformVersion is the platform version of the OS image being
	// downloaded and applied. Only set when the update state is
	// OS_IMAGE_DOWNLOAD_IN_PROGRESS or OS_UPDATE_NEED_REBOOT; may be a dummy
	// "0.0.0.0" in edge cases.
	NewPlatformVersion string `json:"newPlatformVersion,omitempty"`

	// NewRequestedPlatformVersion comes from the pending updated kiosk app.
	NewRequestedPlatformVersion string `json:"newRequestedPlatformVersion,omitempty"`

	UpdateState string `json:"updateState,omitempty"`
}

// StorageInfo describes user data storage of a device.
type StorageInfo struct {
	// AvailableDiskBytes is the available space for user data storage.
	AvailableDiskBytes int64 `json:"availableDiskBytes,string,omitempty"`

	// TotalDiskBytes is the total space for user data storage.
	TotalDiskBytes int64 `json:"totalDiskBytes,string,omitempty"`

	Volume []*StorageInfoDiskVolume `json:"volume,omitempty"`
}

// StorageInfoDiskVolume describes one disk volume.
type StorageInfoDiskVolume struct {
	StorageFreeBytes int64 `json:"storageFreeBytes,string,omitempty"`

	StorageTotalBytes int64 `json:"storageTotalBytes,string,omitempty"`

	VolumeID string `json:"volumeId,omitempty"`
}

// StorageStatusReport is periodic storage telemetry.
type StorageStatusReport struct {
	Disk []*DiskInfo `json:"disk,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`
}

// TelemetryAudioSevereUnderrunEvent is triggered when an audio device runs
// out of buffer data for more than 5 seconds. It carries no payload.
type TelemetryAudioSevereUnderrunEvent struct{}

// TelemetryDevice is the telemetry data collected from a managed device.
// All fields are output only.
type TelemetryDevice struct {
	// AudioStatusReport is sorted in decreasing order of report time.
	AudioStatusReport []*AudioStatusReport `json:"audioStatusReport,omitempty"`

	BatteryInfo []*BatteryInfo `json:"batteryInfo,omitempty"`

	BatteryStatusReport []*BatteryStatusReport `json:"batteryStatusReport,omitempty"`

	BootPerformanceReport []*BootPerformanceReport `json:"bootPerformanceReport,omitempty"`

	CPUInfo []*CPUInfo `json:"cpuInfo,omitempty"`

	// CPUStatusReport is sorted in decreasing order of report time.
	CPUStatusReport []*CPUStatusReport `json:"cpuStatusReport,omitempty"`

	// Customer is the Google Workspace customer whose enterprise enrolled
	// the device.
	Customer string `json:"customer,omitempty"`

	// DeviceID is the unique Directory API ID of the device.
	DeviceID string `json:"deviceId,omitempty"`

	GraphicsInfo *GraphicsInfo `json:"graphicsInfo,omitempty"`

	GraphicsStatusReport []*GraphicsStatusReport `json:"graphicsStatusReport,omitempty"`

	MemoryInfo *MemoryInfo `json:"memoryInfo,omitempty"`

	// MemoryStatusReport is sorted in decreasing order of report time.
	MemoryStatusReport []*MemoryStatusReport `json:"memoryStatusReport,omitempty"`

	// Name is the resource name of the device.
	Name string `json:"name,omitempty"`

	NetworkDiagnosticsReport []*NetworkDiagnosticsReport `json:"networkDiagnosticsReport,omitempty"`

	NetworkInfo *NetworkInfo `json:"networkInfo,omitempty"`

	NetworkStatusReport []*NetworkStatusReport `json:"networkStatusReport,omitempty"`

	// OrgUnitID is the organization unit ID of the device.
	OrgUnitID string `json:"orgUnitId,omitempty"`

	OSUpdateStatus []*OSUpdateStatus `json:"osUpdateStatus,omitempty"`

	SerialNumber string `json:"serialNumber,omitempty"`

	StorageInfo *StorageInfo `json:"storageInfo,omitempty"`

	StorageStatusReport []*StorageStatusReport `json:"storageStatusReport,omitempty"`

	ThunderboltInfo []*ThunderboltInfo `json:"thunderboltInfo,omitempty"`
}

// TelemetryDeviceInfo identifies the device associated with telemetry data.
type TelemetryDeviceInfo struct {
	// DeviceID is the unique Directory API ID of the device.
	DeviceID string `json:"deviceId,omitempty"`

	OrgUnitID string `json:"orgUnitId,omitempty"`
}

// TelemetryEvent is one telemetry event reported by a managed device. The
// payload field matching EventType is set and the others are empty.
type TelemetryEvent struct {
	// AudioSevereUnderrunEvent is present when EventType is
	// AUDIO_SEVERE_UNDERRUN.
	AudioSevereUnderrunEvent *TelemetryAudioSevereUnderrunEvent `json:"audioSevereUnderrunEvent,omitempty"`

	Device *TelemetryDeviceInfo `json:"device,omitempty"`

	EventType string `json:"eventType,omitempty"`

	// HTTPSLatencyChangeEvent is present when EventType is
	// NETWORK_HTTPS_LATENCY_CHANGE.
	HTTPSLatencyChangeEvent *TelemetryHTTPSLatencyChangeEvent `json:"httpsLatencyChangeEvent,omitempty"`

	// Name is the resource name of the event.
	Name string `json:"name,omitempty"`

	ReportTime time.Time `json:"reportTime,omitzero"`

	// USBPeripheralsEvent is present when EventType is USB_ADDED or
	// USB_REMOVED.
	USBPeripheralsEvent *TelemetryUSBPeripheralsEvent `json:"usbPeripheralsEvent,omitempty"`

	User *TelemetryUserInfo `json:"user,omitempty"`
}

// TelemetryHTTPSLatencyChangeEvent is triggered when a latency problem is
// detected or the device recovers from one.
type TelemetryHTTPSLatencyChangeEvent struct {
	// HTTPSLatencyRoutineData is the routine run that triggered the event.
	HTTPSLatencyRoutineData *HTTPSLatencyRoutineData `json:"httpsLatencyRoutineData,omitempty"`

	// HTTPSLatencyState is the current latency state.
	HTTPSLatencyState string `json:"httpsLatencyState,omitempty"`
}

// TelemetryUSBPeripheralsEvent is triggered when USB devices are added or
// removed.
type TelemetryUSBPeripheralsEvent struct {
	USBPeripheralReport []*USBPeripheralReport `json:"usbPeripheralReport,omitempty"`
}

// TelemetryUserInfo identifies the user associated with telemetry data.
type TelemetryUserInfo struct {
	Email string `json:"email,omitempty"`

	OrgUnitID string `json:"orgUnitId,omitempty"`
}

// ThunderboltInfo holds static Thunderbolt bus information.
type ThunderboltInfo struct {
	// SecurityLevel of the Thunderbolt bus.
	SecurityLevel string `json:"securityLevel,omitempty"`
}

// TotalMemoryEncryptionInfo is the memory encryption state of a device.
type TotalMemoryEncryptionInfo struct {
	EncryptionAlgorithm string `json:"encryptionAlgorithm,omitempty"`

	EncryptionState string `json:"encryptionState,omitempty"`

	// KeyLength is the length of the encryption keys.
	KeyLength int64 `json:"keyLength,string,omitempty"`

	// MaxKeys is the maximum number of keys that can be used for encryption.
	MaxKeys int64 `json:"maxKeys,string,omitempty"`
}

// USBPeripheralReport describes one connected USB peripheral. Class, subclass
// and category values follow https://www.usb.org/defined-class-codes.
type USBPeripheralReport struct {
	Categories []string `json:"categories,omitempty"`

	ClassID int32 `json:"classId,omitempty"`

	FirmwareVersion string `json:"firmwareVersion,omitempty"`

	// Name is the device, model or product name.
	Name string `json:"name,omitempty"`

	// PID is the product ID.
	PID int32 `json:"pid,omitempty"`

	SubclassID int32 `json:"subclassId,omitempty"`

	Vendor string `json:"vendor,omitempty"`

	// VID is the vendor ID.
	VID int32 `json:"vid,omitempty"`
}
