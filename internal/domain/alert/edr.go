package alert

import "strings"

// Publisher identifies the signer of a process image.
type Publisher struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// Watchlist names the rule set whose match produced an EDR alert.
type Watchlist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EDRAlert is a watchlist-hit record as emitted by the endpoint telemetry
// feed. Every field is always populated; timestamps carry millisecond
// precision with a literal UTC marker.
type EDRAlert struct {
	Schema            int         `json:"schema"`
	CreateTime        string      `json:"create_time"`
	DeviceExternalIP  string      `json:"device_external_ip"`
	DeviceID          int64       `json:"device_id"`
	DeviceInternalIP  string      `json:"device_internal_ip"`
	DeviceName        string      `json:"device_name"`
	DeviceOS          string      `json:"device_os"`
	IOCHit            string      `json:"ioc_hit"`
	IOCID             string      `json:"ioc_id"`
	OrgKey            string      `json:"org_key"`
	ParentCmdline     string      `json:"parent_cmdline"`
	ParentGUID        string      `json:"parent_guid"`
	ParentHash        []string    `json:"parent_hash"`
	ParentPath        string      `json:"parent_path"`
	ParentPID         int         `json:"parent_pid"`
	ParentPublisher   []Publisher `json:"parent_publisher"`
	ParentReputation  string      `json:"parent_reputation"`
	ParentUsername    string      `json:"parent_username"`
	ProcessCmdline    string      `json:"process_cmdline"`
	ProcessGUID       string      `json:"process_guid"`
	ProcessHash       []string    `json:"process_hash"`
	ProcessPath       string      `json:"process_path"`
	ProcessPID        int         `json:"process_pid"`
	ProcessPublisher  []Publisher `json:"process_publisher"`
	ProcessReputation string      `json:"process_reputation"`
	ProcessUsername   string      `json:"process_username"`
	ReportID          string      `json:"report_id"`
	ReportName        string      `json:"report_name"`
	ReportTags        []string    `json:"report_tags"`
	Severity          int         `json:"severity"`
	Type              string      `json:"type"`
	Watchlists        []Watchlist `json:"watchlists"`
}

// TypeWatchlistHit is the record-type discriminator for EDR alerts.
const TypeWatchlistHit = "watchlist.hit"

// SeverityLevel returns the human-readable label for the alert severity.
func (a *EDRAlert) SeverityLevel() string {
	return severityLevel(a.Severity)
}

// IsCritical reports whether the alert falls in the critical/high band.
func (a *EDRAlert) IsCritical() bool {
	return a.Severity <= 2
}

// AlertKey returns the device-scoped dedup key for the alert.
func (a *EDRAlert) AlertKey() string {
	return a.DeviceName + "_" + a.ReportID
}

// HasTag reports whether any report tag contains the given substring.
func (a *EDRAlert) HasTag(tag string) bool {
	for _, t := range a.ReportTags {
		if strings.Contains(t, tag) {
			return true
		}
	}
	return false
}

func severityLevel(severity int) string {
	switch severity {
	case 1:
		return "critical"
	case 2:
		return "high"
	case 3:
		return "medium"
	case 4:
		return "low"
	default:
		return "unknown"
	}
}
